package analyze

import (
	"fmt"
	"strings"

	"github.com/atani/php-knip/internal/phpast"
)

// dependencyUseKinds are the reference kinds that can resolve to a
// dependency package.
var dependencyUseKinds = []phpast.ReferenceKind{
	phpast.RefNew, phpast.RefExtends, phpast.RefImplements, phpast.RefUseTrait,
	phpast.RefUseImport, phpast.RefStaticCall, phpast.RefTypeHint,
	phpast.RefReturnType, phpast.RefInstanceOf, phpast.RefCatch,
	phpast.RefClassString, phpast.RefFunctionCall,
}

// runtimePseudoPackage is the pseudo-dependency every manifest may declare
// to pin the language runtime itself; it names no installable package and
// can never be "used".
const runtimePseudoPackage = "php"

// configurationOnlyPackages never appear in code - they act purely
// through Composer plugin hooks or CI configuration.
var configurationOnlyPackages = map[string]bool{
	"symfony/flex":      true,
	"composer/composer": true,
}

// DependencyAnalyzer flags declared dependencies that no code in the
// project actually resolves to. Without a manifest, it
// reports nothing.
type DependencyAnalyzer struct{}

func (DependencyAnalyzer) Name() string { return "dependency" }

func (DependencyAnalyzer) Analyze(ctx *Context) []Issue {
	if ctx.Manifest == nil || ctx.Autoload == nil {
		return nil
	}

	used := usedPackages(ctx)

	var issues []Issue
	for _, dep := range ctx.Manifest.Dependencies() {
		if isSkippedDependency(dep.Name) {
			continue
		}
		if used[dep.Name] {
			continue
		}
		if matchAnySymbolGlob(ctx.Config.IgnoreDependencies(), dep.Name) {
			continue
		}

		severity := SeverityWarning
		if dep.IsDev {
			severity = SeverityInfo
		}
		issues = append(issues, Issue{
			Kind:     KindUnusedDependencies,
			Severity: severity,
			Message:  fmt.Sprintf("dependency %q is declared but never used", dep.Name),
			Symbol:   dep.Name,
			Metadata: map[string]any{"isDev": dep.IsDev},
		})
	}
	return issues
}

// AnalyzeMissing reports packages that code resolves to but the manifest
// never declares — a parallel reporting path to Analyze's unused-dependency
// check, excluding the project's own package. Called alongside Analyze by
// the host pipeline via the MissingAnalyzer interface.
func (DependencyAnalyzer) AnalyzeMissing(ctx *Context) []Issue {
	if ctx.Manifest == nil || ctx.Autoload == nil {
		return nil
	}

	declared := make(map[string]bool)
	for _, dep := range ctx.Manifest.Dependencies() {
		declared[dep.Name] = true
	}
	projectName := ctx.Autoload.ProjectName()

	used := usedPackages(ctx)
	var issues []Issue
	for pkg := range used {
		if pkg == projectName || declared[pkg] || isSkippedDependency(pkg) {
			continue
		}
		issues = append(issues, Issue{
			Kind:     KindUnusedDependencies,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("package %q is used but not declared as a dependency", pkg),
			Symbol:   pkg,
			Metadata: map[string]any{"missing": true},
		})
	}
	return issues
}

func usedPackages(ctx *Context) map[string]bool {
	projectName := ctx.Autoload.ProjectName()
	used := make(map[string]bool)
	for _, r := range ctx.ReferencesByKinds(dependencyUseKinds...) {
		name := r.SymbolName
		if r.SymbolParent != "" {
			name = r.SymbolParent
		}
		pkg := ctx.Autoload.ResolveClass(name)
		if pkg == "" {
			pkg = ctx.Autoload.ResolveFunction(name)
		}
		if pkg == "" || pkg == projectName {
			continue
		}
		used[pkg] = true
	}
	return used
}

func isSkippedDependency(name string) bool {
	if name == runtimePseudoPackage {
		return true
	}
	if strings.HasPrefix(name, "ext-") || strings.HasPrefix(name, "lib-") {
		return true
	}
	return configurationOnlyPackages[name]
}
</content>
