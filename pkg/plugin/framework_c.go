package plugin

import (
	"regexp"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/symboltable"
)

// FrameworkC models a CMS (WordPress-like) plugin/theme platform whose
// extensibility runs through hook registration rather than autowiring.
type FrameworkC struct{}

func (FrameworkC) Name() string        { return "framework-c" }
func (FrameworkC) Description() string { return "CMS platform using hook/filter callback registration" }
func (FrameworkC) Priority() int       { return 80 }

func (FrameworkC) IsApplicable(projectRoot string, m manifest.Manifest) bool {
	for _, marker := range []string{"wp-load.php", "wp-config.php", "style.css"} {
		if fileExists(projectRoot, marker) {
			return true
		}
	}
	return dependsOnAny(m, nil, []string{"framework-c/core", "framework-c-theme/*", "framework-c-plugin/*"})
}

func (FrameworkC) IgnoreSymbolPatterns() []string {
	return []string{
		`*\Widgets\*`,
		`*\Shortcodes\*`,
		`*\Hooks\*`,
	}
}

func (FrameworkC) IgnoreFilePatterns() []string {
	return []string{
		"wp-content/themes/**/*.php",
		"wp-content/plugins/**/*.php",
		"wp-content/mu-plugins/**/*.php",
	}
}

func (FrameworkC) EntryPoints(projectRoot string) []string {
	return globFiles(projectRoot, "wp-content/{themes,plugins,mu-plugins}/**/*.php")
}

// hookRegistrationFuncs is the closed list of hook-registration calls
// scanned for callback arguments.
var hookRegistrationFuncs = []string{
	"add_action", "add_filter", "add_shortcode",
	"register_activation_hook", "register_deactivation_hook",
}

var (
	hookBareString  = buildHookPattern(`['"]([A-Za-z_][A-Za-z0-9_]*)['"]`)
	hookThisMethod  = buildHookPattern(`\[\s*\$this\s*,\s*['"]([A-Za-z_][A-Za-z0-9_]*)['"]\s*\]`)
	hookClassMethod = buildHookPattern(`\[\s*['"]?([A-Za-z_][A-Za-z0-9_\\]*?)['"]?(?:::class)?\s*,\s*['"]([A-Za-z_][A-Za-z0-9_]*)['"]\s*\]`)
)

func buildHookPattern(callbackGroup string) *regexp.Regexp {
	funcs := ""
	for i, f := range hookRegistrationFuncs {
		if i > 0 {
			funcs += "|"
		}
		funcs += f
	}
	return regexp.MustCompile(`(?:` + funcs + `)\s*\(\s*['"][^'"]*['"]\s*,\s*` + callbackGroup)
}

// AdditionalReferences regex-scans theme/plugin/must-use directories for
// hook-registration calls, capturing the callback in its three accepted
// forms: bare function-name string, `[$this, 'method']`, and
// `[Class::class, 'method']` (or the equivalent `['Class', 'method']`).
func (FrameworkC) AdditionalReferences(projectRoot string) []phpast.Reference {
	var refs []phpast.Reference
	for _, f := range globFiles(projectRoot, "wp-content/{themes,plugins,mu-plugins}/**/*.php") {
		content := readFileBestEffort(f)
		refs = append(refs, extractHookCallbacks(f, content)...)
	}
	return refs
}

func extractHookCallbacks(filePath, content string) []phpast.Reference {
	var refs []phpast.Reference

	// Static form first: [Class::class, 'method'] / ['Class', 'method'].
	claimed := make(map[[2]int]bool)
	for _, loc := range hookClassMethod.FindAllStringSubmatchIndex(content, -1) {
		claimed[[2]int{loc[0], loc[1]}] = true
		class := content[loc[2]:loc[3]]
		method := content[loc[4]:loc[5]]
		ref := phpast.Reference{Kind: phpast.RefStaticCall, SymbolParent: class, SymbolName: method, FilePath: filePath}
		ref.SetMetadata("source", "framework-c-hook")
		refs = append(refs, ref)
	}

	// [$this, 'method'] form.
	for _, loc := range hookThisMethod.FindAllStringSubmatchIndex(content, -1) {
		if overlaps(claimed, loc[0], loc[1]) {
			continue
		}
		method := content[loc[2]:loc[3]]
		ref := phpast.Reference{Kind: phpast.RefMethodCall, SymbolName: method, FilePath: filePath}
		ref.SetMetadata("source", "framework-c-hook")
		refs = append(refs, ref)
	}

	// Bare function-name string form.
	for _, loc := range hookBareString.FindAllStringSubmatchIndex(content, -1) {
		if overlaps(claimed, loc[0], loc[1]) {
			continue
		}
		name := content[loc[2]:loc[3]]
		ref := phpast.Reference{Kind: phpast.RefFunctionCall, SymbolName: name, FilePath: filePath}
		ref.SetMetadata("source", "framework-c-hook")
		refs = append(refs, ref)
	}

	return refs
}

func overlaps(claimed map[[2]int]bool, start, end int) bool {
	for span := range claimed {
		if start >= span[0] && start < span[1] {
			return true
		}
	}
	return false
}

func (p FrameworkC) ProcessSymbols(table *symboltable.Table, projectRoot string) {
	patterns := p.IgnoreFilePatterns()
	for _, s := range table.GetByKind(phpast.KindFunction) {
		if !matchesAny(patterns, s.FilePath) {
			continue
		}
		tagged := s
		tagged.SetMetadata("framework", "framework-c")
		table.Add(tagged)
	}
}
</content>
