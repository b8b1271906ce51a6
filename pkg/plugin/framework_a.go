package plugin

import (
	"regexp"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/symboltable"
)

// FrameworkA models a Laravel-like MVC framework.
type FrameworkA struct{}

func (FrameworkA) Name() string        { return "framework-a" }
func (FrameworkA) Description() string { return "MVC framework relying on service-container autowiring" }
func (FrameworkA) Priority() int       { return 100 }

func (FrameworkA) IsApplicable(projectRoot string, m manifest.Manifest) bool {
	if fileExists(projectRoot, "artisan") {
		return true
	}
	return dependsOnAny(m, []string{"framework-a/core"}, []string{"framework-a-vendor/*"})
}

func (FrameworkA) IgnoreSymbolPatterns() []string {
	return []string{
		`*\Http\Controllers\*`,
		`*\Models\*`,
		`*\Providers\*ServiceProvider`,
		`*\Jobs\*`,
		`*\Events\*`,
		`*\Listeners\*`,
		`*\Http\Middleware\*`,
	}
}

func (FrameworkA) IgnoreFilePatterns() []string {
	return []string{
		"routes/*.php",
		"config/*.php",
		"database/migrations/*.php",
		"database/seeders/*.php",
	}
}

// EntryPoints enumerates the conventional controller/model/provider
// directories, mapping each file to its expected FQN under the App
// namespace (the framework's default PSR-4 root).
func (FrameworkA) EntryPoints(projectRoot string) []string {
	dirs := map[string]string{
		"app/Http/Controllers": `App\Http\Controllers`,
		"app/Models":           `App\Models`,
		"app/Providers":        `App\Providers`,
		"app/Console/Commands": `App\Console\Commands`,
	}
	var out []string
	for dir, ns := range dirs {
		for _, f := range globFiles(projectRoot, dir+"/**/*.php") {
			if fqn := pathToNamespacedFQN(projectRoot, dir, ns, f); fqn != "" {
				out = append(out, fqn)
			}
		}
	}
	return out
}

// classStringPattern matches `Some\Class\Name::class`, the idiom Laravel
// configuration/route files use to reference providers and controllers
// without an ordinary `use` import.
var classStringPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_\\]*)::class`)

// AdditionalReferences regex-scans config/*.php and routes/*.php for
// `Class::class` references.
func (FrameworkA) AdditionalReferences(projectRoot string) []phpast.Reference {
	var refs []phpast.Reference
	files := append(globFiles(projectRoot, "config/*.php"), globFiles(projectRoot, "routes/*.php")...)
	for _, f := range files {
		content := readFileBestEffort(f)
		for _, m := range classStringPattern.FindAllStringSubmatch(content, -1) {
			ref := phpast.Reference{
				Kind:       phpast.RefClassString,
				SymbolName: m[1],
				FilePath:   f,
			}
			ref.SetMetadata("source", "framework-a-config")
			refs = append(refs, ref)
		}
	}
	return refs
}

// ProcessSymbols tags every class in the App namespace (or a namespace
// below it) with the plugin's name, for diagnostic/report purposes;
// the actual exemption is applied by the analyzers via ShouldIgnoreSymbol.
func (FrameworkA) ProcessSymbols(table *symboltable.Table, projectRoot string) {
	for _, s := range table.GetByKind(phpast.KindClass) {
		if s.Namespace == "App" || hasPrefix(s.Namespace, `App\`) {
			tagged := s
			tagged.SetMetadata("framework", "framework-a")
			table.Add(tagged)
		}
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
</content>
