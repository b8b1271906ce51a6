package plugin

import (
	"regexp"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/symboltable"
)

// FrameworkB models a Symfony-like bundle/DI-container framework.
type FrameworkB struct{}

func (FrameworkB) Name() string        { return "framework-b" }
func (FrameworkB) Description() string { return "bundle-based framework with service/route YAML config" }
func (FrameworkB) Priority() int       { return 90 }

func (FrameworkB) IsApplicable(projectRoot string, m manifest.Manifest) bool {
	if fileExists(projectRoot, "framework-b.lock") || fileExists(projectRoot, "config/bundles.php") {
		return true
	}
	return dependsOnAny(m, []string{
		"framework-b/framework-bundle",
		"framework-b/http-kernel",
		"framework-b/console",
	}, nil)
}

func (FrameworkB) IgnoreSymbolPatterns() []string {
	return []string{
		`*\Controller\*`,
		`*\Command\*`,
		`*\EventSubscriber\*`,
		`*\Entity\*`,
		`*\Repository\*`,
		`*\Security\Voter\*`,
		`*\MessageHandler\*`,
		`*\Twig\*Extension`,
	}
}

func (FrameworkB) IgnoreFilePatterns() []string {
	return []string{
		"config/packages/*.yaml",
		"config/routes/*.yaml",
		"config/services.yaml",
	}
}

func (FrameworkB) EntryPoints(projectRoot string) []string {
	dirs := map[string]string{
		"src/Controller":      `App\Controller`,
		"src/Command":         `App\Command`,
		"src/EventSubscriber": `App\EventSubscriber`,
		"src/Entity":          `App\Entity`,
		"src/Repository":      `App\Repository`,
		"src/Security/Voter":  `App\Security\Voter`,
		"src/MessageHandler":  `App\MessageHandler`,
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

// serviceClassPattern matches a YAML service/route definition's `class:`
// key, the idiom framework-B's DI container config uses to reference a
// service class outside of any PHP `use` statement.
var serviceClassPattern = regexp.MustCompile(`(?m)^\s*class:\s*([A-Za-z_][A-Za-z0-9_\\]*)\s*$`)

func (FrameworkB) AdditionalReferences(projectRoot string) []phpast.Reference {
	var refs []phpast.Reference
	files := append(globFiles(projectRoot, "config/packages/*.yaml"), globFiles(projectRoot, "config/services.yaml")...)
	for _, f := range files {
		content := readFileBestEffort(f)
		for _, m := range serviceClassPattern.FindAllStringSubmatch(content, -1) {
			ref := phpast.Reference{
				Kind:       phpast.RefClassString,
				SymbolName: m[1],
				FilePath:   f,
			}
			ref.SetMetadata("source", "framework-b-config")
			refs = append(refs, ref)
		}
	}
	return refs
}

func (FrameworkB) ProcessSymbols(table *symboltable.Table, projectRoot string) {
	for _, s := range table.GetByKind(phpast.KindClass) {
		if hasPrefix(s.Namespace, `App\Controller`) || hasPrefix(s.Namespace, `App\Entity`) {
			tagged := s
			tagged.SetMetadata("framework", "framework-b")
			table.Add(tagged)
		}
	}
}
</content>
