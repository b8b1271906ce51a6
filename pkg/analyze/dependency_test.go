package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/autoload"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/symboltable"
)

func depFixture() (manifest.Manifest, *autoload.Resolver) {
	m := manifest.Manifest{
		Name:       "acme/widgets",
		Require:    map[string]string{"psr/log": "^3.0"},
		RequireDev: map[string]string{"phpunit/phpunit": "^9"},
	}
	proj := manifest.Project{
		Manifest: m,
		Lock: manifest.Lock{
			Packages: []manifest.LockPackage{
				{Name: "psr/log", Autoload: manifest.Autoload{PSR4: map[string]manifest.PathList{`Psr\Log\`: {"src/"}}}},
			},
			PackagesDev: []manifest.LockPackage{
				{Name: "phpunit/phpunit", Autoload: manifest.Autoload{PSR4: map[string]manifest.PathList{`PHPUnit\`: {"src/"}}}},
			},
		},
	}
	return m, autoload.Build(proj)
}

// An unused dev dependency is reported at info severity with
// metadata.isDev.
func TestDependencyAnalyzerFlagsUnusedDevDependencyAsInfo(t *testing.T) {
	m, resolver := depFixture()
	table := symboltable.New()

	ctx := NewContext(table, nil, nil, nil, nil, &m, resolver)
	issues := DependencyAnalyzer{}.Analyze(ctx)

	require.Len(t, issues, 2)
	byName := map[string]Issue{}
	for _, iss := range issues {
		byName[iss.Symbol] = iss
	}

	require.Contains(t, byName, "phpunit/phpunit")
	assert.Equal(t, SeverityInfo, byName["phpunit/phpunit"].Severity)
	assert.Equal(t, true, byName["phpunit/phpunit"].Metadata["isDev"])

	require.Contains(t, byName, "psr/log")
	assert.Equal(t, SeverityWarning, byName["psr/log"].Severity)
}

func TestDependencyAnalyzerExemptsWhenResolvedFromReference(t *testing.T) {
	m, resolver := depFixture()
	table := symboltable.New()

	refs := []phpast.Reference{
		{Kind: phpast.RefTypeHint, SymbolName: `Psr\Log\LoggerInterface`, FilePath: "src/Svc.php"},
	}

	ctx := NewContext(table, refs, nil, nil, nil, &m, resolver)
	issues := DependencyAnalyzer{}.Analyze(ctx)

	require.Len(t, issues, 1)
	assert.Equal(t, "phpunit/phpunit", issues[0].Symbol)
}

func TestDependencyAnalyzerWithoutManifestReturnsNoIssues(t *testing.T) {
	table := symboltable.New()
	ctx := NewContext(table, nil, nil, nil, nil, nil, nil)

	issues := DependencyAnalyzer{}.Analyze(ctx)

	assert.Empty(t, issues)
}

func TestDependencyAnalyzerMissingSkipsUnresolvablePackage(t *testing.T) {
	m, resolver := depFixture()
	table := symboltable.New()

	// Monolog isn't in the lockfile's autoload map, so it resolves to "".
	refs := []phpast.Reference{
		{Kind: phpast.RefNew, SymbolName: `Monolog\Logger`, FilePath: "src/Svc.php"},
	}

	ctx := NewContext(table, refs, nil, nil, nil, &m, resolver)
	missing := DependencyAnalyzer{}.AnalyzeMissing(ctx)

	assert.Empty(t, missing)
}
</content>
