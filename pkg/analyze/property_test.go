package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/symboltable"
)

func TestPropertyAnalyzerFlagsUnaccessedPrivate(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindProperty, Name: "cache", Parent: `App\Svc`, Visibility: phpast.VisibilityPrivate, FilePath: "src/Svc.php"})

	issues := PropertyAnalyzer{}.Analyze(newTestContext(table, nil))

	require.Len(t, issues, 1)
	assert.Equal(t, `App\Svc::$cache`, issues[0].Symbol)
}

func TestPropertyAnalyzerExemptsOnStaticAccess(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindProperty, Name: "instance", Parent: `App\Svc`, Visibility: phpast.VisibilityPrivate, IsStatic: true, FilePath: "src/Svc.php"})

	refs := []phpast.Reference{
		{Kind: phpast.RefStaticProperty, SymbolName: "instance", SymbolParent: `App\Svc`, FilePath: "src/Svc.php"},
	}

	issues := PropertyAnalyzer{}.Analyze(newTestContext(table, refs))

	assert.Empty(t, issues)
}

func TestPropertyAnalyzerIgnoresNonPrivate(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindProperty, Name: "name", Parent: `App\Svc`, Visibility: phpast.VisibilityProtected, FilePath: "src/Svc.php"})

	issues := PropertyAnalyzer{}.Analyze(newTestContext(table, nil))

	assert.Empty(t, issues)
}
</content>
