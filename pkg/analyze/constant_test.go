package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/symboltable"
)

func TestConstantAnalyzerFlagsUnreferencedGlobalConstant(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindConstant, Name: "VERSION", Namespace: "App", FilePath: "src/consts.php"})

	issues := ConstantAnalyzer{}.Analyze(newTestContext(table, nil))

	require.Len(t, issues, 1)
	assert.Equal(t, `App\VERSION`, issues[0].Symbol)
}

func TestConstantAnalyzerExemptsGlobalConstantReferencedByBareName(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindConstant, Name: "VERSION", Namespace: "", FilePath: "src/consts.php"})

	refs := []phpast.Reference{
		{Kind: phpast.RefConstant, SymbolName: "VERSION", FilePath: "src/main.php"},
	}

	issues := ConstantAnalyzer{}.Analyze(newTestContext(table, refs))

	assert.Empty(t, issues)
}

func TestConstantAnalyzerFlagsUnreferencedClassConstant(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindClassConstant, Name: "MAX", Parent: `App\Svc`, FilePath: "src/Svc.php"})

	issues := ConstantAnalyzer{}.Analyze(newTestContext(table, nil))

	require.Len(t, issues, 1)
	assert.Equal(t, `App\Svc::MAX`, issues[0].Symbol)
}

func TestConstantAnalyzerExemptsClassConstantReferencedViaQualifiedName(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindClassConstant, Name: "MAX", Parent: `App\Svc`, FilePath: "src/Svc.php"})

	refs := []phpast.Reference{
		{Kind: phpast.RefConstant, SymbolName: "MAX", SymbolParent: `App\Svc`, FilePath: "src/main.php"},
	}

	issues := ConstantAnalyzer{}.Analyze(newTestContext(table, refs))

	assert.Empty(t, issues)
}

func TestConstantAnalyzerGlobalConstantDefineStyleNotFlaggedWhenReferenced(t *testing.T) {
	table := symboltable.New()
	table.Add(phpast.Symbol{Kind: phpast.KindConstant, Name: "APP_ROOT", Namespace: "", FilePath: "bootstrap.php"})

	refs := []phpast.Reference{
		{Kind: phpast.RefConstant, SymbolName: "APP_ROOT", FilePath: "src/main.php"},
	}

	issues := ConstantAnalyzer{}.Analyze(newTestContext(table, refs))

	assert.Empty(t, issues)
}
</content>
