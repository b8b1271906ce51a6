package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/symboltable"
)

func TestUseStatementAnalyzerFlagsUnreferencedImport(t *testing.T) {
	table := symboltable.New()
	imports := map[string][]phpast.Import{
		"src/Svc.php": {{FQN: `Psr\Log\LoggerInterface`, Alias: "LoggerInterface", Kind: phpast.ImportClass}},
	}

	issues := UseStatementAnalyzer{}.Analyze(NewContext(table, nil, nil, imports, nil, nil, nil))

	require.Len(t, issues, 1)
	assert.Equal(t, `Psr\Log\LoggerInterface`, issues[0].Symbol)
}

func TestUseStatementAnalyzerExemptsWhenAliasUsedInFile(t *testing.T) {
	table := symboltable.New()
	imports := map[string][]phpast.Import{
		"src/Svc.php": {{FQN: `Psr\Log\LoggerInterface`, Alias: "LoggerInterface", Kind: phpast.ImportClass}},
	}
	refs := []phpast.Reference{
		{Kind: phpast.RefTypeHint, SymbolName: "LoggerInterface", FilePath: "src/Svc.php"},
	}

	issues := UseStatementAnalyzer{}.Analyze(NewContext(table, refs, nil, imports, nil, nil, nil))

	assert.Empty(t, issues)
}

// A short-name-only reference in one file doesn't exempt an
// identically-aliased import in an unrelated second file — the
// used-name set is per file, not project-wide.
func TestUseStatementAnalyzerUsedSetIsPerFileNotProjectWide(t *testing.T) {
	table := symboltable.New()
	imports := map[string][]phpast.Import{
		"src/A.php": {{FQN: `App\Util\Helper`, Alias: "Helper", Kind: phpast.ImportClass}},
		"src/B.php": {{FQN: `App\Util\Helper`, Alias: "Helper", Kind: phpast.ImportClass}},
	}
	refs := []phpast.Reference{
		{Kind: phpast.RefNew, SymbolName: "Helper", FilePath: "src/B.php"},
	}

	issues := UseStatementAnalyzer{}.Analyze(NewContext(table, refs, nil, imports, nil, nil, nil))

	require.Len(t, issues, 1)
	assert.Equal(t, "src/A.php", issues[0].File)
}
</content>
