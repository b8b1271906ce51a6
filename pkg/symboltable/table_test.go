package symboltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/internal/phpast"
)

func classSym(fqn, file string) phpast.Symbol {
	ns, name := "", fqn
	if idx := lastSep(fqn); idx >= 0 {
		ns, name = fqn[:idx], fqn[idx+1:]
	}
	return phpast.Symbol{Kind: phpast.KindClass, Name: name, Namespace: ns, FilePath: file}
}

func lastSep(s string) int {
	idx := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			idx = i
		}
	}
	return idx
}

func TestAddAndGetAllPreservesInsertionOrder(t *testing.T) {
	tbl := New()
	tbl.Add(classSym(`App\B`, "b.php"))
	tbl.Add(classSym(`App\A`, "a.php"))

	all := tbl.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "A", all[1].Name)
}

func TestAddDuplicateIDReplacesInPlace(t *testing.T) {
	tbl := New()
	first := classSym(`App\A`, "a.php")
	first.StartLine = 1
	tbl.Add(first)

	second := classSym(`App\A`, "a.php")
	second.StartLine = 99
	tbl.Add(second)

	all := tbl.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, 99, all[0].StartLine)
}

func TestRemoveReconstructsIndices(t *testing.T) {
	tbl := New()
	sym := classSym(`App\A`, "a.php")
	tbl.Add(sym)
	require.True(t, tbl.Has(sym.ID()))

	tbl.Remove(sym.ID())
	assert.False(t, tbl.Has(sym.ID()))
	assert.Empty(t, tbl.GetByKind(phpast.KindClass))
	assert.Empty(t, tbl.GetByFile("a.php"))
	assert.Empty(t, tbl.GetByNamespace("App"))
}

func TestGetClassMembers(t *testing.T) {
	tbl := New()
	tbl.Add(classSym(`App\Svc`, "svc.php"))
	tbl.Add(phpast.Symbol{Kind: phpast.KindMethod, Name: "run", Parent: `App\Svc`, FilePath: "svc.php"})
	tbl.Add(phpast.Symbol{Kind: phpast.KindMethod, Name: "other", Parent: `App\Other`, FilePath: "svc.php"})

	members := tbl.GetClassMembers(`App\Svc`)
	require.Len(t, members, 1)
	assert.Equal(t, "run", members[0].Name)
}

func TestFindByFQNFallsBackToShortName(t *testing.T) {
	tbl := New()
	tbl.Add(classSym(`App\Models\User`, "user.php"))

	_, ok := tbl.FindClass(`App\Models\User`)
	assert.True(t, ok)

	found, ok := tbl.FindClass("User")
	assert.True(t, ok)
	assert.Equal(t, "User", found.Name)

	_, ok = tbl.FindClass("Missing")
	assert.False(t, ok)
}

func TestFindMethodMatchesExactOrShortParent(t *testing.T) {
	tbl := New()
	tbl.Add(phpast.Symbol{Kind: phpast.KindMethod, Name: "run", Parent: `App\Svc`, FilePath: "svc.php"})

	_, ok := tbl.FindMethod(`App\Svc`, "run")
	assert.True(t, ok)

	_, ok = tbl.FindMethod("Svc", "run")
	assert.True(t, ok)

	_, ok = tbl.FindMethod("Svc", "missing")
	assert.False(t, ok)
}

func TestStatsCountsByKindAndNamespace(t *testing.T) {
	tbl := New()
	tbl.Add(classSym(`App\A`, "a.php"))
	tbl.Add(classSym(`App\B`, "b.php"))
	tbl.Add(phpast.Symbol{Kind: phpast.KindFunction, Name: "helper", FilePath: "f.php"})

	stats := tbl.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByKind[phpast.KindClass])
	assert.Equal(t, 1, stats.ByKind[phpast.KindFunction])
	assert.Equal(t, 2, stats.ByNamespace["App"])
	assert.Equal(t, 3, stats.FileCount)
}

func TestFilesReturnsSortedDistinctPaths(t *testing.T) {
	tbl := New()
	tbl.Add(classSym(`App\B`, "b.php"))
	tbl.Add(classSym(`App\A`, "a.php"))
	tbl.Add(phpast.Symbol{Kind: phpast.KindFunction, Name: "helper", FilePath: "a.php"})

	assert.Equal(t, []string{"a.php", "b.php"}, tbl.Files())
}
</content>
