package analyze

import (
	"fmt"
	"strings"

	"github.com/atani/php-knip/internal/phpast"
)

// UseStatementAnalyzer flags per-file `use` imports that the file never
// exercises. The used-name set is intentionally permissive
// (FQN, short name, and first namespace segment all count), matching the
// spec's explicit choice to accept false negatives here rather than walk
// full alias resolution.
type UseStatementAnalyzer struct{}

func (UseStatementAnalyzer) Name() string { return "use_statement" }

func (UseStatementAnalyzer) Analyze(ctx *Context) []Issue {
	refsByFile := make(map[string][]phpast.Reference)
	for _, r := range ctx.References {
		if r.IsDynamic {
			continue
		}
		refsByFile[r.FilePath] = append(refsByFile[r.FilePath], r)
	}

	var issues []Issue
	for file, imports := range ctx.Imports {
		used := usedNameSet(refsByFile[file])

		for _, imp := range imports {
			if isImportUsed(imp, used) {
				continue
			}
			if isExemptByGlob(ctx, imp.FQN) {
				continue
			}

			issues = append(issues, Issue{
				Kind:       KindUnusedUseStatements,
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("use statement %q is never referenced", imp.FQN),
				File:       file,
				Line:       imp.Line,
				Symbol:     imp.FQN,
				SymbolKind: "use_statement",
			})
		}
	}
	return issues
}

func usedNameSet(refs []phpast.Reference) stringSet {
	set := newStringSet()
	for _, r := range refs {
		addNameAndSegments(set, r.SymbolName)
		addNameAndSegments(set, r.SymbolParent)
	}
	return set
}

func addNameAndSegments(set stringSet, name string) {
	if name == "" {
		return
	}
	set.add(name)
	set.add(phpast.ShortName(name))
	if first, _, ok := strings.Cut(name, phpast.Sep); ok {
		set.add(first)
	}
}

func isImportUsed(imp phpast.Import, used stringSet) bool {
	if used.has(imp.Alias) || used.has(imp.FQN) {
		return true
	}
	short := phpast.ShortName(imp.FQN)
	if short != imp.Alias && used.has(short) {
		return true
	}
	return false
}
</content>
