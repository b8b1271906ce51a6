package analyze

import (
	"fmt"

	"github.com/atani/php-knip/internal/phpast"
)

// ConstantAnalyzer flags unused global and class constants in two
// separate passes: a `constant` reference with no
// SymbolParent is a global-constant reference; one with a SymbolParent is
// a class-constant reference.
type ConstantAnalyzer struct{}

func (ConstantAnalyzer) Name() string { return "constant" }

func (ConstantAnalyzer) Analyze(ctx *Context) []Issue {
	refs := ctx.ReferencesByKind(phpast.RefConstant)

	globalReferenced := newStringSet()
	classReferenced := newStringSet() // holds both "parent::name" and bare "name"
	for _, r := range refs {
		if r.SymbolParent == "" {
			qualifiedAndShort(globalReferenced, r.SymbolName)
			continue
		}
		classReferenced.add(r.SymbolParent + "::" + r.SymbolName)
		classReferenced.add(phpast.ShortName(r.SymbolParent) + "::" + r.SymbolName)
		classReferenced.add(r.SymbolName)
	}

	var issues []Issue

	for _, sym := range ctx.Table.GetByKind(phpast.KindConstant) {
		fqn := sym.FQN()
		short := phpast.ShortName(fqn)
		if globalReferenced.has(fqn) || globalReferenced.has(short) {
			continue
		}
		if isExemptByGlob(ctx, fqn) {
			continue
		}
		issues = append(issues, Issue{
			Kind:       KindUnusedConstants,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("constant %q is never referenced", fqn),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     fqn,
			SymbolKind: string(phpast.KindConstant),
		})
	}

	for _, sym := range ctx.Table.GetByKind(phpast.KindClassConstant) {
		qualified := sym.Parent + "::" + sym.Name
		shortQualified := phpast.ShortName(sym.Parent) + "::" + sym.Name
		if classReferenced.has(qualified) || classReferenced.has(shortQualified) || classReferenced.has(sym.Name) {
			continue
		}
		if isExemptByGlob(ctx, qualified) || isExemptByGlob(ctx, sym.Name) {
			continue
		}
		issues = append(issues, Issue{
			Kind:       KindUnusedConstants,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("class constant %q is never referenced", qualified),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     qualified,
			SymbolKind: string(phpast.KindClassConstant),
		})
	}

	return issues
}
</content>
