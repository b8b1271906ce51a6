package analyze

import (
	"fmt"

	"github.com/atani/php-knip/internal/phpast"
)

// TraitAnalyzer flags declared traits never pulled in with `use` (spec
// §4.5.3).
type TraitAnalyzer struct{}

func (TraitAnalyzer) Name() string { return "trait" }

func (TraitAnalyzer) Analyze(ctx *Context) []Issue {
	referenced := newStringSet()
	for _, r := range ctx.ReferencesByKind(phpast.RefUseTrait) {
		qualifiedAndShort(referenced, r.SymbolName)
	}

	var issues []Issue
	for _, sym := range ctx.Table.GetByKind(phpast.KindTrait) {
		fqn := sym.FQN()
		short := phpast.ShortName(fqn)

		if referenced.has(fqn) || referenced.has(short) {
			continue
		}
		if isExemptByGlob(ctx, fqn) {
			continue
		}

		issues = append(issues, Issue{
			Kind:       KindUnusedTraits,
			Severity:   SeverityError,
			Message:    fmt.Sprintf("trait %q is never used", fqn),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     fqn,
			SymbolKind: string(phpast.KindTrait),
		})
	}
	return issues
}
</content>
