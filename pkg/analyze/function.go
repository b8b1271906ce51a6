package analyze

import (
	"fmt"
	"strings"

	"github.com/atani/php-knip/internal/phpast"
)

// FunctionAnalyzer flags declared functions never called.
// Two extra exemptions beyond the usual referenced-set check: names
// starting with `_` (conventionally internal/reserved), and a
// callback-string sweep over every reference's metadata.stringLiterals
// (covers `array_map('my_func', ...)`-style indirect calls).
type FunctionAnalyzer struct{}

func (FunctionAnalyzer) Name() string { return "function" }

func (FunctionAnalyzer) Analyze(ctx *Context) []Issue {
	refs := ctx.ReferencesByKind(phpast.RefFunctionCall)
	referenced := newStringSet()
	for _, r := range refs {
		qualifiedAndShort(referenced, r.SymbolName)
	}

	callbackStrings := newStringSet()
	for _, r := range ctx.References {
		for _, lit := range r.StringLiterals() {
			callbackStrings.add(lit)
		}
	}

	var issues []Issue
	for _, sym := range ctx.Table.GetByKind(phpast.KindFunction) {
		fqn := sym.FQN()
		short := phpast.ShortName(fqn)

		if referenced.has(fqn) || referenced.has(short) {
			continue
		}
		if strings.HasPrefix(short, "_") {
			continue
		}
		if callbackStrings.has(fqn) || callbackStrings.has(short) {
			continue
		}
		if isExemptByGlob(ctx, fqn) {
			continue
		}

		issues = append(issues, Issue{
			Kind:       KindUnusedFunctions,
			Severity:   SeverityError,
			Message:    fmt.Sprintf("function %q is never called", fqn),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     fqn,
			SymbolKind: string(phpast.KindFunction),
		})
	}
	return issues
}
</content>
