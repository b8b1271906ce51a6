package analyze

import (
	"fmt"

	"github.com/atani/php-knip/internal/phpast"
)

// InterfaceAnalyzer flags declared interfaces with no implementer, type
// hint, return type, or sub-interface.
type InterfaceAnalyzer struct{}

func (InterfaceAnalyzer) Name() string { return "interface" }

func (InterfaceAnalyzer) Analyze(ctx *Context) []Issue {
	refs := ctx.ReferencesByKinds(phpast.RefImplements, phpast.RefTypeHint, phpast.RefReturnType)
	referenced := newStringSet()
	for _, r := range refs {
		qualifiedAndShort(referenced, r.SymbolName)
	}
	extendsTargets := newStringSet()
	for _, r := range ctx.ReferencesByKind(phpast.RefExtends) {
		qualifiedAndShort(extendsTargets, r.SymbolName)
	}

	var issues []Issue
	for _, sym := range ctx.Table.GetByKind(phpast.KindInterface) {
		fqn := sym.FQN()
		short := phpast.ShortName(fqn)

		if referenced.has(fqn) || referenced.has(short) {
			continue
		}
		if extendsTargets.has(fqn) || extendsTargets.has(short) {
			continue
		}
		if isExemptByGlob(ctx, fqn) {
			continue
		}

		issues = append(issues, Issue{
			Kind:       KindUnusedInterfaces,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("interface %q is never implemented or referenced", fqn),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     fqn,
			SymbolKind: string(phpast.KindInterface),
		})
	}
	return issues
}
</content>
