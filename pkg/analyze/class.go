package analyze

import (
	"fmt"

	"github.com/atani/php-knip/internal/phpast"
)

// ClassAnalyzer flags declared classes with no reachable use (spec
// §4.5.1).
type ClassAnalyzer struct{}

func (ClassAnalyzer) Name() string { return "class" }

func (ClassAnalyzer) Analyze(ctx *Context) []Issue {
	refs := ctx.ReferencesByKinds(
		phpast.RefNew, phpast.RefExtends, phpast.RefImplements, phpast.RefUseTrait,
		phpast.RefStaticCall, phpast.RefStaticProperty, phpast.RefConstant,
		phpast.RefInstanceOf, phpast.RefTypeHint, phpast.RefReturnType,
		phpast.RefCatch, phpast.RefClassString,
	)
	referenced := newStringSet()
	for _, r := range refs {
		qualifiedAndShort(referenced, r.SymbolName)
	}
	extendsTargets := newStringSet()
	for _, r := range filterByKinds(refs, phpast.RefExtends) {
		qualifiedAndShort(extendsTargets, r.SymbolName)
	}

	var issues []Issue
	for _, sym := range ctx.Table.GetByKind(phpast.KindClass) {
		fqn := sym.FQN()
		short := phpast.ShortName(fqn)

		if referenced.has(fqn) || referenced.has(short) {
			continue
		}
		if sym.IsAbstract && (extendsTargets.has(fqn) || extendsTargets.has(short)) {
			continue
		}
		if isExemptByGlob(ctx, fqn) {
			continue
		}

		issues = append(issues, Issue{
			Kind:       KindUnusedClasses,
			Severity:   SeverityError,
			Message:    fmt.Sprintf("class %q is never referenced", fqn),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     fqn,
			SymbolKind: string(phpast.KindClass),
		})
	}
	return issues
}
</content>
