package analyze

import (
	"fmt"

	"github.com/atani/php-knip/internal/phpast"
)

// PropertyAnalyzer flags private properties with no access site (spec
// §4.5.5).
type PropertyAnalyzer struct{}

func (PropertyAnalyzer) Name() string { return "property" }

func (PropertyAnalyzer) Analyze(ctx *Context) []Issue {
	accesses := ctx.ReferencesByKinds(phpast.RefPropertyAccess, phpast.RefStaticProperty)

	bareNames := newStringSet()
	qualifiedAccesses := newStringSet()
	for _, r := range accesses {
		bareNames.add(r.SymbolName)
		if r.SymbolParent != "" {
			qualifiedAccesses.add(r.SymbolParent + "::$" + r.SymbolName)
			qualifiedAccesses.add(phpast.ShortName(r.SymbolParent) + "::$" + r.SymbolName)
		}
	}

	var issues []Issue
	for _, sym := range ctx.Table.GetByKind(phpast.KindProperty) {
		if sym.Visibility != phpast.VisibilityPrivate {
			continue
		}

		qualified := sym.Parent + "::$" + sym.Name
		shortQualified := phpast.ShortName(sym.Parent) + "::$" + sym.Name
		if bareNames.has(sym.Name) || qualifiedAccesses.has(qualified) || qualifiedAccesses.has(shortQualified) {
			continue
		}
		if isExemptByGlob(ctx, qualified) || isExemptByGlob(ctx, sym.Name) {
			continue
		}

		issues = append(issues, Issue{
			Kind:       KindUnusedProperties,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("private property %q is never accessed", qualified),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     qualified,
			SymbolKind: string(phpast.KindProperty),
		})
	}
	return issues
}
</content>
