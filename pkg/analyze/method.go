package analyze

import (
	"fmt"

	"github.com/atani/php-knip/internal/phpast"
)

// MethodAnalyzer flags private methods with no call site.
// Magic methods are exempt; the collector already tags them with
// metadata.isMagic (pkg/collector's closed list) so this analyzer doesn't
// repeat it.
type MethodAnalyzer struct{}

func (MethodAnalyzer) Name() string { return "method" }

func (MethodAnalyzer) Analyze(ctx *Context) []Issue {
	calls := ctx.ReferencesByKinds(phpast.RefMethodCall, phpast.RefStaticCall)

	// bare method names, and "parent::method"/"shortParent::method" pairs.
	bareNames := newStringSet()
	qualifiedCalls := newStringSet()
	for _, r := range calls {
		bareNames.add(r.SymbolName)
		if r.SymbolParent != "" {
			qualifiedCalls.add(r.SymbolParent + "::" + r.SymbolName)
			qualifiedCalls.add(phpast.ShortName(r.SymbolParent) + "::" + r.SymbolName)
		}
	}

	var issues []Issue
	for _, sym := range ctx.Table.GetByKind(phpast.KindMethod) {
		if sym.Visibility != phpast.VisibilityPrivate {
			continue
		}
		if isMagic, _ := sym.Metadata["isMagic"].(bool); isMagic {
			continue
		}

		qualified := sym.Parent + "::" + sym.Name
		shortQualified := phpast.ShortName(sym.Parent) + "::" + sym.Name
		if bareNames.has(sym.Name) || qualifiedCalls.has(qualified) || qualifiedCalls.has(shortQualified) {
			continue
		}
		if isExemptByGlob(ctx, qualified) || isExemptByGlob(ctx, sym.Name) {
			continue
		}

		issues = append(issues, Issue{
			Kind:       KindUnusedMethods,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("private method %q is never called", qualified),
			File:       sym.FilePath,
			Line:       sym.StartLine,
			Symbol:     qualified,
			SymbolKind: string(phpast.KindMethod),
		})
	}
	return issues
}
</content>
