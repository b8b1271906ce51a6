package collector

import (
	"strings"

	"github.com/VKCOM/php-parser/pkg/ast"
)

// extractName returns the dotted name written at node, for *ast.Name and
// *ast.NameFullyQualified vertices. A fully-qualified name keeps its
// leading separator so phpast.ResolveName can strip it during the first resolution step.
// Grounded on the symbolCollector.extractName helper in the php-analyzer
// reference file.
func extractName(node ast.Vertex) string {
	if node == nil {
		return ""
	}
	switch n := node.(type) {
	case *ast.Name:
		return joinNameParts(n.Parts)
	case *ast.NameFullyQualified:
		return `\` + joinNameParts(n.Parts)
	}
	return ""
}

func joinNameParts(parts []ast.Vertex) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if namePart, ok := part.(*ast.NamePart); ok {
			out = append(out, string(namePart.Value))
		}
	}
	return strings.Join(out, `\`)
}

// extractIdentifier returns the raw value of an *ast.Identifier, used for
// class/function/method/property/constant names.
func extractIdentifier(node ast.Vertex) string {
	if node == nil {
		return ""
	}
	if ident, ok := node.(*ast.Identifier); ok {
		return string(ident.Value)
	}
	return ""
}

// extractVariableName returns the bare name of an *ast.ExprVariable (the
// part after '$').
func extractVariableName(node ast.Vertex) string {
	if node == nil {
		return ""
	}
	if v, ok := node.(*ast.ExprVariable); ok {
		return extractIdentifier(v.Name)
	}
	return ""
}

// extractVisibility returns "public", "protected" or "private" from a
// modifier list, defaulting to public per PHP semantics.
func extractVisibility(modifiers []ast.Vertex) string {
	for _, mod := range modifiers {
		if ident, ok := mod.(*ast.Identifier); ok {
			switch string(ident.Value) {
			case "public", "protected", "private":
				return string(ident.Value)
			}
		}
	}
	return "public"
}

func hasModifier(modifiers []ast.Vertex, target string) bool {
	for _, mod := range modifiers {
		if ident, ok := mod.(*ast.Identifier); ok && string(ident.Value) == target {
			return true
		}
	}
	return false
}

// scalarStringValue returns the decoded literal value of a *ast.ScalarString,
// or ("", false) for anything else.
func scalarStringValue(node ast.Vertex) (string, bool) {
	s, ok := node.(*ast.ScalarString)
	if !ok || s.Value == nil {
		return "", false
	}
	raw := string(s.Value)
	raw = strings.Trim(raw, `"'`)
	return raw, true
}

// memberNameOf extracts the bare string for a member-access target
// (::method, ->prop, ::$prop) that can either be a literal Identifier or a
// dynamic expression. Returns ("", false) when the target is dynamic.
func memberNameOf(node ast.Vertex) (string, bool) {
	switch n := node.(type) {
	case *ast.Identifier:
		return string(n.Value), true
	case *ast.ExprVariable:
		name := extractIdentifier(n.Name)
		if name != "" {
			return name, true
		}
	}
	return "", false
}
</content>
