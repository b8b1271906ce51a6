package collector

import (
	"strings"

	"github.com/VKCOM/php-parser/pkg/ast"
)

// flattenTypeNames recursively unwraps nullable/union/intersection type
// nodes into the list of leaf type names they reference (union types split;
// "union/intersection/nullable recursively flattened").
func flattenTypeNames(node ast.Vertex) []string {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case *ast.Nullable:
		return flattenTypeNames(n.Expr)
	case *ast.Union:
		var out []string
		for _, t := range n.Types {
			out = append(out, flattenTypeNames(t)...)
		}
		return out
	case *ast.Intersection:
		var out []string
		for _, t := range n.Types {
			out = append(out, flattenTypeNames(t)...)
		}
		return out
	case *ast.Name, *ast.NameFullyQualified:
		if name := extractName(n); name != "" {
			return []string{name}
		}
	case *ast.Identifier:
		return []string{string(n.Value)}
	}
	return nil
}

// nonBuiltinTypeNames returns the flattened type names of node, excluding
// the closed built-in-type set (case-insensitive, matching PHP
// type-name semantics).
func nonBuiltinTypeNames(node ast.Vertex) []string {
	var out []string
	for _, name := range flattenTypeNames(node) {
		if isBuiltinType(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func isBuiltinType(name string) bool {
	lower := strings.ToLower(strings.TrimPrefix(name, `\`))
	switch lower {
	case "int", "string", "bool", "float", "array", "object", "callable",
		"iterable", "void", "null", "mixed", "never", "true", "false",
		"self", "static", "parent":
		return true
	}
	return false
}
</content>
