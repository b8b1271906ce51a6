package phpast

import "strings"

// BuiltinTypes is the closed set of type names excluded from type-hint and
// return-type references.
var BuiltinTypes = map[string]bool{
	"int": true, "string": true, "bool": true, "float": true,
	"array": true, "object": true, "callable": true, "iterable": true,
	"void": true, "null": true, "mixed": true, "never": true,
	"true": true, "false": true,
	"self": true, "static": true, "parent": true,
}

// AliasMap maps an in-scope alias to the fully-qualified name it stands for.
type AliasMap map[string]string

// ResolveName implements the name-resolution algorithm for a
// non-empty dotted name n evaluated against the current namespace and the
// current alias map.
func ResolveName(n, currentNamespace string, aliases AliasMap) string {
	if n == "" {
		return n
	}
	// 1. Already fully-qualified: strip the leading separator.
	if strings.HasPrefix(n, Sep) {
		return strings.TrimPrefix(n, Sep)
	}

	// 2. Split on separator into head, rest...
	head := n
	rest := ""
	if idx := strings.Index(n, Sep); idx >= 0 {
		head = n[:idx]
		rest = n[idx+1:]
	}

	if fqn, ok := aliases[head]; ok {
		if rest != "" {
			return fqn + Sep + rest
		}
		return fqn
	}

	// 3. Fall back to current namespace.
	if currentNamespace != "" {
		return currentNamespace + Sep + n
	}
	return n
}
</content>
