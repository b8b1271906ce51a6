package analyze

import "github.com/atani/php-knip/internal/phpast"

// stringSet is a plain set-of-strings container,
// in place of a bare map[string]bool read as a boolean lookup table.
type stringSet map[string]struct{}

func newStringSet() stringSet {
	return make(stringSet)
}

func (s stringSet) add(v string) {
	if v == "" {
		return
	}
	s[v] = struct{}{}
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// referencedNames collects SymbolName (and, when includeParent is true,
// SymbolParent) from every non-dynamic reference of the given kinds.
func referencedNames(refs []phpast.Reference, includeParent bool) stringSet {
	set := newStringSet()
	for _, r := range refs {
		if r.IsDynamic {
			continue
		}
		set.add(r.SymbolName)
		if includeParent {
			set.add(r.SymbolParent)
		}
	}
	return set
}

// filterByKinds returns the subset of refs whose Kind is in kinds.
func filterByKinds(refs []phpast.Reference, kinds ...phpast.ReferenceKind) []phpast.Reference {
	set := make(map[phpast.ReferenceKind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	var out []phpast.Reference
	for _, r := range refs {
		if set[r.Kind] {
			out = append(out, r)
		}
	}
	return out
}

// qualifiedAndShort adds both fqn and its short name to the set.
func qualifiedAndShort(set stringSet, fqn string) {
	set.add(fqn)
	set.add(phpast.ShortName(fqn))
}

// isExemptByGlob reports whether name matches any configured
// ignore.symbols glob or any active plugin's ignore-symbol glob (spec
// §4.5: shared final exemption step across every symbol-kind analyzer).
func isExemptByGlob(ctx *Context, name string) bool {
	if ctx.PluginIgnoreSymbol(name) {
		return true
	}
	return matchAnySymbolGlob(ctx.Config.IgnoreSymbols(), name)
}

// isFileExemptByGlob reports whether path matches any configured
// ignore.paths glob or any active plugin's ignore-file glob.
func isFileExemptByGlob(ctx *Context, path string) bool {
	if ctx.PluginIgnoreFile(path) {
		return true
	}
	return matchAnyPathGlob(ctx.Config.IgnorePaths(), path)
}
</content>
