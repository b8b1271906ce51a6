package analyze

import (
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// matchSymbolGlob matches a symbol-pattern glob against candidate. Spec
// §4.5: "for symbol patterns, both `*` and `**` collapse to 'any
// characters'" — unlike a file-path glob, a symbol pattern has no
// separator-crossing distinction, so this is translated to an anchored
// regular expression directly rather than reused through doublestar
// (which does distinguish `*` from `**`).
func matchSymbolGlob(pattern, candidate string) bool {
	return symbolGlobRegexp(pattern).MatchString(candidate)
}

func matchAnySymbolGlob(patterns []string, candidate string) bool {
	for _, p := range patterns {
		if matchSymbolGlob(p, candidate) {
			return true
		}
	}
	return false
}

var (
	symbolGlobCacheMu sync.Mutex
	symbolGlobCache   = map[string]*regexp.Regexp{}
)

func symbolGlobRegexp(pattern string) *regexp.Regexp {
	symbolGlobCacheMu.Lock()
	defer symbolGlobCacheMu.Unlock()

	if re, ok := symbolGlobCache[pattern]; ok {
		return re
	}

	var b strings.Builder
	b.WriteString("^")
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch c {
		case '*':
			// Consume a run of consecutive `*` as one wildcard: `*` and
			// `**` are equivalent for symbol patterns.
			for i < len(pattern) && pattern[i] == '*' {
				i++
			}
			b.WriteString(".*")
			continue
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
		i++
	}
	b.WriteString("$")

	re := regexp.MustCompile(b.String())
	symbolGlobCache[pattern] = re
	return re
}

// matchPathGlob matches a file-path-pattern glob against candidate (spec
// §4.5: "`**` matches across separators and `*` matches within one
// segment"), via doublestar which already implements that distinction.
func matchPathGlob(pattern, candidate string) bool {
	ok, err := doublestar.Match(pattern, candidate)
	return err == nil && ok
}

func matchAnyPathGlob(patterns []string, candidate string) bool {
	for _, p := range patterns {
		if matchPathGlob(p, candidate) {
			return true
		}
	}
	return false
}
</content>
