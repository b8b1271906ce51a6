package plugin

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atani/php-knip/pkg/manifest"
)

// fileExists reports whether projectRoot/relPath exists.
func fileExists(projectRoot, relPath string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, relPath))
	return err == nil
}

// dependsOnAny reports whether m requires (prod or dev) any of names, or
// any package whose name matches one of the given glob patterns.
func dependsOnAny(m manifest.Manifest, names []string, globs []string) bool {
	for _, dep := range m.Dependencies() {
		for _, name := range names {
			if dep.Name == name {
				return true
			}
		}
		for _, g := range globs {
			if ok, err := doublestar.Match(g, dep.Name); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// globFiles expands a doublestar pattern relative to projectRoot into
// absolute paths of existing regular files. A pattern that matches
// nothing, or a glob syntax error, yields an empty, non-fatal result
// (regex-based extraction here is best-effort, not a parser).
func globFiles(projectRoot, pattern string) []string {
	matches, err := doublestar.Glob(os.DirFS(projectRoot), pattern)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(projectRoot, m))
	}
	return out
}

// readFileBestEffort returns a file's contents, or empty on any error,
// absorbing the failure rather than aborting extraction.
func readFileBestEffort(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// pathToNamespacedFQN derives a plausible class FQN from a file path by
// convention: the path relative to baseDir, minus the .php extension,
// with path separators rewritten to namespace separators and baseNamespace
// prefixed. This mirrors the PSR-4 "directory mirrors namespace" rule the
// Autoload Resolver applies to declared mappings, extended here as a
// best-effort guess for conventional framework directories that are never
// explicitly declared in a manifest autoload block.
func pathToNamespacedFQN(projectRoot, baseDir, baseNamespace, path string) string {
	rel, err := filepath.Rel(filepath.Join(projectRoot, baseDir), path)
	if err != nil {
		return ""
	}
	rel = strings.TrimSuffix(rel, ".php")
	rel = strings.ReplaceAll(rel, string(filepath.Separator), `\`)
	if baseNamespace == "" {
		return rel
	}
	return baseNamespace + `\` + rel
}
</content>
