// Package discovery walks a project root and returns the PHP-like source
// files the collector should process, honoring include/exclude globs.
// Grounded on a component/extension scanner's include/exclude walk,
// generalized from a JS/TS-specific extension check to a configurable
// include-pattern list (".php"/".phtml" is just the default).
package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Config controls which files DiscoverFiles returns.
type Config struct {
	// Include is the set of globs a file must match at least one of; a
	// nil/empty list defaults to DefaultInclude.
	Include []string
	// Exclude is the set of globs that drop a file or prune a directory
	// ("ignore.paths" from the config file feeds this list too, by the
	// host layer).
	Exclude []string
}

// DefaultInclude is the file-extension convention for PHP-like source,
// mirroring Composer's own classmap scan.
var DefaultInclude = []string{"**/*.php", "**/*.phtml"}

// DiscoverFiles walks rootDir applying cfg's include/exclude globs.
// Returns a sorted slice of absolute file paths so every downstream
// consumer sees deterministic file-ingestion order.
func DiscoverFiles(rootDir string, cfg Config) ([]string, error) {
	include := cfg.Include
	if len(include) == 0 {
		include = DefaultInclude
	}

	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range cfg.Exclude {
			if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		matched := false
		for _, pattern := range include {
			if m, _ := doublestar.PathMatch(pattern, relPath); m {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
</content>
