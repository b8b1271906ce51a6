package autoload

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadClassmap reads a generated classmap file (one "Fully\\Qualified\\Name
// => /absolute/path" entry per line, the shape Composer-style classmap
// dumps use) and overrides prefix resolution for the names it lists. The
// package for each entry is inferred as the first two path segments of the
// path relative to vendorDir.
func (r *Resolver) LoadClassmap(classmapPath, vendorDir string) error {
	f, err := os.Open(classmapPath)
	if err != nil {
		return fmt.Errorf("open classmap %q: %w", classmapPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, path, ok := strings.Cut(line, "=>")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if name == "" || path == "" {
			continue
		}
		r.classmap[name] = packageFromPath(path, vendorDir)
	}
	return scanner.Err()
}

// packageFromPath infers a package name from the first two path segments
// following vendorDir, e.g. "/project/vendor/psr/log/Logger.php" with
// vendorDir "/project/vendor" yields "psr/log".
func packageFromPath(path, vendorDir string) string {
	rel := strings.TrimPrefix(path, vendorDir)
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.TrimPrefix(rel, "\\")
	parts := strings.SplitN(rel, "/", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "/" + parts[1]
}
</content>
