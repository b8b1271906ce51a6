// Package hostconfig loads `.phpknip.yaml`, the one file this tool fully
// owns the schema of, and merges it with CLI flag overrides into the
// analyze.Config map every analyzer reads. Uses gopkg.in/yaml.v3 rather
// than hand-rolling a parser for a format no component here otherwise
// touches.
package hostconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atani/php-knip/pkg/analyze"
	"github.com/atani/php-knip/pkg/phpkniperr"
)

// File is the decoded shape of `.phpknip.yaml`.
type File struct {
	BasePath     string     `yaml:"basePath"`
	EntryPoints  []string   `yaml:"entry_points"`
	Framework    string     `yaml:"framework"`
	Ignore       IgnoreFile `yaml:"ignore"`
	ManifestPath string     `yaml:"manifestPath"`
	LockPath     string     `yaml:"lockPath"`
	Exclude      []string   `yaml:"exclude"`
}

// IgnoreFile is the "ignore.*" block of `.phpknip.yaml`.
type IgnoreFile struct {
	Symbols      []string `yaml:"symbols"`
	Paths        []string `yaml:"paths"`
	Dependencies []string `yaml:"dependencies"`
}

// Load reads and parses path. A missing file returns a zero-value File —
// the config file is optional, and no `.phpknip.yaml` means every
// analyzer runs with default settings; any other I/O or YAML failure is
// a fatal ConfigError.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, phpkniperr.NewConfigError(path, fmt.Errorf("read host config: %w", err))
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, phpkniperr.NewConfigError(path, fmt.Errorf("parse host config YAML: %w", err))
	}
	return f, nil
}

// Overrides carries CLI-flag values that take precedence over whatever
// `.phpknip.yaml` declares, when set.
type Overrides struct {
	BasePath  string
	Framework string
}

// ToAnalyzeConfig flattens File (plus any CLI overrides) into the raw
// key-value map analyze.Config wraps.
func (f File) ToAnalyzeConfig(overrides Overrides) *analyze.Config {
	basePath := f.BasePath
	if overrides.BasePath != "" {
		basePath = overrides.BasePath
	}

	values := map[string]any{
		"basePath":            basePath,
		"entry_points":        f.EntryPoints,
		"ignore.symbols":      f.Ignore.Symbols,
		"ignore.paths":        f.Ignore.Paths,
		"ignore.dependencies": f.Ignore.Dependencies,
	}
	return analyze.NewConfig(values)
}

// FrameworkHint resolves the "auto"-vs-named plugin-activation hint,
// preferring an explicit CLI override over the config file's value.
func (f File) FrameworkHint(overrides Overrides) string {
	if overrides.Framework != "" {
		return overrides.Framework
	}
	if f.Framework != "" {
		return f.Framework
	}
	return "auto"
}
</content>
