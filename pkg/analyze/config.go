package analyze

// Config is the configuration map consumed by analyzers ("basePath",
// "entry_points", "ignore.symbols", "ignore.paths", "ignore.dependencies").
type Config struct {
	values map[string]any
}

// NewConfig wraps a raw key→value map (typically decoded from
// `.phpknip.yaml` by pkg/hostconfig).
func NewConfig(values map[string]any) *Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &Config{values: values}
}

// Value returns the raw value for key, or def when absent.
func (c *Config) Value(key string, def any) any {
	if c == nil {
		return def
	}
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// StringSlice returns the string-list value for key (used for every
// `ignore.*` and `entry_points` glob list), or nil when absent or of the
// wrong shape.
func (c *Config) StringSlice(key string) []string {
	v := c.Value(key, nil)
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// BasePath returns the configured basePath, or "" when unset.
func (c *Config) BasePath() string {
	v, _ := c.Value("basePath", "").(string)
	return v
}

// IgnoreSymbols returns the `ignore.symbols` glob list.
func (c *Config) IgnoreSymbols() []string { return c.StringSlice("ignore.symbols") }

// IgnorePaths returns the `ignore.paths` glob list.
func (c *Config) IgnorePaths() []string { return c.StringSlice("ignore.paths") }

// IgnoreDependencies returns the `ignore.dependencies` glob list.
func (c *Config) IgnoreDependencies() []string { return c.StringSlice("ignore.dependencies") }

// EntryPoints returns the configured `entry_points` glob list.
func (c *Config) EntryPoints() []string { return c.StringSlice("entry_points") }
</content>
