package analyze

import (
	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/autoload"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/plugin"
	"github.com/atani/php-knip/pkg/symboltable"
)

// Context is the read-heavy aggregate every analyzer consumes.
type Context struct {
	Table      *symboltable.Table
	References []phpast.Reference
	Config     *Config
	Imports    map[string][]phpast.Import
	Plugins    *plugin.Manager
	Manifest   *manifest.Manifest
	Autoload   *autoload.Resolver

	// ProjectRoot is the absolute project directory the pipeline ran
	// against. Distinct from Config.BasePath(), which is a display-only
	// value for relativizing reported paths and may be empty; plugin
	// calls that need a real directory to glob against (PluginEntryPoints)
	// must use this field instead. Set by the host pipeline; zero value
	// in hand-built test Contexts that don't exercise plugin globbing.
	ProjectRoot string
}

// NewContext builds a Context from its constituent parts. config may be
// nil (equivalent to an empty configuration map).
func NewContext(table *symboltable.Table, references []phpast.Reference, config *Config, imports map[string][]phpast.Import, plugins *plugin.Manager, m *manifest.Manifest, resolver *autoload.Resolver) *Context {
	if config == nil {
		config = NewConfig(nil)
	}
	return &Context{
		Table:      table,
		References: references,
		Config:     config,
		Imports:    imports,
		Plugins:    plugins,
		Manifest:   m,
		Autoload:   resolver,
	}
}

// ReferencesByKind returns every non-dynamic reference of kind k (spec
// §3: dynamic references "never satisfy a match" — filtered here once so
// every analyzer inherits it for free).
func (c *Context) ReferencesByKind(k phpast.ReferenceKind) []phpast.Reference {
	var out []phpast.Reference
	for _, r := range c.References {
		if r.Kind == k && !r.IsDynamic {
			out = append(out, r)
		}
	}
	return out
}

// ReferencesByKinds returns every non-dynamic reference whose kind is in
// kinds.
func (c *Context) ReferencesByKinds(kinds ...phpast.ReferenceKind) []phpast.Reference {
	set := make(map[phpast.ReferenceKind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	var out []phpast.Reference
	for _, r := range c.References {
		if set[r.Kind] && !r.IsDynamic {
			out = append(out, r)
		}
	}
	return out
}

// ReferencesTo returns every non-dynamic reference whose SymbolName or
// SymbolParent equals name.
func (c *Context) ReferencesTo(name string) []phpast.Reference {
	var out []phpast.Reference
	for _, r := range c.References {
		if r.IsDynamic {
			continue
		}
		if r.SymbolName == name || r.SymbolParent == name {
			out = append(out, r)
		}
	}
	return out
}

// IsReferenced reports whether name is referenced by any reference,
// optionally restricted to kinds.
func (c *Context) IsReferenced(name string, kinds ...phpast.ReferenceKind) bool {
	var set map[phpast.ReferenceKind]bool
	if len(kinds) > 0 {
		set = make(map[phpast.ReferenceKind]bool, len(kinds))
		for _, k := range kinds {
			set[k] = true
		}
	}
	for _, r := range c.References {
		if r.IsDynamic {
			continue
		}
		if set != nil && !set[r.Kind] {
			continue
		}
		if r.SymbolName == name || r.SymbolParent == name {
			return true
		}
	}
	return false
}

// ConfigValue reads a raw configuration value.
func (c *Context) ConfigValue(key string, def any) any {
	return c.Config.Value(key, def)
}

// PluginIgnoreSymbol reports whether any active plugin ignores name.
func (c *Context) PluginIgnoreSymbol(name string) bool {
	if c.Plugins == nil {
		return false
	}
	return c.Plugins.ShouldIgnoreSymbol(name)
}

// PluginIgnoreFile reports whether any active plugin ignores path.
func (c *Context) PluginIgnoreFile(path string) bool {
	if c.Plugins == nil {
		return false
	}
	return c.Plugins.ShouldIgnoreFile(path)
}

// ActivePluginNames returns the names of every active plugin.
func (c *Context) ActivePluginNames() []string {
	if c.Plugins == nil {
		return nil
	}
	return c.Plugins.ActivePluginNames()
}

// PluginEntryPoints returns the entry points every active plugin
// contributes (class FQNs or file paths, depending on the plugin).
func (c *Context) PluginEntryPoints(projectRoot string) []string {
	if c.Plugins == nil {
		return nil
	}
	return c.Plugins.EntryPoints(projectRoot)
}

// AddReferences appends additional references (plugin
// augmentation); it never mutates existing records.
func (c *Context) AddReferences(refs []phpast.Reference) {
	c.References = append(c.References, refs...)
}
</content>
