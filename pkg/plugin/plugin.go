// Package plugin implements the framework plugin layer: a
// small set of project-root signals activate built-in plugins that
// contribute ignore patterns, synthetic "entry point" references, and
// per-symbol metadata tags for conventions a pure AST/manifest view can't
// see on its own (service container resolution, hook registration, and
// the like). Built around a "detect-from-signals, classify, contribute"
// idiom and a host-composition pattern for wiring a registry of
// pluggable behaviors into one entrypoint.
package plugin

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/symboltable"
)

// Plugin contributes framework-specific knowledge.
type Plugin interface {
	Name() string
	Description() string
	Priority() int
	IsApplicable(projectRoot string, m manifest.Manifest) bool
	IgnoreSymbolPatterns() []string
	IgnoreFilePatterns() []string
	EntryPoints(projectRoot string) []string
	AdditionalReferences(projectRoot string) []phpast.Reference
	ProcessSymbols(table *symboltable.Table, projectRoot string)
}

// state is the plugin manager's own tiny state machine:
// Inactive -> Activated once per project; registering a new plugin after
// activation invalidates it back to Inactive.
type state int

const (
	stateInactive state = iota
	stateActivated
)

// Manager registers candidate plugins and, once activated, exposes the
// aggregated contributions of whichever subset applies to the project.
type Manager struct {
	registered []Plugin
	active     []Plugin
	state      state
}

// NewManager returns an empty, inactive Manager.
func NewManager() *Manager {
	return &Manager{}
}

// RegisterPlugin adds a candidate plugin. Registering after activation
// invalidates the current activation.
func (mgr *Manager) RegisterPlugin(p Plugin) {
	mgr.registered = append(mgr.registered, p)
	mgr.state = stateInactive
	mgr.active = nil
}

// Activate selects the plugins applicable to this project and transitions
// Inactive -> Activated. frameworkHint of "auto" selects every applicable
// plugin; any other value selects only the plugin with a matching Name().
func (mgr *Manager) Activate(projectRoot string, m manifest.Manifest, frameworkHint string) {
	var active []Plugin
	for _, p := range mgr.registered {
		if frameworkHint != "" && frameworkHint != "auto" {
			if p.Name() == frameworkHint {
				active = append(active, p)
			}
			continue
		}
		if p.IsApplicable(projectRoot, m) {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority() > active[j].Priority()
	})
	mgr.active = active
	mgr.state = stateActivated
}

// Active returns whether Activate has run since the last RegisterPlugin.
func (mgr *Manager) Active() bool {
	return mgr.state == stateActivated
}

// ActivePlugins returns the activated plugins, descending priority order.
func (mgr *Manager) ActivePlugins() []Plugin {
	return mgr.active
}

// ActivePluginNames returns the Name() of every activated plugin, in
// priority order.
func (mgr *Manager) ActivePluginNames() []string {
	names := make([]string, 0, len(mgr.active))
	for _, p := range mgr.active {
		names = append(names, p.Name())
	}
	return names
}

// IgnoreSymbolPatterns unions the ignore-symbol globs of every active
// plugin.
func (mgr *Manager) IgnoreSymbolPatterns() []string {
	var out []string
	for _, p := range mgr.active {
		out = append(out, p.IgnoreSymbolPatterns()...)
	}
	return out
}

// IgnoreFilePatterns unions the ignore-file globs of every active plugin.
func (mgr *Manager) IgnoreFilePatterns() []string {
	var out []string
	for _, p := range mgr.active {
		out = append(out, p.IgnoreFilePatterns()...)
	}
	return out
}

// EntryPoints unions the entry points contributed by every active
// plugin: class FQNs from framework-a and framework-b, absolute file
// paths from framework-c.
func (mgr *Manager) EntryPoints(projectRoot string) []string {
	var out []string
	for _, p := range mgr.active {
		out = append(out, p.EntryPoints(projectRoot)...)
	}
	return out
}

// AdditionalReferences collects the synthetic references contributed by
// every active plugin, in priority order, appended after every parsed
// reference ("plugin-added references follow all parsed
// references").
func (mgr *Manager) AdditionalReferences(projectRoot string) []phpast.Reference {
	var out []phpast.Reference
	for _, p := range mgr.active {
		out = append(out, p.AdditionalReferences(projectRoot)...)
	}
	return out
}

// ProcessSymbols runs every active plugin's ProcessSymbols in priority
// order.
func (mgr *Manager) ProcessSymbols(table *symboltable.Table, projectRoot string) {
	for _, p := range mgr.active {
		p.ProcessSymbols(table, projectRoot)
	}
}

// ShouldIgnoreSymbol reports whether name matches an aggregated
// ignore-symbol glob.
func (mgr *Manager) ShouldIgnoreSymbol(name string) bool {
	return matchesAny(mgr.IgnoreSymbolPatterns(), name)
}

// ShouldIgnoreFile reports whether path matches an aggregated ignore-file
// glob.
func (mgr *Manager) ShouldIgnoreFile(path string) bool {
	return matchesAny(mgr.IgnoreFilePatterns(), path)
}

// matchesAny glob-matches candidate against patterns. Both sides are
// normalized from PHP's `\` namespace separator to `/` first: doublestar,
// like most glob engines, treats a bare backslash as an escape character,
// so a pattern like `App\Models\*` would otherwise match nothing (`\*`
// would mean a literal `*`, not a wildcard).
func matchesAny(patterns []string, candidate string) bool {
	normalizedCandidate := normalizeGlobSeparators(candidate)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(normalizeGlobSeparators(pattern), normalizedCandidate); err == nil && ok {
			return true
		}
	}
	return false
}

func normalizeGlobSeparators(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}
</content>
