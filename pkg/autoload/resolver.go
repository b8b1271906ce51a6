// Package autoload builds the namespace-prefix → package map described in
// PSR-4 autoload rules and answers longest-prefix-match queries against it.
package autoload

import (
	"sort"
	"strings"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/manifest"
)

// prefixEntry is one row of the namespace-prefix → package map, plus its
// original insertion index so that equal-length prefixes keep declaration
// order on ties (glossary: "Longest-prefix match").
type prefixEntry struct {
	prefix string
	pkg    string
	order  int
}

// Resolver maps a fully-qualified name to the dependency package that
// declares it, or to the project sentinel when the name is project-owned.
type Resolver struct {
	projectName string
	entries     []prefixEntry
	classmap    map[string]string // FQN -> package, overrides prefix resolution
}

// Build constructs a Resolver from a manifest.Project: the lockfile's
// installed packages' PSR-4/PSR-0 autoload maps, plus the manifest's own
// autoload entries mapped to the project name.
func Build(project manifest.Project) *Resolver {
	r := &Resolver{
		projectName: project.Manifest.ProjectName(),
		classmap:    make(map[string]string),
	}

	order := 0
	add := func(al manifest.Autoload, pkg string) {
		for prefix := range al.PSR4 {
			r.entries = append(r.entries, prefixEntry{prefix: trimSep(prefix), pkg: pkg, order: order})
			order++
		}
		for prefix := range al.PSR0 {
			r.entries = append(r.entries, prefixEntry{prefix: trimSep(prefix), pkg: pkg, order: order})
			order++
		}
	}

	for _, pkg := range project.Lock.Packages {
		add(pkg.Autoload, pkg.Name)
	}
	for _, pkg := range project.Lock.PackagesDev {
		add(pkg.Autoload, pkg.Name)
	}
	add(project.Manifest.Autoload, r.projectName)
	add(project.Manifest.AutoloadDev, r.projectName)

	sort.SliceStable(r.entries, func(i, j int) bool {
		if len(r.entries[i].prefix) != len(r.entries[j].prefix) {
			return len(r.entries[i].prefix) > len(r.entries[j].prefix)
		}
		return r.entries[i].order < r.entries[j].order
	})

	return r
}

func trimSep(prefix string) string {
	return strings.TrimSuffix(prefix, phpast.Sep)
}

// ResolveClass returns the package that provides fqn, or "" when no prefix
// matches.
func (r *Resolver) ResolveClass(fqn string) string {
	if pkg, ok := r.classmap[fqn]; ok {
		return pkg
	}
	for _, e := range r.entries {
		if fqn == e.prefix || strings.HasPrefix(fqn, e.prefix+phpast.Sep) {
			return e.pkg
		}
	}
	return ""
}

// ResolveFunction resolves a function's namespace portion (everything
// before the last separator) the same way ResolveClass resolves a class.
func (r *Resolver) ResolveFunction(fqn string) string {
	idx := strings.LastIndex(fqn, phpast.Sep)
	if idx < 0 {
		return r.ResolveClass(fqn)
	}
	return r.ResolveClass(fqn[:idx])
}

// IsProjectClass reports whether fqn resolves to the project itself.
func (r *Resolver) IsProjectClass(fqn string) bool {
	pkg := r.ResolveClass(fqn)
	return pkg == r.projectName || pkg == manifest.ProjectSentinel
}

// ProjectName returns the package name used for project-owned autoload
// entries.
func (r *Resolver) ProjectName() string {
	return r.projectName
}
</content>
