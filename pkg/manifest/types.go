package manifest

import (
	"encoding/json"
	"sort"
)

// ProjectSentinel is the package name used for the manifest's own
// autoload entries when the manifest declares no "name".
const ProjectSentinel = "(project)"

// PathList decodes a manifest/lock autoload entry that may be written as
// either a single path string or an array of path strings.
type PathList []string

func (p *PathList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = PathList{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return err
	}
	*p = PathList(multi)
	return nil
}

// Autoload is the "psr-4"/"psr-0"/"classmap"/"files" block shared by the
// manifest's autoload/autoload-dev and the lockfile's per-package autoload.
type Autoload struct {
	PSR4     map[string]PathList `json:"psr-4,omitempty"`
	PSR0     map[string]PathList `json:"psr-0,omitempty"`
	Classmap []string            `json:"classmap,omitempty"`
	Files    []string            `json:"files,omitempty"`
}

// Manifest is the decoded shape of manifest.json.
type Manifest struct {
	Name          string            `json:"name,omitempty"`
	Require       map[string]string `json:"require,omitempty"`
	RequireDev    map[string]string `json:"require-dev,omitempty"`
	Autoload      Autoload          `json:"autoload,omitempty"`
	AutoloadDev   Autoload          `json:"autoload-dev,omitempty"`
	Scripts       json.RawMessage   `json:"scripts,omitempty"`
	Extra         json.RawMessage   `json:"extra,omitempty"`
}

// ProjectName returns the manifest's declared name, or the project
// sentinel when none is declared.
func (m Manifest) ProjectName() string {
	if m.Name == "" {
		return ProjectSentinel
	}
	return m.Name
}

// LockPackage is one entry of lock.json's "packages"/"packages-dev" list.
type LockPackage struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Autoload Autoload `json:"autoload,omitempty"`
}

// Lock is the decoded shape of lock.json.
type Lock struct {
	Packages     []LockPackage   `json:"packages,omitempty"`
	PackagesDev  []LockPackage   `json:"packages-dev,omitempty"`
	ContentHash  string          `json:"content-hash,omitempty"`
}

// Dependency is a merged view of one declared
// dependency: the raw constraint plus whether it came from require-dev.
type Dependency struct {
	Name       string
	Constraint string
	IsDev      bool
}

// Dependencies returns every declared dependency from require and
// require-dev, with IsDev set accordingly, sorted by name for deterministic
// output regardless of Go's randomized map iteration order.
func (m Manifest) Dependencies() []Dependency {
	deps := make([]Dependency, 0, len(m.Require)+len(m.RequireDev))
	for name, constraint := range m.Require {
		deps = append(deps, Dependency{Name: name, Constraint: constraint, IsDev: false})
	}
	for name, constraint := range m.RequireDev {
		deps = append(deps, Dependency{Name: name, Constraint: constraint, IsDev: true})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps
}
</content>
