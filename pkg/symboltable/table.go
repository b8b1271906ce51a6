// Package symboltable implements a multi-index symbol table:
// indexed lookup by kind, by file, by namespace, and by containing class,
// all deterministic in insertion order. Modeled on a
// pkg/indexer.SymbolIndexer (map-by-FQN, reverse file index, stats
// struct), generalized from a single FQN index to the spec's four indices.
package symboltable

import (
	"sort"
	"sync"

	"github.com/atani/php-knip/internal/phpast"
)

// Table is a keyed collection of Symbols with precomputed indices. The
// collection phase is the only writer; once collection finishes it is
// shared by immutable reference across analyzers.
type Table struct {
	mu sync.RWMutex

	order []string // symbol ids, insertion order
	byID  map[string]phpast.Symbol

	byKind      map[phpast.SymbolKind][]string
	byFile      map[string][]string
	byNamespace map[string][]string
	byParent    map[string][]string
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		byID:        make(map[string]phpast.Symbol),
		byKind:      make(map[phpast.SymbolKind][]string),
		byFile:      make(map[string][]string),
		byNamespace: make(map[string][]string),
		byParent:    make(map[string][]string),
	}
}

// Add inserts s, keyed by its ID. A duplicate ID replaces the
// stored value in place without disturbing insertion order or index
// membership; a new ID is appended to every relevant index.
func (t *Table) Add(s phpast.Symbol) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := s.ID()
	if _, exists := t.byID[id]; exists {
		t.byID[id] = s
		return
	}

	t.byID[id] = s
	t.order = append(t.order, id)
	t.byKind[s.Kind] = append(t.byKind[s.Kind], id)
	t.byFile[s.FilePath] = append(t.byFile[s.FilePath], id)
	t.byNamespace[s.Namespace] = append(t.byNamespace[s.Namespace], id)
	if s.Parent != "" {
		t.byParent[s.Parent] = append(t.byParent[s.Parent], id)
	}
}

// Remove deletes the symbol with the given id, reconstructing index
// membership.
func (t *Table) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.byID[id]
	if !ok {
		return
	}
	delete(t.byID, id)
	t.order = removeID(t.order, id)
	t.byKind[s.Kind] = removeID(t.byKind[s.Kind], id)
	t.byFile[s.FilePath] = removeID(t.byFile[s.FilePath], id)
	t.byNamespace[s.Namespace] = removeID(t.byNamespace[s.Namespace], id)
	if s.Parent != "" {
		t.byParent[s.Parent] = removeID(t.byParent[s.Parent], id)
	}
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// Get returns the symbol with the given id.
func (t *Table) Get(id string) (phpast.Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.byID[id]
	return s, ok
}

// Has reports whether id is present.
func (t *Table) Has(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.byID[id]
	return ok
}

// GetAll returns every symbol in insertion order.
func (t *Table) GetAll() []phpast.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.order)
}

// GetByKind returns every symbol of the given kind, in insertion order.
func (t *Table) GetByKind(k phpast.SymbolKind) []phpast.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.byKind[k])
}

// GetByFile returns every symbol declared in the given file path, in
// insertion order.
func (t *Table) GetByFile(path string) []phpast.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.byFile[path])
}

// GetByNamespace returns every symbol declared in the given namespace, in
// insertion order.
func (t *Table) GetByNamespace(ns string) []phpast.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.byNamespace[ns])
}

// GetClassMembers returns every member symbol owned by parentFQN, in
// insertion order.
func (t *Table) GetClassMembers(parentFQN string) []phpast.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(t.byParent[parentFQN])
}

func (t *Table) resolve(ids []string) []phpast.Symbol {
	out := make([]phpast.Symbol, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.byID[id])
	}
	return out
}

// FindByFQN matches by fully-qualified name first, falling back to a
// short-name scan. When kind is non-empty, only symbols of
// that kind are considered.
func (t *Table) FindByFQN(fqn string, kind phpast.SymbolKind) (phpast.Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		s := t.byID[id]
		if kind != "" && s.Kind != kind {
			continue
		}
		if s.FQN() == fqn {
			return s, true
		}
	}
	short := phpast.ShortName(fqn)
	for _, id := range t.order {
		s := t.byID[id]
		if kind != "" && s.Kind != kind {
			continue
		}
		if s.Name == short {
			return s, true
		}
	}
	return phpast.Symbol{}, false
}

// FindClass finds a class symbol by FQN or short name.
func (t *Table) FindClass(nameOrFQN string) (phpast.Symbol, bool) {
	return t.FindByFQN(nameOrFQN, phpast.KindClass)
}

// FindFunction finds a function symbol by FQN or short name.
func (t *Table) FindFunction(nameOrFQN string) (phpast.Symbol, bool) {
	return t.FindByFQN(nameOrFQN, phpast.KindFunction)
}

// FindMethod finds a method owned by class (FQN or short name) with the
// given bare method name.
func (t *Table) FindMethod(class, method string) (phpast.Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	shortClass := phpast.ShortName(class)
	for _, id := range t.byKind[phpast.KindMethod] {
		s := t.byID[id]
		if s.Name != method {
			continue
		}
		if s.Parent == class || phpast.ShortName(s.Parent) == shortClass {
			return s, true
		}
	}
	return phpast.Symbol{}, false
}

// Stats summarizes table contents.
type Stats struct {
	Total       int
	ByKind      map[phpast.SymbolKind]int
	ByNamespace map[string]int
	FileCount   int
}

// Stats computes a Stats snapshot.
func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := Stats{
		Total:       len(t.order),
		ByKind:      make(map[phpast.SymbolKind]int, len(t.byKind)),
		ByNamespace: make(map[string]int, len(t.byNamespace)),
		FileCount:   len(t.byFile),
	}
	for kind, ids := range t.byKind {
		stats.ByKind[kind] = len(ids)
	}
	for ns, ids := range t.byNamespace {
		stats.ByNamespace[ns] = len(ids)
	}
	return stats
}

// Files returns every distinct file path seen, sorted, for callers that
// need deterministic file-group iteration (the File analyzer).
func (t *Table) Files() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	files := make([]string, 0, len(t.byFile))
	for path := range t.byFile {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}
</content>
