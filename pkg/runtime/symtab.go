package runtime

import (
	"sort"
	"strings"
)

// Symtab is the single flat namespace for one program run. The canonical key
// is the lowercased identifier, so lookups are case-insensitive.
type Symtab struct {
	entries map[string]*Entry
}

// Entry records one variable. Its value is optional: it only becomes
// meaningful after the first assignment.
type Entry struct {
	name  string
	value float64
	set   bool
}

// NewSymtab creates an empty symbol table.
func NewSymtab() *Symtab {
	return &Symtab{entries: make(map[string]*Entry)}
}

// Lookup returns the entry bound to name, or nil when the name is unknown.
func (t *Symtab) Lookup(name string) *Entry {
	return t.entries[strings.ToLower(name)]
}

// Enter creates and binds a fresh entry for name, replacing any earlier
// binding. Callers that want enter-if-absent pair it with Lookup.
func (t *Symtab) Enter(name string) *Entry {
	key := strings.ToLower(name)
	entry := &Entry{name: key}
	t.entries[key] = entry
	return entry
}

// Names returns the bound names in sorted order (useful for determinism in
// tests and dumps).
func (t *Symtab) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name exposes the canonical (lowercased) name of the entry.
func (e *Entry) Name() string { return e.name }

// Value returns the current value and whether one has been assigned yet.
func (e *Entry) Value() (float64, bool) {
	return e.value, e.set
}

// SetValue stores a new value; the last assignment wins.
func (e *Entry) SetValue(v float64) {
	e.value = v
	e.set = true
}
