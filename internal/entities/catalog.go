package entities

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

// UpsertResult reports what an upsert did
type UpsertResult int

// Upsert results
const (
	UpsertInserted UpsertResult = iota + 1
	UpsertUpdated
)

// String returns a readable form of the result
func (r UpsertResult) String() string {
	switch r {
	case UpsertInserted:
		return "inserted"
	case UpsertUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Catalog holds one name->priority table per sound category.
// It is not safe for concurrent use; the audio orchestrator guards it.
type Catalog struct {
	tables map[SoundCategory]map[string]bool
}

// NewCatalog returns an empty catalog with all four tables
func NewCatalog() *Catalog {
	tables := make(map[SoundCategory]map[string]bool, len(SoundCategories))
	for _, c := range SoundCategories {
		tables[c] = make(map[string]bool)
	}
	return &Catalog{tables: tables}
}

func (c *Catalog) table(category SoundCategory) (map[string]bool, error) {
	t, ok := c.tables[category]
	if !ok {
		return nil, errors.InvalidArgumentf("%s is not a sound category", category).
			WithMeta("category", string(category))
	}
	return t, nil
}

// Add inserts a new entry. An existing name is rejected and the catalog is left unchanged.
func (c *Catalog) Add(category SoundCategory, name string, highPriority bool) error {
	t, err := c.table(category)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument("sound name cannot be empty")
	}
	if _, exists := t[name]; exists {
		return errors.AlreadyExistsf("%s sound %s already exists", category, name).
			WithMeta("category", string(category)).
			WithMeta("name", name)
	}
	t[name] = highPriority
	return nil
}

// Upsert inserts or overwrites an entry
func (c *Catalog) Upsert(category SoundCategory, name string, highPriority bool) (UpsertResult, error) {
	t, err := c.table(category)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(name) == "" {
		return 0, errors.InvalidArgument("sound name cannot be empty")
	}
	_, exists := t[name]
	t[name] = highPriority
	if exists {
		return UpsertUpdated, nil
	}
	return UpsertInserted, nil
}

// Find reports whether the category holds name. Unknown categories are an error, not a miss.
func (c *Catalog) Find(category SoundCategory, name string) (bool, error) {
	t, err := c.table(category)
	if err != nil {
		return false, err
	}
	_, ok := t[name]
	return ok, nil
}

// Get returns a single entry
func (c *Catalog) Get(category SoundCategory, name string) (SoundEntry, error) {
	t, err := c.table(category)
	if err != nil {
		return SoundEntry{}, err
	}
	priority, ok := t[name]
	if !ok {
		return SoundEntry{}, errors.NotFoundf("%s sound %s not found", category, name).
			WithMeta("category", string(category)).
			WithMeta("name", name)
	}
	return SoundEntry{Category: category, Name: name, HighPriority: priority}, nil
}

// Remove deletes an entry
func (c *Catalog) Remove(category SoundCategory, name string) error {
	t, err := c.table(category)
	if err != nil {
		return err
	}
	if _, ok := t[name]; !ok {
		return errors.NotFoundf("%s sound %s not found", category, name)
	}
	delete(t, name)
	return nil
}

// Entries returns a category's entries sorted by name
func (c *Catalog) Entries(category SoundCategory) ([]SoundEntry, error) {
	t, err := c.table(category)
	if err != nil {
		return nil, err
	}
	entries := make([]SoundEntry, 0, len(t))
	for name, priority := range t {
		entries = append(entries, SoundEntry{Category: category, Name: name, HighPriority: priority})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Priority returns every high-priority entry, category by category
func (c *Catalog) Priority() []SoundEntry {
	var out []SoundEntry
	for _, category := range SoundCategories {
		entries, _ := c.Entries(category)
		for _, e := range entries {
			if e.HighPriority {
				out = append(out, e)
			}
		}
	}
	return out
}

// Len returns the number of entries in a category, or across all when category is empty
func (c *Catalog) Len(category SoundCategory) int {
	if category != "" {
		return len(c.tables[category])
	}
	n := 0
	for _, t := range c.tables {
		n += len(t)
	}
	return n
}

// Clone returns a deep copy
func (c *Catalog) Clone() *Catalog {
	out := NewCatalog()
	for category, t := range c.tables {
		for name, priority := range t {
			out.tables[category][name] = priority
		}
	}
	return out
}

// Equal reports whether both catalogs hold the same entries
func (c *Catalog) Equal(other *Catalog) bool {
	if other == nil {
		return false
	}
	for _, category := range SoundCategories {
		a, b := c.tables[category], other.tables[category]
		if len(a) != len(b) {
			return false
		}
		for name, priority := range a {
			if p, ok := b[name]; !ok || p != priority {
				return false
			}
		}
	}
	return true
}
