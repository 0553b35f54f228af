// Package catalog holds the summit's event records: an ordered, read-only
// sequence looked up by slug. The records ship embedded as TOML and can be
// replaced from a file on disk while the site is running.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned by Lookup when no record has the slug.
	ErrNotFound = errors.New("catalog: event not found")
	// ErrDuplicateSlug is returned when two records share a slug.
	ErrDuplicateSlug = errors.New("catalog: duplicate slug")
)

//go:embed events.toml
var defaultEvents []byte

// Round is one stage of an event.
type Round struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Record is one event.
type Record struct {
	ID          int      `toml:"id"`
	Slug        string   `toml:"slug"`
	Title       string   `toml:"title"`
	Tagline     string   `toml:"tagline"`
	Description string   `toml:"description"`
	Image       string   `toml:"image"`
	Rules       []string `toml:"rules"`
	Rounds      []Round  `toml:"round"`
}

type rawCatalog struct {
	Events []Record `toml:"event"`
}

// Parse decodes TOML catalog data. Unknown keys are rejected so a typo in a
// hand-edited file does not silently drop a field.
func Parse(data []byte) ([]Record, error) {
	var raw rawCatalog
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse catalog: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := validate(raw.Events); err != nil {
		return nil, err
	}
	return raw.Events, nil
}

// Load reads and parses a catalog file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	recs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func validate(recs []Record) error {
	seen := make(map[string]bool, len(recs))
	for i, r := range recs {
		if r.Slug == "" {
			return fmt.Errorf("catalog: event %d has no slug", i)
		}
		if r.Title == "" {
			return fmt.Errorf("catalog: event %q has no title", r.Slug)
		}
		if seen[r.Slug] {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, r.Slug)
		}
		seen[r.Slug] = true
	}
	return nil
}

// Catalog is the live record set. Reads happen on the UI goroutine while
// Watch may call Replace from its own goroutine, hence the lock.
type Catalog struct {
	mu      sync.RWMutex
	records []Record
	bySlug  map[string]int
	version uint64
}

// New builds a catalog from records, which are validated and copied.
func New(records []Record) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Replace(records); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the catalog built from the embedded events.
func Default() *Catalog {
	recs, err := Parse(defaultEvents)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded events: %v", err))
	}
	c, err := New(recs)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded events: %v", err))
	}
	return c
}

// Replace swaps in a new record set and bumps the version. On error the
// catalog is unchanged.
func (c *Catalog) Replace(records []Record) error {
	if err := validate(records); err != nil {
		return err
	}
	recs := make([]Record, len(records))
	copy(recs, records)
	idx := make(map[string]int, len(recs))
	for i, r := range recs {
		idx[r.Slug] = i
	}

	c.mu.Lock()
	c.records = recs
	c.bySlug = idx
	c.version++
	c.mu.Unlock()
	return nil
}

// FindBySlug returns the record with the given slug.
func (c *Catalog) FindBySlug(slug string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.bySlug[slug]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Lookup is FindBySlug with an error for callers that propagate misses.
func (c *Catalog) Lookup(slug string) (Record, error) {
	r, ok := c.FindBySlug(slug)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return r, nil
}

// All returns the records in catalog order. The slice is a copy.
func (c *Catalog) All() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Version increments on every successful Replace. Views compare it to
// notice a reload.
func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
