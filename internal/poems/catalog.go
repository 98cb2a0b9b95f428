// Package poems holds the read-only poem catalog the reader renders.
package poems

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingID is returned when a poem has an empty identifier.
	ErrMissingID = errors.New("poem id is required")
	// ErrDuplicateID is returned when two poems share an identifier.
	ErrDuplicateID = errors.New("duplicate poem id")
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Poem is a single catalog entry. Content keeps its line and stanza breaks verbatim.
type Poem struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
	Year    int    `yaml:"year"`
}

// Catalog is an ordered, immutable list of poems. A nil *Catalog is empty.
type Catalog struct {
	poems []Poem
}

type catalogDocument struct {
	Poems []Poem `yaml:"poems"`
}

// New validates the given poems and returns them as a catalog in the same order.
// Ids are stored with surrounding whitespace removed.
func New(entries ...Poem) (*Catalog, error) {
	poems := make([]Poem, len(entries))
	seen := make(map[string]int, len(entries))
	for idx, poem := range entries {
		poem.ID = strings.TrimSpace(poem.ID)
		if poem.ID == "" {
			return nil, fmt.Errorf("poem at position %d: %w", idx, ErrMissingID)
		}
		if prev, ok := seen[poem.ID]; ok {
			return nil, fmt.Errorf("poem %q at positions %d and %d: %w", poem.ID, prev, idx, ErrDuplicateID)
		}
		seen[poem.ID] = idx
		poems[idx] = poem
	}
	return &Catalog{poems: poems}, nil
}

// Load decodes a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Poems...)
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.poems)
}

// At returns the poem at position i. It panics when i is out of range.
func (c *Catalog) At(i int) Poem {
	return c.poems[i]
}

// All returns a copy of the catalog entries.
func (c *Catalog) All() []Poem {
	if c == nil {
		return nil
	}
	return append([]Poem(nil), c.poems...)
}

// First returns the first entry, or false for an empty catalog.
func (c *Catalog) First() (Poem, bool) {
	if c.Len() == 0 {
		return Poem{}, false
	}
	return c.poems[0], true
}

// Index returns the position of id, or -1.
func (c *Catalog) Index(id string) int {
	if c == nil {
		return -1
	}
	for idx, poem := range c.poems {
		if poem.ID == id {
			return idx
		}
	}
	return -1
}

func (c *Catalog) Find(id string) (Poem, bool) {
	idx := c.Index(id)
	if idx < 0 {
		return Poem{}, false
	}
	return c.poems[idx], true
}
