// Package catalog holds the static reference table of entry templates that
// collections borrow from. The table is read-only once loaded.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Size is the number of templates in a complete catalog.
const Size = 151

var (
	ErrInvalidID  = errors.New("invalid entry id")
	ErrIncomplete = errors.New("catalog incomplete")
)

//go:embed catalog.toml
var defaultTable []byte

// Type is the categorical type of an entry.
type Type uint8

const (
	Unknown Type = iota
	Grass
	Fire
	Water
	Bug
	Normal
	Poison
	Electric
	Ground
	Fairy
	Fighting
	Psychic
	Rock
	Ghost
	Dragon
	Ice
)

var typeNames = [...]string{
	Unknown:  "UNKNOWN",
	Grass:    "GRASS",
	Fire:     "FIRE",
	Water:    "WATER",
	Bug:      "BUG",
	Normal:   "NORMAL",
	Poison:   "POISON",
	Electric: "ELECTRIC",
	Ground:   "GROUND",
	Fairy:    "FAIRY",
	Fighting: "FIGHTING",
	Psychic:  "PSYCHIC",
	Rock:     "ROCK",
	Ghost:    "GHOST",
	Dragon:   "DRAGON",
	Ice:      "ICE",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[Unknown]
}

// UnmarshalText lets the TOML decoder read types by name.
func (t *Type) UnmarshalText(b []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(b)))
	for i, n := range typeNames {
		if n == name {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown type %q", string(b))
}

// Evolution marks whether the entry with the next id is this entry's evolved form.
type Evolution bool

const (
	Terminal  Evolution = false
	Evolvable Evolution = true
)

func (e Evolution) String() string {
	if e == Evolvable {
		return "Yes"
	}
	return "No"
}

// Entry is one immutable catalog record.
type Entry struct {
	ID        int       `toml:"id"`
	Name      string    `toml:"name"`
	Type      Type      `toml:"type"`
	HP        int       `toml:"hp"`
	Attack    int       `toml:"attack"`
	Evolution Evolution `toml:"evolves"`
}

func (e Entry) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Type: %s, HP: %d, Attack: %d, Can Evolve: %s",
		e.ID, e.Name, e.Type, e.HP, e.Attack, e.Evolution)
}

// Catalog is an id-indexed lookup over the templates.
type Catalog struct {
	entries [Size]Entry
}

type tableFile struct {
	Entries []Entry `toml:"entries"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog override from path. An empty path yields the embedded table.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML table. Every id in 1..Size must appear exactly once.
func Parse(data []byte) (*Catalog, error) {
	var f tableFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{}
	seen := make(map[int]bool, Size)
	for _, e := range f.Entries {
		if e.ID < 1 || e.ID > Size {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate id %d", e.ID)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("id %d: empty name", e.ID)
		}
		seen[e.ID] = true
		c.entries[e.ID-1] = e
	}
	if len(seen) != Size {
		return nil, fmt.Errorf("%w: %d of %d entries", ErrIncomplete, len(seen), Size)
	}
	return c, nil
}

// Lookup returns the shared template for id. The returned pointer must not be
// written through.
func (c *Catalog) Lookup(id int) (*Entry, error) {
	if id < 1 || id > Size {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidID, id, Size)
	}
	return &c.entries[id-1], nil
}
