package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jask/pokedex/internal/catalog"
	"github.com/jask/pokedex/internal/registry"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmpty           = errors.New("pokedex is empty")
	ErrNoOwners        = errors.New("no owners")
	ErrNotEnoughOwners = errors.New("not enough owners to merge")
	ErrCannotEvolve    = errors.New("cannot evolve")
)

// Session runs the commands a driver issues against the registry. It is not
// safe for concurrent use; every call runs to completion before the next.
type Session struct {
	Catalog  *catalog.Catalog
	Registry *registry.Registry
	Log      zerolog.Logger

	closed bool
}

// NewSession returns a session over an empty registry.
func NewSession(cat *catalog.Catalog, log zerolog.Logger) *Session {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Session{Catalog: cat, Registry: registry.New(), Log: log}
}

// TemplateFor looks up the catalog template for id.
func (s *Session) TemplateFor(id int) (*catalog.Entry, error) {
	e, err := s.Catalog.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return e, nil
}

// Starter is the menu choice for a new owner's first entry.
type Starter int

const (
	Bulbasaur Starter = iota + 1
	Charmander
	Squirtle
)

var starterIDs = map[Starter]int{
	Bulbasaur:  1,
	Charmander: 4,
	Squirtle:   7,
}

// ID returns the catalog id the starter choice stands for.
func (s Starter) ID() (int, error) {
	id, ok := starterIDs[s]
	if !ok {
		return 0, fmt.Errorf("%w: starter choice %d", ErrInvalidInput, int(s))
	}
	return id, nil
}

// Close releases every owner. The session is empty afterwards and further
// calls do nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	owners := s.Registry.Len()
	stats := s.Registry.Clear()
	s.Log.Info().
		Int("owners", owners).
		Int("nodes", stats.Nodes).
		Int("owned", stats.Owned).
		Msg("session closed")
}
