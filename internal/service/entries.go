package service

import (
	"errors"
	"fmt"

	"github.com/jask/pokedex/internal/catalog"
	"github.com/jask/pokedex/internal/pokedex"
	"github.com/jask/pokedex/internal/registry"
)

// AddEntry inserts the catalog entry for id into the owner's collection.
func (s *Session) AddEntry(o *registry.Owner, id int) (*catalog.Entry, error) {
	tmpl, err := s.TemplateFor(id)
	if err != nil {
		return nil, err
	}
	if err := o.Dex.Insert(pokedex.Borrow(tmpl)); err != nil {
		if errors.Is(err, pokedex.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return nil, err
	}
	s.Log.Debug().Str("owner", o.Name).Str("owner_id", o.ID).Int("id", id).Str("name", tmpl.Name).Msg("entry added")
	return tmpl, nil
}

// RemoveEntry deletes id from the owner's collection and returns a copy of
// what was removed.
func (s *Session) RemoveEntry(o *registry.Owner, id int) (catalog.Entry, error) {
	if o.Dex.Empty() {
		return catalog.Entry{}, ErrEmpty
	}
	n := o.Dex.PointSearch(id)
	if n == nil {
		return catalog.Entry{}, notFoundID(id)
	}
	removed := *n.Entry()
	o.Dex.Delete(id)
	s.Log.Debug().Str("owner", o.Name).Str("owner_id", o.ID).Int("id", id).Str("name", removed.Name).Msg("entry removed")
	return removed, nil
}

// SearchEntry finds id with a level-order search.
func (s *Session) SearchEntry(o *registry.Owner, id int) (catalog.Entry, error) {
	n := o.Dex.LevelSearch(id)
	if n == nil {
		return catalog.Entry{}, notFoundID(id)
	}
	return *n.Entry(), nil
}

// Score is the fight strength of an entry.
func Score(e catalog.Entry) float64 {
	return float64(e.Attack)*1.5 + float64(e.HP)*1.2
}

// FightResult is the outcome of comparing two entries. Winner is 1 or 2, or
// 0 for a tie.
type FightResult struct {
	First, Second           catalog.Entry
	FirstScore, SecondScore float64
	Winner                  int
}

// WinnerEntry returns the winning entry, or false on a tie.
func (r FightResult) WinnerEntry() (catalog.Entry, bool) {
	switch r.Winner {
	case 1:
		return r.First, true
	case 2:
		return r.Second, true
	}
	return catalog.Entry{}, false
}

// Fight scores two entries of the same collection. The collection is not
// modified.
func (s *Session) Fight(o *registry.Owner, id1, id2 int) (FightResult, error) {
	if o.Dex.Empty() {
		return FightResult{}, ErrEmpty
	}
	a := o.Dex.LevelSearch(id1)
	b := o.Dex.LevelSearch(id2)
	if a == nil || b == nil {
		return FightResult{}, fmt.Errorf("%w: one or both ids (%d, %d)", ErrNotFound, id1, id2)
	}
	res := FightResult{First: *a.Entry(), Second: *b.Entry()}
	res.FirstScore = Score(res.First)
	res.SecondScore = Score(res.Second)
	switch {
	case res.FirstScore > res.SecondScore:
		res.Winner = 1
	case res.FirstScore < res.SecondScore:
		res.Winner = 2
	}
	return res, nil
}

// EvolveResult describes an evolution. Released is set when the evolved form
// was already collected and the original was dropped instead.
type EvolveResult struct {
	From     catalog.Entry
	To       catalog.Entry
	Released bool
}

// Evolve replaces id with its next form id+1. The new entry is inserted by
// id so the collection stays ordered.
func (s *Session) Evolve(o *registry.Owner, id int) (EvolveResult, error) {
	if o.Dex.Empty() {
		return EvolveResult{}, fmt.Errorf("%w: %w", ErrCannotEvolve, ErrEmpty)
	}
	n := o.Dex.LevelSearch(id)
	if n == nil {
		return EvolveResult{}, notFoundID(id)
	}
	from := *n.Entry()
	if from.Evolution == catalog.Terminal {
		return EvolveResult{}, fmt.Errorf("%w: %s (ID %d)", ErrCannotEvolve, from.Name, id)
	}
	next, err := s.TemplateFor(id + 1)
	if err != nil {
		return EvolveResult{}, fmt.Errorf("%w: %w", ErrCannotEvolve, err)
	}
	res := EvolveResult{From: from, To: *next}
	if o.Dex.Contains(next.ID) {
		res.Released = true
		o.Dex.Delete(id)
		s.Log.Debug().Str("owner", o.Name).Str("owner_id", o.ID).Int("id", id).Int("evolved", next.ID).Msg("evolution already collected, released original")
		return res, nil
	}
	o.Dex.Delete(id)
	if err := o.Dex.Insert(pokedex.Borrow(next)); err != nil {
		return res, err
	}
	s.Log.Debug().Str("owner", o.Name).Str("owner_id", o.ID).Int("from", id).Int("to", next.ID).Msg("entry evolved")
	return res, nil
}

// Display lists the owner's entries in the given order.
func (s *Session) Display(o *registry.Owner, order pokedex.Order) ([]*catalog.Entry, error) {
	if _, err := pokedex.ParseOrder(int(order)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if o.Dex.Empty() {
		return nil, ErrEmpty
	}
	return o.Dex.Traverse(order), nil
}

func notFoundID(id int) error {
	return fmt.Errorf("%w: no entry with ID %d: %w", ErrNotFound, id, pokedex.ErrNotFound)
}
