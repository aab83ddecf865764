package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/pokedex/internal/pokedex"
	"github.com/jask/pokedex/internal/registry"
)

// CreateOwner registers name with the chosen starter as the root of a new
// collection. Nothing is linked unless every check passes.
func (s *Session) CreateOwner(name string, starter Starter) (*registry.Owner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: owner name is empty", ErrInvalidInput)
	}
	if s.Registry.FindByName(name) != nil {
		return nil, fmt.Errorf("%w: owner %q", ErrDuplicate, name)
	}
	id, err := starter.ID()
	if err != nil {
		return nil, err
	}
	tmpl, err := s.TemplateFor(id)
	if err != nil {
		return nil, err
	}
	o := registry.NewOwner(name)
	if err := o.Dex.Insert(pokedex.Borrow(tmpl)); err != nil {
		return nil, err
	}
	if err := s.Registry.Append(o); err != nil {
		return nil, mapRegistryErr(err)
	}
	s.Log.Info().Str("owner", name).Str("owner_id", o.ID).Int("starter", id).Msg("owner created")
	return o, nil
}

// Owner finds an owner by exact name.
func (s *Session) Owner(name string) (*registry.Owner, error) {
	if o := s.Registry.FindByName(name); o != nil {
		return o, nil
	}
	if hint := s.suggest(name); hint != "" {
		return nil, fmt.Errorf("%w: owner %q (did you mean %q?)", ErrNotFound, name, hint)
	}
	return nil, fmt.Errorf("%w: owner %q", ErrNotFound, name)
}

// OwnerAt resolves a 1-based menu choice counted from the head.
func (s *Session) OwnerAt(choice int) (*registry.Owner, error) {
	if s.Registry.Empty() {
		return nil, ErrNoOwners
	}
	o, err := s.Registry.At(choice)
	if err != nil {
		return nil, mapRegistryErr(err)
	}
	return o, nil
}

// Owners lists owners forward from the head.
func (s *Session) Owners() []*registry.Owner {
	return s.Registry.Owners()
}

// RemoveOwner deletes the owner at a 1-based menu choice along with its
// collection and returns the removed name.
func (s *Session) RemoveOwner(choice int) (string, error) {
	o, err := s.OwnerAt(choice)
	if err != nil {
		return "", err
	}
	name, id := o.Name, o.ID
	stats, err := s.Registry.Remove(o)
	if err != nil {
		return "", mapRegistryErr(err)
	}
	s.Log.Info().Str("owner", name).Str("owner_id", id).Int("nodes", stats.Nodes).Msg("owner removed")
	return name, nil
}

// MergeResult reports a completed merge.
type MergeResult struct {
	Into string
	From string
	pokedex.MergeStats
}

// MergeOwners copies every entry of the second owner's collection into the
// first owner's, then removes the second owner.
func (s *Session) MergeOwners(first, second string) (MergeResult, error) {
	if s.Registry.Len() < 2 {
		return MergeResult{}, ErrNotEnoughOwners
	}
	dst, err := s.Owner(strings.TrimSpace(first))
	if err != nil {
		return MergeResult{}, err
	}
	src, err := s.Owner(strings.TrimSpace(second))
	if err != nil {
		return MergeResult{}, err
	}
	if dst == src {
		return MergeResult{}, fmt.Errorf("%w: cannot merge %q into itself", ErrInvalidInput, dst.Name)
	}
	res := MergeResult{Into: dst.Name, From: src.Name}
	srcID := src.ID
	res.MergeStats = pokedex.Merge(dst.Dex, src.Dex)
	if _, err := s.Registry.Remove(src); err != nil {
		return res, mapRegistryErr(err)
	}
	s.Log.Info().
		Str("owner", res.Into).
		Str("owner_id", dst.ID).
		Str("from", res.From).
		Str("from_id", srcID).
		Int("added", res.Added).
		Int("skipped", res.Skipped).
		Msg("owners merged")
	return res, nil
}

// SortOwners orders the ring by name. It reports false when there were fewer
// than two owners and nothing needed sorting.
func (s *Session) SortOwners() bool {
	if s.Registry.Len() < 2 {
		return false
	}
	s.Registry.SortByName()
	s.Log.Debug().Strs("owners", s.Registry.Names()).Msg("owners sorted")
	return true
}

// RotatePrint walks count steps from the head and returns one numbered line
// per visited owner. Counts beyond the ring size wrap around.
func (s *Session) RotatePrint(dir registry.Direction, count int) ([]string, error) {
	if s.Registry.Empty() {
		return nil, ErrNoOwners
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidInput, count)
	}
	owners := s.Registry.Walk(dir, count)
	lines := make([]string, len(owners))
	for i, o := range owners {
		lines[i] = fmt.Sprintf("[%d] %s", i+1, o.Name)
	}
	return lines, nil
}

func mapRegistryErr(err error) error {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, registry.ErrDuplicateName):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, registry.ErrOutOfRange), errors.Is(err, registry.ErrEmptyName):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

// suggest returns the closest owner name when it is similar enough to be a
// plausible typo.
func (s *Session) suggest(name string) string {
	best, bestScore := "", 0.0
	for _, candidate := range s.Registry.Names() {
		if score := similarity(name, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < 0.6 {
		return ""
	}
	return best
}

func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
