// Package registry keeps owners in a circular doubly-linked ring. Links are
// slot indices into an arena, so a removed owner never leaves a dangling link.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/pokedex/internal/pokedex"
)

var (
	ErrNotFound      = errors.New("owner not found")
	ErrDuplicateName = errors.New("owner already exists")
	ErrEmptyName     = errors.New("owner name is empty")
	ErrOutOfRange    = errors.New("owner choice out of range")
)

const none = -1

// Owner is a named holder of one collection.
type Owner struct {
	ID   string
	Name string
	Dex  *pokedex.Tree

	slot int
}

// NewOwner returns an unlinked owner with an empty collection.
func NewOwner(name string) *Owner {
	return &Owner{ID: uuid.NewString(), Name: name, Dex: pokedex.New(), slot: none}
}

// Linked reports whether the owner currently sits in a registry.
func (o *Owner) Linked() bool { return o.slot != none }

// Direction picks which link a walk follows.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection accepts F/f or B/b.
func ParseDirection(s string) (Direction, error) {
	switch strings.TrimSpace(s) {
	case "F", "f":
		return Forward, nil
	case "B", "b":
		return Backward, nil
	}
	return Forward, fmt.Errorf("invalid direction %q, must be F or B", s)
}

type slot struct {
	owner      *Owner
	next, prev int
}

// Registry is the ring of owners. The zero value is not usable; call New.
type Registry struct {
	slots []slot
	free  []int
	head  int
	count int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{head: none}
}

func (r *Registry) Len() int    { return r.count }
func (r *Registry) Empty() bool { return r.head == none }

// Head returns the head owner, or nil when empty.
func (r *Registry) Head() *Owner {
	if r.head == none {
		return nil
	}
	return r.slots[r.head].owner
}

// Next and Prev follow the ring links of a linked owner.
func (r *Registry) Next(o *Owner) *Owner { return r.slots[r.slots[o.slot].next].owner }
func (r *Registry) Prev(o *Owner) *Owner { return r.slots[r.slots[o.slot].prev].owner }

// Append links o immediately before the head. The first owner becomes a
// self-linked head.
func (r *Registry) Append(o *Owner) error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrEmptyName
	}
	if o.Linked() {
		return fmt.Errorf("owner %q already linked", o.Name)
	}
	if r.FindByName(o.Name) != nil {
		return fmt.Errorf("%q: %w", o.Name, ErrDuplicateName)
	}
	idx := r.alloc(o)
	if r.head == none {
		r.slots[idx].next, r.slots[idx].prev = idx, idx
		r.head = idx
	} else {
		tail := r.slots[r.head].prev
		r.slots[idx].prev = tail
		r.slots[idx].next = r.head
		r.slots[tail].next = idx
		r.slots[r.head].prev = idx
	}
	r.count++
	return nil
}

func (r *Registry) alloc(o *Owner) int {
	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx] = slot{owner: o}
	} else {
		idx = len(r.slots)
		r.slots = append(r.slots, slot{owner: o})
	}
	o.slot = idx
	return idx
}

func (r *Registry) owns(o *Owner) bool {
	return o != nil && o.slot >= 0 && o.slot < len(r.slots) && r.slots[o.slot].owner == o
}

// Remove unlinks o, releases its collection and clears its name. When o was
// the head, the head moves to its successor, or the registry becomes empty.
func (r *Registry) Remove(o *Owner) (pokedex.ReleaseStats, error) {
	if !r.owns(o) {
		return pokedex.ReleaseStats{}, ErrNotFound
	}
	idx := o.slot
	s := r.slots[idx]
	if s.next == idx {
		r.head = none
	} else {
		r.slots[s.prev].next = s.next
		r.slots[s.next].prev = s.prev
		if r.head == idx {
			r.head = s.next
		}
	}
	r.slots[idx] = slot{owner: nil, next: none, prev: none}
	r.free = append(r.free, idx)
	r.count--

	o.slot = none
	o.Name = ""
	var stats pokedex.ReleaseStats
	if o.Dex != nil {
		stats = o.Dex.Release()
	}
	return stats, nil
}

// FindByName scans one full rotation from the head for an exact match.
func (r *Registry) FindByName(name string) *Owner {
	if r.head == none {
		return nil
	}
	idx := r.head
	for {
		if r.slots[idx].owner.Name == name {
			return r.slots[idx].owner
		}
		idx = r.slots[idx].next
		if idx == r.head {
			return nil
		}
	}
}

// At returns the owner at 1-based position pos counting forward from the head.
func (r *Registry) At(pos int) (*Owner, error) {
	if pos < 1 || pos > r.count {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, pos, r.count)
	}
	idx := r.head
	for i := 1; i < pos; i++ {
		idx = r.slots[idx].next
	}
	return r.slots[idx].owner, nil
}

// Owners lists the ring once, forward from the head.
func (r *Registry) Owners() []*Owner {
	out := make([]*Owner, 0, r.count)
	if r.head == none {
		return out
	}
	idx := r.head
	for {
		out = append(out, r.slots[idx].owner)
		idx = r.slots[idx].next
		if idx == r.head {
			return out
		}
	}
}

// Names is Owners reduced to names.
func (r *Registry) Names() []string {
	owners := r.Owners()
	out := make([]string, len(owners))
	for i, o := range owners {
		out[i] = o.Name
	}
	return out
}

// Walk takes count steps from the head in dir and returns each owner visited.
// The walk wraps around the ring as many times as count requires.
func (r *Registry) Walk(dir Direction, count int) []*Owner {
	if r.head == none || count <= 0 {
		return nil
	}
	out := make([]*Owner, 0, count)
	idx := r.head
	for i := 0; i < count; i++ {
		out = append(out, r.slots[idx].owner)
		if dir == Backward {
			idx = r.slots[idx].prev
		} else {
			idx = r.slots[idx].next
		}
	}
	return out
}

// SortByName orders the ring by name starting at the head. Each position is
// compared with every later position up to the head and whole owners are
// swapped, so each name keeps its own collection.
func (r *Registry) SortByName() {
	if r.count < 2 {
		return
	}
	cur := r.head
	for {
		later := r.slots[cur].next
		for later != r.head {
			if r.slots[cur].owner.Name > r.slots[later].owner.Name {
				r.swap(cur, later)
			}
			later = r.slots[later].next
		}
		cur = r.slots[cur].next
		if cur == r.head {
			return
		}
	}
}

func (r *Registry) swap(a, b int) {
	oa, ob := r.slots[a].owner, r.slots[b].owner
	r.slots[a].owner, r.slots[b].owner = ob, oa
	oa.slot, ob.slot = b, a
}

// Clear removes every owner and returns what their collections released.
func (r *Registry) Clear() pokedex.ReleaseStats {
	var total pokedex.ReleaseStats
	for _, o := range r.Owners() {
		stats, _ := r.Remove(o)
		total.Nodes += stats.Nodes
		total.Owned += stats.Owned
	}
	r.slots, r.free = nil, nil
	return total
}

// Validate checks ring closure and the cached count.
func (r *Registry) Validate() error {
	if r.head == none {
		if r.count != 0 {
			return fmt.Errorf("empty ring with count %d", r.count)
		}
		return nil
	}
	idx, seen := r.head, 0
	for {
		s := r.slots[idx]
		if s.owner == nil {
			return fmt.Errorf("slot %d linked but empty", idx)
		}
		if s.owner.slot != idx {
			return fmt.Errorf("owner %q records slot %d, sits in %d", s.owner.Name, s.owner.slot, idx)
		}
		if r.slots[s.next].prev != idx || r.slots[s.prev].next != idx {
			return fmt.Errorf("slot %d: broken links", idx)
		}
		seen++
		if seen > len(r.slots) {
			return errors.New("ring does not close")
		}
		idx = s.next
		if idx == r.head {
			break
		}
	}
	if seen != r.count {
		return fmt.Errorf("count %d, ring has %d", r.count, seen)
	}
	return nil
}
