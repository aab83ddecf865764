package pokedex

import "github.com/jask/pokedex/internal/catalog"

// Ownership says who is responsible for an entry a node carries.
type Ownership uint8

const (
	// Borrowed entries belong to the catalog or are shared with another tree.
	Borrowed Ownership = iota
	// Owned entries are private copies made by the tree itself.
	Owned
)

func (o Ownership) String() string {
	if o == Owned {
		return "owned"
	}
	return "borrowed"
}

// Ref is the entry attached to a node, tagged with its ownership.
type Ref struct {
	kind  Ownership
	entry *catalog.Entry
}

// Borrow references e without taking ownership.
func Borrow(e *catalog.Entry) Ref {
	return Ref{kind: Borrowed, entry: e}
}

// Own makes a private deep copy of e.
func Own(e catalog.Entry) Ref {
	cp := e
	return Ref{kind: Owned, entry: &cp}
}

func (r Ref) Entry() *catalog.Entry { return r.entry }
func (r Ref) Ownership() Ownership  { return r.kind }
func (r Ref) Valid() bool           { return r.entry != nil }

// ID returns the entry id, or 0 for a released ref.
func (r Ref) ID() int {
	if r.entry == nil {
		return 0
	}
	return r.entry.ID
}

// Share returns a borrowed ref to the same entry. The receiver keeps its ownership.
func (r Ref) Share() Ref {
	return Ref{kind: Borrowed, entry: r.entry}
}

// Release drops the ref and reports whether it held a private copy. The entry
// itself is never modified, so refs shared from it stay valid. Releasing twice
// is a no-op.
func (r *Ref) Release() bool {
	owned := r.kind == Owned && r.entry != nil
	*r = Ref{}
	return owned
}
