// Package pokedex implements a per-owner collection: an unbalanced binary
// search tree of catalog entries keyed by id.
package pokedex

import (
	"errors"
	"fmt"
	"math"

	"github.com/jask/pokedex/internal/catalog"
)

var (
	ErrDuplicate  = errors.New("already in the pokedex")
	ErrNotFound   = errors.New("not in the pokedex")
	ErrInvalidRef = errors.New("ref has no entry")
)

// Node is one tree position. Children are owned exclusively by their parent.
type Node struct {
	ref         Ref
	left, right *Node
}

func (n *Node) Ref() Ref              { return n.ref }
func (n *Node) Entry() *catalog.Entry { return n.ref.entry }
func (n *Node) ID() int               { return n.ref.ID() }
func (n *Node) Left() *Node           { return n.left }
func (n *Node) Right() *Node          { return n.right }

// ReleaseStats counts what a release dropped.
type ReleaseStats struct {
	Nodes int
	Owned int
}

func (s *ReleaseStats) add(o ReleaseStats) {
	s.Nodes += o.Nodes
	s.Owned += o.Owned
}

// Tree is a collection keyed by entry id. The zero value is an empty tree.
type Tree struct {
	root  *Node
	size  int
	owned int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

func (t *Tree) Root() *Node   { return t.root }
func (t *Tree) Len() int      { return t.size }
func (t *Tree) Empty() bool   { return t.root == nil }
func (t *Tree) OwnedLen() int { return t.owned }

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Insert attaches ref at its BST position. A ref whose id is already present
// is rejected with ErrDuplicate and the tree is left untouched.
func (t *Tree) Insert(ref Ref) error {
	if !ref.Valid() {
		return ErrInvalidRef
	}
	return t.insertNode(&Node{ref: ref})
}

func (t *Tree) insertNode(n *Node) error {
	if t.root == nil {
		t.root = n
		t.linked(n)
		return nil
	}
	id := n.ID()
	cur := t.root
	for {
		switch {
		case id == cur.ID():
			return fmt.Errorf("id %d: %w", id, ErrDuplicate)
		case id < cur.ID():
			if cur.left == nil {
				cur.left = n
				t.linked(n)
				return nil
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = n
				t.linked(n)
				return nil
			}
			cur = cur.right
		}
	}
}

func (t *Tree) linked(n *Node) {
	t.size++
	if n.ref.kind == Owned {
		t.owned++
	}
}

// PointSearch descends by id comparison.
func (t *Tree) PointSearch(id int) *Node {
	cur := t.root
	for cur != nil {
		switch {
		case id == cur.ID():
			return cur
		case id < cur.ID():
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// LevelSearch scans breadth-first and returns the first node with id. It does
// not rely on the ordering invariant.
func (t *Tree) LevelSearch(id int) *Node {
	var found *Node
	t.levelOrder(func(n *Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Contains reports whether id is in the tree.
func (t *Tree) Contains(id int) bool {
	return t.LevelSearch(id) != nil
}

// Delete removes id, keeping the tree ordered. It reports whether anything
// was removed; a missing id leaves the tree as it was.
func (t *Tree) Delete(id int) bool {
	var stats ReleaseStats
	t.root = t.deleteNode(t.root, id, &stats)
	t.size -= stats.Nodes
	t.owned -= stats.Owned
	return stats.Nodes > 0
}

func (t *Tree) deleteNode(n *Node, id int, stats *ReleaseStats) *Node {
	if n == nil {
		return nil
	}
	switch {
	case id < n.ID():
		n.left = t.deleteNode(n.left, id, stats)
		return n
	case id > n.ID():
		n.right = t.deleteNode(n.right, id, stats)
		return n
	}

	switch {
	case n.left == nil && n.right == nil:
		stats.add(n.release())
		return nil
	case n.left == nil:
		child := n.right
		stats.add(n.release())
		return child
	case n.right == nil:
		child := n.left
		stats.add(n.release())
		return child
	}

	// Two children: the successor's entry is copied into a fresh node that
	// takes the target's place, then the successor itself is removed.
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	repl := &Node{ref: Own(*succ.Entry()), left: n.left, right: n.right}
	t.owned++
	stats.Owned += n.release().Owned
	repl.right = t.deleteNode(repl.right, repl.ID(), stats)
	return repl
}

// release drops the node's ref and detaches its children.
func (n *Node) release() ReleaseStats {
	s := ReleaseStats{Nodes: 1}
	if n.ref.Release() {
		s.Owned = 1
	}
	n.left, n.right = nil, nil
	return s
}

// Release frees every node post-order and leaves the tree empty.
func (t *Tree) Release() ReleaseStats {
	var stats ReleaseStats
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		stats.add(n.release())
	}
	walk(t.root)
	t.root, t.size, t.owned = nil, 0, 0
	return stats
}

// Validate checks the strict ordering property and the cached counters.
func (t *Tree) Validate() error {
	count, owned := 0, 0
	var check func(n *Node, lo, hi int) error
	check = func(n *Node, lo, hi int) error {
		if n == nil {
			return nil
		}
		if !n.ref.Valid() {
			return fmt.Errorf("node %d: %w", count, ErrInvalidRef)
		}
		id := n.ID()
		if id <= lo || id >= hi {
			return fmt.Errorf("id %d outside (%d, %d)", id, lo, hi)
		}
		count++
		if n.ref.kind == Owned {
			owned++
		}
		if err := check(n.left, lo, id); err != nil {
			return err
		}
		return check(n.right, id, hi)
	}
	if err := check(t.root, math.MinInt, math.MaxInt); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size %d, counted %d", t.size, count)
	}
	if owned != t.owned {
		return fmt.Errorf("owned %d, counted %d", t.owned, owned)
	}
	return nil
}
