package pokedex

import (
	"fmt"
	"sort"

	"github.com/jask/pokedex/internal/catalog"
)

// Order selects a traversal.
type Order int

const (
	LevelOrder Order = iota + 1
	PreOrder
	InOrder
	PostOrder
	ByName
)

var orderNames = map[Order]string{
	LevelOrder: "BFS (Level-Order)",
	PreOrder:   "Pre-Order",
	InOrder:    "In-Order",
	PostOrder:  "Post-Order",
	ByName:     "Alphabetical (by name)",
}

// Orders lists every traversal in menu order.
func Orders() []Order {
	return []Order{LevelOrder, PreOrder, InOrder, PostOrder, ByName}
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder maps a 1-based menu choice to an Order.
func ParseOrder(choice int) (Order, error) {
	o := Order(choice)
	if _, ok := orderNames[o]; !ok {
		return 0, fmt.Errorf("invalid display choice %d", choice)
	}
	return o, nil
}

// Walk visits nodes in the given order until fn returns false.
func (t *Tree) Walk(order Order, fn func(*Node) bool) {
	switch order {
	case LevelOrder:
		t.levelOrder(fn)
	case PreOrder:
		preOrder(t.root, fn)
	case InOrder:
		inOrder(t.root, fn)
	case PostOrder:
		postOrder(t.root, fn)
	case ByName:
		for _, n := range t.byName() {
			if !fn(n) {
				return
			}
		}
	}
}

// Traverse returns the entries in the given order. Every call walks the tree
// afresh and the tree is not modified.
func (t *Tree) Traverse(order Order) []*catalog.Entry {
	out := make([]*catalog.Entry, 0, t.size)
	t.Walk(order, func(n *Node) bool {
		out = append(out, n.Entry())
		return true
	})
	return out
}

// IDs is Traverse reduced to entry ids.
func (t *Tree) IDs(order Order) []int {
	out := make([]int, 0, t.size)
	t.Walk(order, func(n *Node) bool {
		out = append(out, n.ID())
		return true
	})
	return out
}

func (t *Tree) levelOrder(fn func(*Node) bool) {
	if t.root == nil {
		return
	}
	queue := make([]*Node, 0, t.size)
	queue = append(queue, t.root)
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if !fn(cur) {
			return
		}
		if cur.left != nil {
			queue = append(queue, cur.left)
		}
		if cur.right != nil {
			queue = append(queue, cur.right)
		}
	}
}

func preOrder(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	return fn(n) && preOrder(n.left, fn) && preOrder(n.right, fn)
}

func inOrder(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, fn) && fn(n) && inOrder(n.right, fn)
}

func postOrder(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, fn) && postOrder(n.right, fn) && fn(n)
}

// byName collects nodes level-order and sorts them by name, byte-wise.
func (t *Tree) byName() []*Node {
	nodes := make([]*Node, 0, t.size)
	t.levelOrder(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Entry().Name < nodes[j].Entry().Name
	})
	return nodes
}
