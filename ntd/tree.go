package ntd

import (
	"sort"

	"github.com/go-graphalg/treewidth/bag"
)

// NodeType classifies a nice-tree-decomposition node by how its bag
// relates to its children's bags. Build assigns it to each node as it
// creates the node, according to the step of the chain that node makes.
type NodeType int

const (
	// Leaf has no children and an empty bag.
	Leaf NodeType = iota
	// Introduce has one child whose bag is this node's bag minus one
	// vertex.
	Introduce
	// Forget has one child whose bag is this node's bag plus one
	// vertex.
	Forget
	// Join has exactly two children, both sharing this node's bag
	// exactly.
	Join
)

func (t NodeType) String() string {
	switch t {
	case Leaf:
		return "Leaf"
	case Introduce:
		return "Introduce"
	case Forget:
		return "Forget"
	case Join:
		return "Join"
	default:
		return "Unknown"
	}
}

// Tree is a nice tree decomposition: a rooted tree whose nodes carry a
// NodeType and a bag, with at most two children each.
type Tree struct {
	typ      map[int]NodeType
	bags     map[int]bag.Bag
	children map[int][]int
	root     int
	next     int
}

func newTree() *Tree {
	return &Tree{
		typ:      make(map[int]NodeType),
		bags:     make(map[int]bag.Bag),
		children: make(map[int][]int),
	}
}

func (nt *Tree) newNode(typ NodeType, b bag.Bag) int {
	id := nt.next
	nt.next++
	nt.typ[id] = typ
	nt.bags[id] = b
	nt.children[id] = nil
	return id
}

func (nt *Tree) link(parent, child int) {
	nt.children[parent] = append(nt.children[parent], child)
}

// Root returns the decomposition's root node. Its bag is always empty.
func (nt *Tree) Root() int {
	return nt.root
}

// Nodes returns every node ID, in ascending order.
func (nt *Tree) Nodes() []int {
	out := make([]int, 0, len(nt.bags))
	for id := range nt.bags {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// NodeCount returns the number of nodes.
func (nt *Tree) NodeCount() int {
	return len(nt.bags)
}

// Type returns the node kind of t.
func (nt *Tree) Type(t int) NodeType {
	return nt.typ[t]
}

// Bag returns the bag associated with node t.
func (nt *Tree) Bag(t int) bag.Bag {
	return nt.bags[t]
}

// Children returns t's children, in construction order: for an
// Introduce or Forget node this is a single-element slice, for a Join
// node a two-element slice, for a Leaf an empty slice.
func (nt *Tree) Children(t int) []int {
	return nt.children[t]
}
