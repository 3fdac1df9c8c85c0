package td

import (
	"sort"

	"github.com/go-graphalg/treewidth/bag"
)

// Decomposition is a tree decomposition (T, β): an undirected tree of
// bags, stored as a set of node IDs, a bag per node, and an adjacency
// relation between nodes. Node IDs are assigned by Decompose or AddNode
// and carry no meaning outside this value.
type Decomposition struct {
	bags map[int]bag.Bag
	adj  map[int]map[int]struct{}
	root int
	next int
}

func newDecomposition() *Decomposition {
	return &Decomposition{
		bags: make(map[int]bag.Bag),
		adj:  make(map[int]map[int]struct{}),
	}
}

// NewDecomposition returns an empty Decomposition that callers populate
// with AddNode, AddEdge and SetRoot. It exists alongside Decompose so
// callers assembling a decomposition by some other means — a different
// algorithm, or a test fixture — can still hand ntd and mwis the same
// type Decompose produces.
func NewDecomposition() *Decomposition {
	return newDecomposition()
}

func (d *Decomposition) newNode(b bag.Bag) int {
	id := d.next
	d.next++
	d.bags[id] = b
	d.adj[id] = make(map[int]struct{})
	return id
}

// AddNode adds a node holding bag b and returns its ID.
func (d *Decomposition) AddNode(b bag.Bag) int {
	return d.newNode(b)
}

func (d *Decomposition) addEdge(u, v int) {
	d.adj[u][v] = struct{}{}
	d.adj[v][u] = struct{}{}
}

// AddEdge connects two existing nodes.
func (d *Decomposition) AddEdge(u, v int) {
	d.addEdge(u, v)
}

// SetRoot designates t as the decomposition's root.
func (d *Decomposition) SetRoot(t int) {
	d.root = t
}

// Root returns the distinguished node chosen by Decompose or set with
// SetRoot. In a decomposition built by Decompose every node is
// reachable from it.
func (d *Decomposition) Root() int {
	return d.root
}

// Nodes returns every node ID, in ascending order.
func (d *Decomposition) Nodes() []int {
	out := make([]int, 0, len(d.bags))
	for t := range d.bags {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// NodeCount returns the number of nodes in the decomposition.
func (d *Decomposition) NodeCount() int {
	return len(d.bags)
}

// EdgeCount returns the number of tree edges.
func (d *Decomposition) EdgeCount() int {
	total := 0
	for _, nbrs := range d.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Bag returns the bag associated with node t.
func (d *Decomposition) Bag(t int) bag.Bag {
	return d.bags[t]
}

// Neighbors returns the tree-neighbors of node t, in ascending order.
func (d *Decomposition) Neighbors(t int) []int {
	out := make([]int, 0, len(d.adj[t]))
	for u := range d.adj[t] {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Width returns max |β(t)| − 1 over every non-empty bag, or −1 if every
// bag is empty (the convention for an empty graph's single-node
// decomposition).
func (d *Decomposition) Width() int {
	width := -1
	for _, b := range d.bags {
		if b.Len() == 0 {
			continue
		}
		if w := b.Len() - 1; w > width {
			width = w
		}
	}
	return width
}
