package ntd

import (
	"github.com/go-graphalg/treewidth/bag"
	"github.com/go-graphalg/treewidth/td"
)

// Build converts an arbitrary tree decomposition into a nice tree
// decomposition rooted at an arbitrary node. It rejects a d whose node
// and edge counts, or connectivity, don't form a tree.
//
// Every original node's bag reappears verbatim as the bag of some node
// in the result — Build only inserts intermediate Introduce, Forget,
// and Join steps between them, and two empty-bag caps at the root and
// at every leaf.
func Build(d *td.Decomposition) (*Tree, error) {
	if err := validateTree(d); err != nil {
		return nil, err
	}

	nt := newTree()
	if d.NodeCount() == 0 {
		leaf := nt.newNode(Leaf, bag.New())
		nt.root = leaf
		return nt, nil
	}

	var nodeFor func(origT, origParent int) int
	nodeFor = func(origT, origParent int) int {
		children := childrenOf(d, origT, origParent)
		if len(children) == 0 {
			leaf := nt.newNode(Leaf, bag.New())
			return attachChain(nt, d.Bag(origT), bag.New(), leaf)
		}

		tops := make([]int, 0, len(children))
		for _, c := range children {
			childTop := nodeFor(c, origT)
			tops = append(tops, attachChain(nt, d.Bag(origT), d.Bag(c), childTop))
		}
		return joinCascade(nt, d.Bag(origT), tops)
	}

	origRoot := d.Root()
	topOfRoot := nodeFor(origRoot, -1)
	nt.root = attachChain(nt, bag.New(), d.Bag(origRoot), topOfRoot)
	return nt, nil
}

// joinCascade reduces a node's per-child connectors — each already
// carrying bagb — to a single node with that same bag, inserting one
// binary Join per extra connector beyond the first.
func joinCascade(nt *Tree, bagb bag.Bag, tops []int) int {
	cur := tops[0]
	for _, next := range tops[1:] {
		join := nt.newNode(Join, bagb.Clone())
		nt.link(join, cur)
		nt.link(join, next)
		cur = join
	}
	return cur
}

// attachChain builds the Introduce/Forget chain that steps a bag from
// bagFrom down to bagTo one vertex at a time, and returns the ID of
// the topmost node (the one carrying bagFrom). It first removes every
// vertex of bagFrom not in bagTo (shrinking to bagFrom ∩ bagTo — these
// steps are Introduce nodes, since each one's child is missing that
// vertex), then adds every vertex of bagTo not in bagFrom (growing to
// bagTo — these steps are Forget nodes, since each one's child has
// that extra vertex). bottom is the already-built node carrying bagTo.
//
// Run in the order this chain is actually assembled — bottom-up — the
// phases invert: it first peels off the to-be-added vertices (undoing
// what will be a Forget step from the top's perspective) and then
// reattaches the to-be-removed ones (undoing what will be an Introduce
// step).
func attachChain(nt *Tree, bagFrom, bagTo bag.Bag, bottom int) int {
	introduceVerts := bag.Diff(bagFrom, bagTo).Slice()
	forgetVerts := bag.Diff(bagTo, bagFrom).Slice()

	cur := bottom
	curBag := bagTo.Clone()
	for _, v := range forgetVerts {
		next := curBag.Clone()
		next.Remove(v)
		id := nt.newNode(Forget, next)
		nt.link(id, cur)
		cur, curBag = id, next
	}
	for _, v := range introduceVerts {
		next := curBag.Clone()
		next.Insert(v)
		id := nt.newNode(Introduce, next)
		nt.link(id, cur)
		cur, curBag = id, next
	}
	return cur
}

func childrenOf(d *td.Decomposition, t, parent int) []int {
	var out []int
	for _, n := range d.Neighbors(t) {
		if n != parent {
			out = append(out, n)
		}
	}
	return out
}

func validateTree(d *td.Decomposition) error {
	if d.EdgeCount() != d.NodeCount()-1 {
		return ErrNotATree
	}
	nodes := d.Nodes()
	if len(nodes) == 0 {
		return nil
	}
	seen := map[int]bool{nodes[0]: true}
	queue := []int{nodes[0]}
	for i := 0; i < len(queue); i++ {
		for _, nb := range d.Neighbors(queue[i]) {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	if len(seen) != len(nodes) {
		return ErrNotATree
	}
	return nil
}
