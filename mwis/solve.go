package mwis

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-graphalg/treewidth/bag"
	"github.com/go-graphalg/treewidth/graph"
	"github.com/go-graphalg/treewidth/ntd"
)

// dpResult is one memoized (node, subset) entry: the best achievable
// weight, and — only ever populated at a Forget node that chose to
// keep its departing vertex — that vertex, for reconstruction.
type dpResult struct {
	weight uint64
	forgot []int
}

type solver struct {
	g       *graph.Graph
	nt      *ntd.Tree
	weights map[int]uint64
	memo    map[int]map[string]dpResult
}

// Solve finds a maximum weighted independent set of g using the
// Leaf/Introduce/Forget/Join dynamic program over nt. weights must map
// every vertex of g to a non-negative weight; a vertex absent from
// weights is treated as weight zero. It returns the set's total
// weight and its membership, keyed by g's vertex IDs.
func Solve(g *graph.Graph, nt *ntd.Tree, weights map[int]uint64) (uint64, map[int]bool, error) {
	if err := validateTree(nt); err != nil {
		return 0, nil, err
	}

	sv := &solver{g: g, nt: nt, weights: weights, memo: make(map[int]map[string]dpResult)}
	root := nt.Root()
	if err := sv.weigh(root, bitset.New(0)); err != nil {
		return 0, nil, err
	}

	total := sv.memo[root][key(bitset.New(0))].weight
	chosen := make(map[int]bool)
	sv.reconstruct(root, chosen)
	return total, chosen, nil
}

// weigh fills in memo[t][key(s)] — the best weight reachable in the
// subtree rooted at t given that s is exactly the subset of bag(t)
// already committed to the independent set — recursing into t's
// children as needed. s is never mutated; branches that need a
// different subset clone it first.
func (sv *solver) weigh(t int, s *bitset.BitSet) error {
	k := key(s)
	if _, ok := sv.memo[t]; !ok {
		sv.memo[t] = make(map[string]dpResult)
	}
	if _, ok := sv.memo[t][k]; ok {
		return nil
	}

	children := sv.nt.Children(t)
	switch len(children) {
	case 0:
		sv.memo[t][k] = dpResult{}
		return nil

	case 2:
		var total uint64
		for _, c := range children {
			if err := sv.weigh(c, s); err != nil {
				return err
			}
			total += sv.memo[c][k].weight
		}
		for _, v := range members(s) {
			total -= sv.weights[v]
		}
		sv.memo[t][k] = dpResult{weight: total}
		return nil

	case 1:
		child := children[0]
		tBag, cBag := sv.nt.Bag(t), sv.nt.Bag(child)
		switch {
		case tBag.Len() == cBag.Len()+1:
			return sv.weighIntroduce(t, child, s, k, bag.SymmetricDiff(tBag, cBag))
		case tBag.Len()+1 == cBag.Len():
			return sv.weighForget(t, child, s, k, bag.SymmetricDiff(cBag, tBag))
		default:
			return ErrInvalidDecomposition
		}

	default:
		return ErrInvalidDecomposition
	}
}

func (sv *solver) weighIntroduce(t, child int, s *bitset.BitSet, k string, v int) error {
	sChild := s
	var committed uint64
	if s.Test(uint(v)) {
		sChild = s.Clone()
		sChild.Clear(uint(v))
		committed = sv.weights[v]
	}
	if err := sv.weigh(child, sChild); err != nil {
		return err
	}
	sv.memo[t][k] = dpResult{weight: sv.memo[child][key(sChild)].weight + committed}
	return nil
}

func (sv *solver) weighForget(t, child int, s *bitset.BitSet, k string, v int) error {
	// If v is adjacent to something already committed, no valid
	// independent set at this node ever has v: the S∪{v} branch below
	// would be invalid, so the only possibility is the S-without-v one.
	if isAdjacent(sv.g, s, v) {
		if err := sv.weigh(child, s); err != nil {
			return err
		}
		sv.memo[t][k] = dpResult{weight: sv.memo[child][k].weight}
		return nil
	}

	sPlus := s.Clone()
	sPlus.Set(uint(v))
	if err := sv.weigh(child, s); err != nil {
		return err
	}
	if err := sv.weigh(child, sPlus); err != nil {
		return err
	}

	without := sv.memo[child][k].weight
	with := sv.memo[child][key(sPlus)].weight
	if with > without {
		sv.memo[t][k] = dpResult{weight: with, forgot: []int{v}}
	} else {
		sv.memo[t][k] = dpResult{weight: without}
	}
	return nil
}

// reconstruct walks the tree a second time, tracking which vertices
// chosen holds so far. At a Forget node — one child whose bag has
// exactly one vertex more, where a choice was actually recorded — it
// recomputes the subset of bag(curr) already in chosen (which, by
// construction, is exactly the S the DP used to reach curr) and adds
// in whatever vertex that entry's forget step kept.
func (sv *solver) reconstruct(curr int, chosen map[int]bool) {
	children := sv.nt.Children(curr)
	if len(children) == 1 && sv.nt.Bag(children[0]).Len() == sv.nt.Bag(curr).Len()+1 {
		s := bitset.New(0)
		for _, v := range sv.nt.Bag(curr).Slice() {
			if chosen[v] {
				s.Set(uint(v))
			}
		}
		for _, v := range sv.memo[curr][key(s)].forgot {
			chosen[v] = true
		}
	}
	for _, c := range children {
		sv.reconstruct(c, chosen)
	}
}

func isAdjacent(g *graph.Graph, s *bitset.BitSet, v int) bool {
	for _, u := range members(s) {
		if g.HasEdge(u, v) {
			return true
		}
	}
	return false
}

func members(s *bitset.BitSet) []int {
	var out []int
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// key returns a canonical string identifying s's membership,
// independent of the bitset's internal word capacity (which can
// differ between two bitsets holding the same members if one was
// built by clearing bits out of a larger set).
func key(s *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		sb.WriteString(strconv.Itoa(int(i)))
		sb.WriteByte(',')
	}
	return sb.String()
}

func validateTree(nt *ntd.Tree) error {
	seen := make(map[int]bool)
	var walk func(n int) error
	walk = func(n int) error {
		if seen[n] {
			return ErrInvalidDecomposition
		}
		seen[n] = true
		for _, c := range nt.Children(n) {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(nt.Root()); err != nil {
		return err
	}
	if len(seen) != nt.NodeCount() {
		return ErrInvalidDecomposition
	}
	return nil
}
