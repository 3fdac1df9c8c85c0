package td

import (
	"github.com/go-graphalg/treewidth/bag"
	"github.com/go-graphalg/treewidth/flow"
	"github.com/go-graphalg/treewidth/graph"
)

// Decompose attempts to build a tree decomposition of g with every bag
// of size at most 3k+5 (width at most 3k+4). It reports false if no
// such decomposition could be found by this algorithm's bounded search
// — which, because the search is an approximation, may happen even
// when a width-k decomposition of g exists. When it returns true, the
// width bound is guaranteed to hold.
func Decompose(g *graph.Graph, k int) (*Decomposition, bool) {
	if k < 0 {
		return nil, false
	}
	d := newDecomposition()
	root, ok := decompose(d, g, nil, k)
	if !ok {
		return nil, false
	}
	d.root = root
	return d, true
}

// decompose implements the recursive balanced-separator step: h is the
// induced subgraph currently being decomposed, w the interface vertices
// already forced into h's bag by the parent call.
func decompose(d *Decomposition, h *graph.Graph, w []int, k int) (int, bool) {
	if h.VertexCount() == 0 {
		return d.newNode(bag.New(w...)), true
	}

	if comps := h.ConnectedComponents(); len(comps) > 1 {
		root := d.newNode(bag.New())
		for _, comp := range comps {
			hi := h.InducedSubgraph(comp)
			wi := restrictTo(w, comp)
			child, ok := decompose(d, hi, wi, k)
			if !ok {
				return 0, false
			}
			d.addEdge(root, child)
		}
		return root, true
	}

	// The remaining connected piece already fits in one bag together
	// with the forced interface: no further separation is needed, and
	// trying to separate anyway (with too small an interface to guide
	// it) can recreate the exact same subproblem on every recursive
	// call. Terminating here is what makes the recursion progress.
	if len(w)+h.VertexCount() <= 3*k+5 {
		bg := bag.New(w...)
		for _, v := range h.Vertices() {
			bg.Insert(v)
		}
		return d.newNode(bg), true
	}

	sep, ok := findSeparator(h, w, k)
	if !ok {
		return 0, false
	}

	bg := bag.Union(bag.New(w...), bag.New(sep...))
	t := d.newNode(bg)

	remaining := h.InducedSubgraph(without(h.Vertices(), sep))
	for _, comp := range remaining.ConnectedComponents() {
		boundary := neighborsOfSetIn(h, comp, bg)
		childVertices := append(append([]int{}, comp...), boundary...)
		hc := h.InducedSubgraph(childVertices)
		wc := restrictTo(bg.Slice(), childVertices)
		child, ok := decompose(d, hc, wc, k)
		if !ok {
			return 0, false
		}
		d.addEdge(t, child)
	}
	return t, true
}

// findSeparator searches for a vertex set S, |S| <= k+1, whose removal
// from h leaves every component holding at most a 2/3 share of some
// balance target. When the interface w already has at least two
// vertices, the target and the balance accounting are exactly w, per
// the component-of-interface rule. When w has fewer than two vertices
// there is nothing meaningful to balance against yet, so the target is
// bootstrapped from two far-apart vertices of h (found by a double BFS
// sweep) and the balance accounting falls back to raw component vertex
// counts — the classical separator-theorem balance condition.
func findSeparator(h *graph.Graph, w []int, k int) ([]int, bool) {
	var target []int
	onInterface := len(w) >= 2
	if onInterface {
		target = append([]int{}, w...)
	} else {
		u, v := diameterEndpoints(h)
		target = []int{u, v}
	}

	n := len(target)
	for i := 1; i < (1 << uint(n-1)); i++ {
		a, b := SplitSet(target, i)
		sep, size := flow.MinVertexSeparator(h, a, b)
		if size > k+1 {
			continue
		}
		if isBalanced(h, sep, target, onInterface) {
			return sep, true
		}
	}
	return nil, false
}

func isBalanced(h *graph.Graph, sep, target []int, onInterface bool) bool {
	remaining := h.InducedSubgraph(without(h.Vertices(), sep))
	comps := remaining.ConnectedComponents()

	if onInterface {
		bound := ceilDiv(2*len(target), 3)
		inTarget := toSet(target)
		for _, c := range comps {
			count := 0
			for _, v := range c {
				if inTarget[v] {
					count++
				}
			}
			if count > bound {
				return false
			}
		}
		return true
	}

	bound := ceilDiv(2*h.VertexCount(), 3)
	for _, c := range comps {
		if len(c) > bound {
			return false
		}
	}
	return true
}

// diameterEndpoints returns two vertices of the connected graph h found
// by a double BFS sweep: a BFS from an arbitrary start locates a
// farthest vertex u, then a BFS from u locates a farthest vertex v.
// (u, v) approximate the endpoints of h's diameter, a standard way to
// pick two vertices likely to lie on opposite sides of a good
// separator.
func diameterEndpoints(h *graph.Graph) (int, int) {
	start := h.Vertices()[0]
	u := farthestFrom(h, start)
	v := farthestFrom(h, u)
	return u, v
}

func farthestFrom(h *graph.Graph, src int) int {
	dist := map[int]int{src: 0}
	queue := []int{src}
	best, bestDist := src, 0
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if dist[cur] > bestDist {
			bestDist = dist[cur]
			best = cur
		}
		for _, nb := range h.Neighbors(cur) {
			if _, seen := dist[nb]; !seen {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return best
}

func ceilDiv(num, den int) int {
	return (num + den - 1) / den
}

func toSet(vs []int) map[int]bool {
	out := make(map[int]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}

func restrictTo(vs []int, allowed []int) []int {
	allowedSet := toSet(allowed)
	var out []int
	for _, v := range vs {
		if allowedSet[v] {
			out = append(out, v)
		}
	}
	return out
}

func without(vs []int, excluded []int) []int {
	excludedSet := toSet(excluded)
	var out []int
	for _, v := range vs {
		if !excludedSet[v] {
			out = append(out, v)
		}
	}
	return out
}

// neighborsOfSetIn returns the vertices of allowed adjacent (in h) to
// some vertex of comp, excluding comp's own members.
func neighborsOfSetIn(h *graph.Graph, comp []int, allowed bag.Bag) []int {
	compSet := toSet(comp)
	seen := map[int]bool{}
	var out []int
	for _, v := range comp {
		for _, nb := range h.Neighbors(v) {
			if compSet[nb] || seen[nb] || !allowed.Contains(nb) {
				continue
			}
			seen[nb] = true
			out = append(out, nb)
		}
	}
	return out
}
