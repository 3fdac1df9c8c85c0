package flow

import "github.com/go-graphalg/treewidth/graph"

// vertex IDs are assumed non-negative throughout this package (true of
// every vertex identity produced by this module); inNode/outNode map
// each original vertex to a disjoint pair of split-graph nodes.
func inNode(v int) int  { return 2 * v }
func outNode(v int) int { return 2*v + 1 }

const (
	source = -2
	sink   = -1
)

// MinVertexSeparator computes a minimum set of vertices of h whose
// removal leaves no path between any vertex of A and any vertex of B.
// The separator may include vertices of A or B themselves — removing
// all of one side is always a valid (if sometimes wasteful) way to
// separate it from the other. MinVertexSeparator returns the separator
// and its size.
//
// The computation splits every vertex v of h into an "in" node and an
// "out" node joined by a unit-capacity arc — the one place in the
// network a vertex can be "used up" — connects a super-source to the
// in-node of every a in A and the out-node of every b in B to a
// super-sink with infinite-capacity arcs, and mirrors every edge of h
// as an infinite-capacity arc between the endpoints' out/in nodes in
// both directions. By Menger's theorem the resulting max flow equals
// the minimum vertex-cut size, and the cut itself is read off the
// nodes reachable from the source in the saturated residual network.
func MinVertexSeparator(h *graph.Graph, a, b []int) (separator []int, size int) {
	if len(a) == 0 || len(b) == 0 {
		return nil, 0
	}

	inA := toSet(a)
	inB := toSet(b)

	n := newNetwork()
	for _, v := range h.Vertices() {
		n.addArc(inNode(v), outNode(v), 1)
	}
	for _, e := range h.Edges() {
		n.addArc(outNode(e.U), inNode(e.V), infinite)
		n.addArc(outNode(e.V), inNode(e.U), infinite)
	}
	for v := range inA {
		n.addArc(source, inNode(v), infinite)
	}
	for v := range inB {
		n.addArc(outNode(v), sink, infinite)
	}

	n.maxFlow(source, sink)

	reach := n.reachableFrom(source)
	for _, v := range h.Vertices() {
		if reach[inNode(v)] && !reach[outNode(v)] {
			separator = append(separator, v)
		}
	}

	return separator, len(separator)
}

func toSet(vs []int) map[int]bool {
	out := make(map[int]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}
