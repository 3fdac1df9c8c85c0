// Package treewidth builds approximate tree decompositions of graphs,
// turns them into nice tree decompositions, and solves maximum weighted
// independent set by dynamic programming over the result.
//
// Three packages carry the pipeline:
//
//	td/   — recursive balanced-separator tree decomposition
//	ntd/  — nice tree decomposition (Leaf/Introduce/Forget/Join)
//	mwis/ — bag DP for maximum weighted independent set
//
// graph/, bag/, and flow/ are the supporting toolkit: a finite simple
// undirected graph, a bag (vertex-set) container, and a minimum vertex
// separator routine built on a max-flow reduction.
//
// A typical pipeline:
//
//	g := graph.NewGraph()
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//
//	decomp, ok := td.Decompose(g, 1)
//	if !ok {
//		// no decomposition of the requested width was found
//	}
//	nice, err := ntd.Build(decomp)
//	weight, chosen, err := mwis.Solve(g, nice, map[int]uint64{0: 2, 1: 8, 2: 5})
package treewidth
