// Package flow computes minimum vertex separators via a max-flow
// reduction: every vertex is split into an "in" node and an "out" node
// joined by a unit-capacity arc, so that a vertex cut in the original
// graph becomes an edge cut in the split graph. Running a blocking-flow
// algorithm (Dinic's) on the split graph and reading off which split
// arcs are saturated and reachable from the source recovers a minimum
// A-B vertex separator, by Menger's theorem.
//
// td is this package's only caller: given an interface bipartitioned
// into A and B, it needs the smallest vertex set whose removal
// disconnects every vertex of A from every vertex of B.
package flow
