// Package mwis computes a maximum weighted independent set of a graph
// by dynamic programming over a nice tree decomposition of it.
//
// Solve walks the nice tree bottom-up, keeping one memoized weight per
// (node, subset-of-the-node's-bag) pair: Leaf contributes nothing,
// Introduce either skips its new vertex or commits its weight, Forget
// picks the better of keeping or excluding its departing vertex, and
// Join combines two children's counts of the same subset while
// correcting for the vertex weights it would otherwise double-count.
// A second top-down pass follows the choices recorded during the
// first to recover which vertices make up the optimal set.
package mwis
