// Package ntd turns an arbitrary tree decomposition into a nice tree
// decomposition: a canonical form where every node is one of four kinds
// — Leaf, Introduce, Forget, or Join — inferable purely from how its
// bag relates to its children's bags. The root and every leaf carry an
// empty bag.
//
// Build walks the input tree once, rooted arbitrarily, and replaces
// each original edge with a short Introduce/Forget chain that steps
// the bag from parent to child one vertex at a time, cascades a
// node's extra children through binary Join nodes, and caps the root
// and every leaf with a chain down to the empty bag. Nothing about
// this construction changes the set of vertices or edges the original
// decomposition covers — it only reshapes the tree.
package ntd
