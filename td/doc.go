// Package td builds an approximate tree decomposition of a graph using
// recursive balanced-separator decomposition.
//
// Decompose repeatedly splits the graph (or the current induced
// subgraph) with a small vertex separator found via flow.MinVertexSeparator,
// recursing on the pieces left behind until every piece is small enough
// to sit in one bag. The resulting tree's width is bounded in terms of
// the requested k, never the graph's true treewidth — Decompose is an
// approximation, and may report failure even when a width-k
// decomposition exists.
package td
