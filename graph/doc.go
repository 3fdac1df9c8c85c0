// Package graph provides the finite, simple, undirected graph abstraction
// shared by the flow, td, and mwis packages.
//
// A Graph stores vertices as small integers and edges as unordered pairs.
// Edge membership runs in expected constant time, neighbor iteration in
// time proportional to the vertex's degree, and an induced subgraph in
// time proportional to the total degree of the kept vertices — never the
// whole graph, the property the tree-decomposition and independent-set
// algorithms lean on most heavily.
//
// Graph is not safe for concurrent use. The package targets the
// single-threaded, synchronous call pattern described by its callers:
// one goroutine builds a Graph, hands it to td.Decompose or mwis.Solve,
// and no other goroutine touches it until that call returns.
package graph
