package graph

import "errors"

// Sentinel errors returned by Graph mutators and queries.
var (
	// ErrSelfLoop is returned by AddEdge when u == v. Self-loops fall
	// outside the finite simple undirected graphs this package models.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrVertexNotFound names the case of a vertex that was never added
	// to the graph. No Graph method returns it: Neighbors returns nil and
	// Degree returns 0 for such a vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)
