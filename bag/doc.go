// Package bag defines the capability-set contract tree decompositions use
// to store the vertices assigned to one node, plus a concrete
// implementation backed by a Go map.
//
// A Bag supports insertion, removal, membership, size, iteration,
// cloning, set-equality, and hashing — nothing more. td, ntd, and mwis depend only on this
// contract, never on a concrete representation, so a caller with a
// performance-sensitive bag shape (a bitset, a sorted slice, ...) can
// supply its own implementation.
package bag
