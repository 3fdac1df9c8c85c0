package mwis

import "errors"

// ErrInvalidDecomposition is returned by Solve when nt does not form a
// tree, or when a node's children don't match one of the four node
// shapes Solve's recurrence understands.
var ErrInvalidDecomposition = errors.New("mwis: invalid nice tree decomposition")
