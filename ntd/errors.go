package ntd

import "errors"

// ErrNotATree is returned by Build when the input decomposition's node
// and edge counts, or its connectivity, don't satisfy the tree
// property Build relies on.
var ErrNotATree = errors.New("ntd: input decomposition is not a tree")
