package smtree

import "errors"

// ErrNegativeSize indicates a negative leaf count was passed to New.
var ErrNegativeSize = errors.New("smtree: negative size")

// ErrOutOfRange indicates b or e fell outside the tree's valid leaf index
// range [0, size) or violated b <= e.
var ErrOutOfRange = errors.New("smtree: index out of range")
