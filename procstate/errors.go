package procstate

import "errors"

// ErrNilDescriptor indicates New was called with a nil *procmodel.Descriptor.
var ErrNilDescriptor = errors.New("procstate: processor descriptor is nil")

// ErrNegativeNodeCount indicates New was called with a negative node count.
var ErrNegativeNodeCount = errors.New("procstate: node count must be non-negative")

// ErrNoMemoryTiers indicates the descriptor has no memory tiers registered;
// a simulator cannot charge traffic without at least one tier to select.
var ErrNoMemoryTiers = errors.New("procstate: processor descriptor has no memory tiers")

// ErrUnknownNode indicates a node index passed to UseMem, Perform, or
// EndTime fell outside [0, n).
var ErrUnknownNode = errors.New("procstate: node index out of range")

// ErrPredecessorNotEmitted indicates UseMem was asked to consume a node
// that has not yet been committed via Perform in this attempt — a
// violation of the topological-order invariant (spec.md §3).
var ErrPredecessorNotEmitted = errors.New("procstate: predecessor has not been emitted")
