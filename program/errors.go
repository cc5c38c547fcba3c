package program

import "errors"

// ErrNilDescriptor indicates New was called with a nil *procmodel.Descriptor.
var ErrNilDescriptor = errors.New("program: processor descriptor is nil")

// ErrPredsLengthMismatch indicates len(preds) != len(nodes).
var ErrPredsLengthMismatch = errors.New("program: predecessor list length does not match node count")

// ErrNodeIndexOutOfRange indicates an entry of preds referenced a node
// index outside [0, n).
var ErrNodeIndexOutOfRange = errors.New("program: predecessor index out of range")

// ErrUnknownOp indicates a NodeSpec referenced an operation id not present
// in the processor descriptor's catalog.
var ErrUnknownOp = errors.New("program: node references unknown operation")

// ErrInvalidPositionWindow indicates a NodeSpec's StartPos exceeds its
// EndPos, or StartPos is negative.
var ErrInvalidPositionWindow = errors.New("program: node has an invalid [start_pos, end_pos] window")

// ErrOrderLengthMismatch indicates the caller-supplied order slice has a
// length different from the program's node count.
var ErrOrderLengthMismatch = errors.New("program: order length does not match node count")

// ErrCycleDetected indicates the readiness queue drained before every node
// was emitted — the graph is not acyclic.
var ErrCycleDetected = errors.New("program: graph contains a cycle")
