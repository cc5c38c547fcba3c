package search

import "errors"

// ErrNilProgram indicates Run was called with a nil *program.Program.
var ErrNilProgram = errors.New("search: program is nil")

// ErrOrderLengthMismatch indicates the caller-supplied order slice has a
// length different from the program's node count.
var ErrOrderLengthMismatch = errors.New("search: order length does not match program size")

// ErrNoPerturbations indicates Options.Perturbations is empty; the driver
// would have nothing to propose.
var ErrNoPerturbations = errors.New("search: perturbation step list is empty")

// ErrNegativeKOuter indicates Options.KOuter is negative.
var ErrNegativeKOuter = errors.New("search: KOuter must be non-negative")

// ErrUnsupportedTieBreak indicates an Options.TieBreak value this
// implementation does not (yet) support; only TieBreakSmallestIndex is
// currently wired through program's priority queues.
var ErrUnsupportedTieBreak = errors.New("search: unsupported tie-break policy")
