// Package procmodel describes the target processor: its execution ports,
// its catalog of operations (latency + admissible ports), and its memory
// tiers (capacity, bound port, per-value load cost).
//
// A Descriptor is a pure builder + read-only accessor, matching
// pietrek928/speedups' proc_descr: callers assemble it once with
// NewMemLevel/NewOp and then hand it to program.New and procstate.New for
// the lifetime of every scheduling attempt. There is no mutation after
// construction and no concurrency control is needed — Descriptor is safe
// to share read-only across any number of concurrent ProcessorState
// simulations (spec.md §5).
//
// Memory tiers are ordered fastest/smallest to slowest/largest as they are
// inserted; the last tier inserted absorbs any liveness count that exceeds
// the cumulative capacity of every tier before it (spec.md §4.B).
package procmodel
