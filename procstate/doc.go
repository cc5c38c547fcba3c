// Package procstate implements the mutable per-attempt processor
// simulator: port free-times, per-value completion times, last-use
// bookkeeping, and the transient per-port memory-traffic accumulator
// (spec.md §3, "Processor state").
//
// A State is built once per node count and reused across every scheduling
// attempt via Reset, which rewinds port free-times, the liveness range
// tree, and the earliest-start clock without reallocating — the hot path
// the search driver depends on (spec.md §9).
//
// One scheduling step against a State follows the commit protocol from
// spec.md §4.C:
//
//  1. BeginOp clears the transient per-port traffic map.
//  2. UseMem is called once per predecessor consumed by the node being
//     emitted; it records the new live interval in the range tree, selects
//     a memory tier by the resulting peak-liveness count, and accrues that
//     tier's load cost on its bound port.
//  3. Perform commits the operation itself: the accrued traffic is
//     serialized into the ports it touched, then the earliest-available
//     admissible port is chosen to run the operation.
//
// State is not safe for concurrent use; distinct attempts — even of the
// same Program — must each own their own State (spec.md §5).
package procstate
