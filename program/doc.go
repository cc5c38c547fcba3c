// Package program builds a fixed data-flow graph over a processor
// descriptor and drives the two topological scheduling passes the search
// driver perturbs: a forward pass that produces a makespan estimate, and a
// backward pass that produces a regularizing seed order (spec.md §4.D).
//
// A Program owns one procstate.State, reused across every ScheduleForward
// call via its internal Reset — the hot path the search driver leans on.
// Building a fresh Program per attempt would be correct but wasteful; the
// processor descriptor and graph are both immutable after construction, so
// one Program safely serves an unbounded number of sequential attempts.
//
// Neither pass is safe for concurrent use on the same Program: the shared
// procstate.State is exclusively owned by whichever attempt is in flight
// (spec.md §5).
package program
