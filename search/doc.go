// Package search implements the coordinate-descent local search driver
// over a program's priority vector (spec.md §4.E).
//
// Each outer iteration runs a forward sweep (decreasing perturbation steps,
// node index ascending, order[i] += step) followed by a backward sweep
// (same steps, node index descending, order[i] -= step). A proposal is
// accepted whenever it does not worsen the estimated makespan (score' <=
// score), which allows plateau moves and keeps the accepted-score trace
// non-increasing (P7).
//
// Run evaluates every proposal through program.Program.ScheduleForward —
// the same estimator used by the caller to obtain the initial score. The
// program's own ScheduleBackward pass is a distinct, unrelated seeding
// operation and is not invoked by the search loop.
//
// Run checks ctx at each outer-loop boundary and returns the best result
// found so far together with ctx.Err() on cancellation, matching the
// "cooperative cancellation token" spec.md §5 allows as an implementation
// addition; the reference algorithm itself defines no cancellation.
package search
