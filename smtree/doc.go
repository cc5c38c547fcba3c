// Package smtree implements the value-liveness range tree used by the
// scheduler: an interval-increment / suffix-maximum structure over an
// integer array a[1..N].
//
// The single operation, Inc, models:
//
//	Inc(b, e) performs a[i] += 1 for every i in the half-open-on-left
//	interval (b, e], then returns max(a[b+1], a[b+2], ..., a[N]).
//
// N is fixed at construction (rounded up internally to the next power of
// two) and never changes; Clear rewinds the tree to all-zero in place so
// the same Tree can be reused across scheduling attempts without
// reallocating.
//
// This is the algebraic contract a caller may rely on — not any particular
// bit-twiddling shape. The reference C++ this package is modeled on
// (pietrek928/speedups' smtree::inc) walks two fingers toward the root in
// O(log N); this package instead uses a textbook lazy-propagation segment
// tree over range-add / range-max, which satisfies the same contract with
// less room for off-by-one error. Either shape passes the property that
// matters: after any Inc(b,e), a query for max(a[b+1..N]) returns the
// value Inc itself just returned.
package smtree
