package smtree

import "math"

// negInf is returned by an empty (non-overlapping) sub-range during the
// recursive merge; it is never itself stored in the tree.
const negInf = math.MinInt64 / 2

// Tree is a lazy-propagation segment tree over a conceptual integer array
// a[0..size-1] (size = the next power of two >= the requested leaf count).
// It supports one composite operation: increment a half-open-on-left
// interval by one and report the suffix maximum from the incremented
// boundary onward. See doc.go for the exact contract.
//
// Not safe for concurrent use; each ProcessorState owns exactly one Tree
// for the lifetime of its attempts (see procstate.State).
type Tree struct {
	size int   // leaf count, a power of two
	node []int // node[i] = max over node i's range, lazy already folded in
	lazy []int // lazy[i] = pending add not yet pushed to node i's children
}

// New builds a Tree with room for n leaves (indices 0..n-1 externally).
// n may be zero; the tree is still usable (size is rounded up to 1).
func New(n int) (*Tree, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	size := 1
	for size < n {
		size *= 2
	}
	t := &Tree{
		size: size,
		node: make([]int, 4*size),
		lazy: make([]int, 4*size),
	}
	return t, nil
}

// Clear zeroes every pending increment and cached maximum, rewinding the
// tree to the state New produced, without reallocating the backing arrays.
func (t *Tree) Clear() {
	for i := range t.node {
		t.node[i] = 0
		t.lazy[i] = 0
	}
}

// Inc increments a[i] for every external leaf index i in (b, e], then
// returns max(a[b+1], ..., a[size-1]) (the suffix starting right after b).
//
// b and e must satisfy 0 <= b <= e <= size-1; ErrOutOfRange otherwise.
func (t *Tree) Inc(b, e int) (int, error) {
	if b < 0 || e < b || e > t.size-1 {
		return 0, ErrOutOfRange
	}

	// Internal leaves are 1-indexed; external index i lives at position i+1.
	if b < e {
		lo, hi := b+2, e+1 // external (b, e] -> internal [b+2, e+1]
		t.rangeAdd(1, 1, t.size, lo, hi, 1)
	}

	suffixLo := b + 2 // external b+1 -> internal b+2
	if suffixLo > t.size {
		return 0, nil
	}

	return t.rangeMax(1, 1, t.size, suffixLo, t.size), nil
}

// push propagates node's pending lazy addition one level down to its two
// children, then clears it. Children absorb both their own max and their
// own lazy so a later push from them is still correct.
func (t *Tree) push(node int) {
	if t.lazy[node] == 0 {
		return
	}
	for _, c := range [2]int{2 * node, 2*node + 1} {
		t.node[c] += t.lazy[node]
		t.lazy[c] += t.lazy[node]
	}
	t.lazy[node] = 0
}

// rangeAdd adds delta to every leaf in [l, r] within the subtree rooted at
// node, which covers [lo, hi].
func (t *Tree) rangeAdd(node, lo, hi, l, r, delta int) {
	if r < lo || hi < l {
		return
	}
	if l <= lo && hi <= r {
		t.node[node] += delta
		t.lazy[node] += delta
		return
	}
	t.push(node)
	mid := (lo + hi) / 2
	t.rangeAdd(2*node, lo, mid, l, r, delta)
	t.rangeAdd(2*node+1, mid+1, hi, l, r, delta)
	t.node[node] = max(t.node[2*node], t.node[2*node+1])
}

// rangeMax returns the maximum leaf value in [l, r] within the subtree
// rooted at node, which covers [lo, hi].
func (t *Tree) rangeMax(node, lo, hi, l, r int) int {
	if r < lo || hi < l {
		return negInf
	}
	if l <= lo && hi <= r {
		return t.node[node]
	}
	t.push(node)
	mid := (lo + hi) / 2
	return max(t.rangeMax(2*node, lo, mid, l, r), t.rangeMax(2*node+1, mid+1, hi, l, r))
}
