package program

import (
	"container/heap"

	"github.com/pietrek928/listsched/procmodel"
	"github.com/pietrek928/listsched/procstate"
)

// NodeSpec describes one node of the data-flow graph: the catalog
// operation it runs, the inclusive window its clamped priority key is
// restricted to, and its expected memory footprint (carried for callers
// that size tiers against aggregate liveness; the scheduler itself only
// needs Op/StartPos/EndPos).
type NodeSpec struct {
	Op       int
	StartPos int
	EndPos   int
	ExpUse   float64
}

// Program is the fixed pairing of a processor descriptor with a data-flow
// graph: per-node operation/window specs, forward adjacency G (predecessor
// lists, as supplied), and its reverse GRev (successor lists, derived).
type Program struct {
	proc  *procmodel.Descriptor
	nodes []NodeSpec
	g     [][]int
	gRev  [][]int
	state *procstate.State
}

// New builds a Program over proc for the given nodes and predecessor
// adjacency preds (preds[v] lists v's predecessors, i.e. G[v] in spec.md's
// notation). The reverse adjacency GRev is derived once here.
func New(proc *procmodel.Descriptor, nodes []NodeSpec, preds [][]int) (*Program, error) {
	if proc == nil {
		return nil, ErrNilDescriptor
	}
	if len(preds) != len(nodes) {
		return nil, ErrPredsLengthMismatch
	}

	n := len(nodes)
	for _, spec := range nodes {
		if _, err := proc.Op(spec.Op); err != nil {
			return nil, ErrUnknownOp
		}
		if spec.StartPos < 0 || spec.StartPos > spec.EndPos {
			return nil, ErrInvalidPositionWindow
		}
	}

	g := make([][]int, n)
	gRev := make([][]int, n)
	for v, ps := range preds {
		cp := make([]int, len(ps))
		for i, u := range ps {
			if u < 0 || u >= n {
				return nil, ErrNodeIndexOutOfRange
			}
			cp[i] = u
			gRev[u] = append(gRev[u], v)
		}
		g[v] = cp
	}

	st, err := procstate.New(proc, n)
	if err != nil {
		return nil, err
	}

	return &Program{proc: proc, nodes: nodes, g: g, gRev: gRev, state: st}, nil
}

// Size returns the number of nodes in the graph.
func (p *Program) Size() int {
	return len(p.nodes)
}

// EndTime reports node v's completion time from the most recent
// ScheduleForward attempt, and whether that attempt actually emitted v.
func (p *Program) EndTime(v int) (float64, bool) {
	return p.state.EndTime(v)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// ScheduleForward runs the priority-ordered topological walk of spec.md
// §4.D: order is read for its priority values and overwritten in place
// with each node's emitted position (0-based). It returns the resulting
// makespan, or ErrCycleDetected if the readiness queue drains before every
// node is emitted.
func (p *Program) ScheduleForward(order []int) (float64, error) {
	n := p.Size()
	if len(order) != n {
		return 0, ErrOrderLengthMismatch
	}

	p.state.Reset()

	left := make([]int, n)
	pq := make(readyPQ, 0, n)
	for v := 0; v < n; v++ {
		left[v] = len(p.g[v])
		if left[v] == 0 {
			pq = append(pq, &readyItem{node: v, key: clamp(order[v], p.nodes[v].StartPos, p.nodes[v].EndPos)})
		}
	}
	heap.Init(&pq)

	pos := 0
	emitted := 0
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*readyItem)
		v := it.node

		order[v] = pos
		pos++
		emitted++

		for _, w := range p.gRev[v] {
			left[w]--
			if left[w] == 0 {
				heap.Push(&pq, &readyItem{node: w, key: clamp(order[w], p.nodes[w].StartPos, p.nodes[w].EndPos)})
			}
		}

		p.state.BeginOp()
		for _, u := range p.g[v] {
			if err := p.state.UseMem(u, pos); err != nil {
				return 0, err
			}
		}

		op, err := p.proc.Op(p.nodes[v].Op)
		if err != nil {
			return 0, err
		}
		if err := p.state.Perform(v, pos, op); err != nil {
			return 0, err
		}
	}

	if emitted != n {
		return 0, ErrCycleDetected
	}

	return p.state.FinishTime(), nil
}

// ScheduleBackward runs the symmetric reverse-DAG traversal of spec.md
// §4.D: starting from sinks, it assigns positions from n-1 downward using
// priority key total_nodes - clamp(order[v], start, end), producing a
// topological numbering consistent with GRev. It does not touch processor
// state and reports no makespan — it exists purely as a seed/regularizer
// for the search driver.
func (p *Program) ScheduleBackward(order []int) error {
	n := p.Size()
	if len(order) != n {
		return ErrOrderLengthMismatch
	}

	right := make([]int, n)
	pq := make(readyPQ, 0, n)
	for v := 0; v < n; v++ {
		right[v] = len(p.gRev[v])
		if right[v] == 0 {
			key := n - clamp(order[v], p.nodes[v].StartPos, p.nodes[v].EndPos)
			pq = append(pq, &readyItem{node: v, key: key})
		}
	}
	heap.Init(&pq)

	pos := n - 1
	emitted := 0
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*readyItem)
		v := it.node

		order[v] = pos
		pos--
		emitted++

		for _, u := range p.g[v] {
			right[u]--
			if right[u] == 0 {
				key := n - clamp(order[u], p.nodes[u].StartPos, p.nodes[u].EndPos)
				heap.Push(&pq, &readyItem{node: u, key: key})
			}
		}
	}

	if emitted != n {
		return ErrCycleDetected
	}

	return nil
}
