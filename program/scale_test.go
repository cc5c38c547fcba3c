package program_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pietrek928/listsched/internal/dagbuilder"
	"github.com/pietrek928/listsched/procmodel"
	"github.com/pietrek928/listsched/program"
)

// TestScheduleForward_RandomSparseIsValidPermutation builds a 60-node
// randomized DAG via dagbuilder and checks that ScheduleForward still
// produces a permutation of 0..n-1 respecting topological order (P1/P2),
// and that every node's end time is no earlier than any predecessor's
// (P4), without needing a hand-written fixture for every scale.
func TestScheduleForward_RandomSparseIsValidPermutation(t *testing.T) {
	const n = 60

	preds, err := dagbuilder.Build(n, dagbuilder.RandomSparse(), dagbuilder.WithSeed(42), dagbuilder.WithDensity(0.08))
	require.NoError(t, err)

	proc, err := procmodel.NewDescriptor(2)
	require.NoError(t, err)
	fast, err := proc.NewMemLevel(1000000, 0, 0)
	require.NoError(t, err)
	_ = fast
	op, err := proc.NewOp(1.0, []int{0, 1})
	require.NoError(t, err)

	nodes := make([]program.NodeSpec, n)
	for i := range nodes {
		nodes[i] = program.NodeSpec{Op: op, StartPos: 0, EndPos: n - 1}
	}

	prog, err := program.New(proc, nodes, preds)
	require.NoError(t, err)

	order := make([]int, n)
	for i := range order {
		order[i] = -i
	}

	_, err = prog.ScheduleForward(order)
	require.NoError(t, err)

	seen := make([]bool, n)
	for _, pos := range order {
		require.False(t, seen[pos], "position %d emitted twice", pos)
		seen[pos] = true
	}

	for v, ps := range preds {
		vEnd, ok := prog.EndTime(v)
		require.True(t, ok)
		for _, p := range ps {
			require.Less(t, order[p], order[v], "predecessor %d must be scheduled before %d", p, v)
			pEnd, ok := prog.EndTime(p)
			require.True(t, ok)
			require.LessOrEqual(t, pEnd, vEnd)
		}
	}
}

// TestScheduleForward_GridIsValidPermutation exercises the Grid topology,
// a denser, regularly-shaped DAG distinct from RandomSparse's tree-like
// sparsity, checking that every edge is respected by the emitted order (P2).
func TestScheduleForward_GridIsValidPermutation(t *testing.T) {
	const rows, cols = 5, 6
	const n = rows * cols

	preds, err := dagbuilder.Build(n, dagbuilder.Grid(rows, cols))
	require.NoError(t, err)

	proc, err := procmodel.NewDescriptor(1)
	require.NoError(t, err)
	_, err = proc.NewMemLevel(1000000, 0, 0)
	require.NoError(t, err)
	op, err := proc.NewOp(1.0, []int{0})
	require.NoError(t, err)

	nodes := make([]program.NodeSpec, n)
	for i := range nodes {
		nodes[i] = program.NodeSpec{Op: op, StartPos: 0, EndPos: n - 1}
	}

	prog, err := program.New(proc, nodes, preds)
	require.NoError(t, err)

	order := make([]int, n)
	_, err = prog.ScheduleForward(order)
	require.NoError(t, err)

	for v, ps := range preds {
		for _, p := range ps {
			require.Less(t, order[p], order[v])
		}
	}
}
