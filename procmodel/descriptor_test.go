package procmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pietrek928/listsched/procmodel"
)

func TestNewDescriptor_RejectsNonPositivePorts(t *testing.T) {
	_, err := procmodel.NewDescriptor(0)
	require.ErrorIs(t, err, procmodel.ErrNonPositivePorts)

	_, err = procmodel.NewDescriptor(-2)
	require.ErrorIs(t, err, procmodel.ErrNonPositivePorts)
}

func TestNewOp_Validation(t *testing.T) {
	d, err := procmodel.NewDescriptor(2)
	require.NoError(t, err)

	_, err = d.NewOp(-1, []int{0})
	require.ErrorIs(t, err, procmodel.ErrNegativeLatency)

	_, err = d.NewOp(1, nil)
	require.ErrorIs(t, err, procmodel.ErrEmptyPorts)

	_, err = d.NewOp(1, []int{2})
	require.ErrorIs(t, err, procmodel.ErrUnknownPort)

	id, err := d.NewOp(3.0, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 0, id)

	op, err := d.Op(id)
	require.NoError(t, err)
	require.Equal(t, 3.0, op.Len)
	require.Equal(t, []int{0, 1}, op.Ports)

	_, err = d.Op(99)
	require.ErrorIs(t, err, procmodel.ErrUnknownOp)
}

func TestNewMemLevel_Validation(t *testing.T) {
	d, err := procmodel.NewDescriptor(1)
	require.NoError(t, err)

	_, err = d.NewMemLevel(0, 0, 1.0)
	require.ErrorIs(t, err, procmodel.ErrNonPositiveTierSize)

	_, err = d.NewMemLevel(4, 0, -1.0)
	require.ErrorIs(t, err, procmodel.ErrNegativeLoadTime)

	_, err = d.NewMemLevel(4, 5, 1.0)
	require.ErrorIs(t, err, procmodel.ErrUnknownPort)

	fast, err := d.NewMemLevel(1, 0, 1.0)
	require.NoError(t, err)
	require.Equal(t, 0, fast)

	slow, err := d.NewMemLevel(10, 0, 10.0)
	require.NoError(t, err)
	require.Equal(t, 1, slow)

	tiers := d.Tiers()
	require.Len(t, tiers, 2)
	require.Equal(t, procmodel.MemTier{Size: 1, Port: 0, LoadTime: 1.0}, tiers[0])
	require.Equal(t, procmodel.MemTier{Size: 10, Port: 0, LoadTime: 10.0}, tiers[1])
}

// TestTiers_ReturnsCopy ensures mutating the returned slice cannot corrupt
// the Descriptor's internal state.
func TestTiers_ReturnsCopy(t *testing.T) {
	d, err := procmodel.NewDescriptor(1)
	require.NoError(t, err)
	_, err = d.NewMemLevel(4, 0, 1.0)
	require.NoError(t, err)

	tiers := d.Tiers()
	tiers[0].Size = 9999

	again := d.Tiers()
	require.Equal(t, 4, again[0].Size)
}
