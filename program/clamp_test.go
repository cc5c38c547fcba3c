package program

import "testing"

// TestClamp mirrors seed scenario 5: a node with start_pos=5, end_pos=10
// yields key=5 for a priority below the window and key=10 for one above.
func TestClamp(t *testing.T) {
	cases := []struct {
		x, lo, hi, want int
	}{
		{1, 5, 10, 5},
		{100, 5, 10, 10},
		{7, 5, 10, 7},
		{5, 5, 10, 5},
		{10, 5, 10, 10},
	}

	for _, c := range cases {
		if got := clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("clamp(%d,%d,%d) = %d, want %d", c.x, c.lo, c.hi, got, c.want)
		}
	}
}
