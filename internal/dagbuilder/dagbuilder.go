package dagbuilder

// Constructor fills in preds for a graph of len(preds) nodes. Implementations
// may only add an edge pred -> v with pred < v, which keeps the produced
// graph acyclic without a separate cycle check.
type Constructor func(preds [][]int, cfg *buildConfig) error

// Build allocates a preds slice of size n and runs ctor over it, applying
// opts first. It returns ErrTooFewNodes if n <= 0.
// Complexity: O(n + edges) time, O(n + edges) space.
func Build(n int, ctor Constructor, opts ...Option) ([][]int, error) {
	if n <= 0 {
		return nil, ErrTooFewNodes
	}

	cfg := newBuildConfig(opts...)
	preds := make([][]int, n)
	if err := ctor(preds, cfg); err != nil {
		return nil, err
	}

	return preds, nil
}

// Chain returns a Constructor for a simple path 0 -> 1 -> ... -> n-1, i.e.
// preds[i] = [i-1] for i>0 and preds[0] = [].
func Chain() Constructor {
	return func(preds [][]int, cfg *buildConfig) error {
		for i := range preds {
			if i > 0 {
				preds[i] = []int{i - 1}
			}
		}
		return nil
	}
}

// FanIn returns a Constructor where every node but the last feeds directly
// into node len(preds)-1: preds[n-1] = [0, 1, ..., n-2].
func FanIn() Constructor {
	return func(preds [][]int, cfg *buildConfig) error {
		n := len(preds)
		if n < 2 {
			return ErrTooFewNodes
		}
		sink := make([]int, n-1)
		for i := 0; i < n-1; i++ {
			sink[i] = i
		}
		preds[n-1] = sink
		return nil
	}
}

// FanOut returns a Constructor where node 0 feeds every other node directly:
// preds[i] = [0] for i>0.
func FanOut() Constructor {
	return func(preds [][]int, cfg *buildConfig) error {
		n := len(preds)
		if n < 2 {
			return ErrTooFewNodes
		}
		for i := 1; i < n; i++ {
			preds[i] = []int{0}
		}
		return nil
	}
}

// Grid returns a Constructor laying n=rows*cols nodes on a grid indexed by
// v = r*cols + c, each node's predecessors being its up and left neighbors
// (r-1,c) and (r,c-1) when present. This is a DAG because both neighbors
// have a strictly smaller index than v.
func Grid(rows, cols int) Constructor {
	return func(preds [][]int, cfg *buildConfig) error {
		n := len(preds)
		if rows <= 0 || cols <= 0 || rows*cols != n {
			return ErrInvalidGrid
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				var ps []int
				if r > 0 {
					ps = append(ps, (r-1)*cols+c)
				}
				if c > 0 {
					ps = append(ps, r*cols+c-1)
				}
				preds[v] = ps
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor that, for every pair i<j, adds i as a
// predecessor of j independently with probability cfg.density. The RNG is
// drawn in ascending (i,j) order so that a fixed seed reproduces a fixed
// graph regardless of any later change to how the caller consumes preds.
func RandomSparse() Constructor {
	return func(preds [][]int, cfg *buildConfig) error {
		n := len(preds)
		for j := 1; j < n; j++ {
			var ps []int
			for i := 0; i < j; i++ {
				if cfg.rng.Float64() < cfg.density {
					ps = append(ps, i)
				}
			}
			preds[j] = ps
		}
		return nil
	}
}
