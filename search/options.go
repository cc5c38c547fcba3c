package search

// TieBreak selects the deterministic tie-break policy the underlying
// program uses when two ready nodes share a clamped priority key.
// TieBreakSmallestIndex is the only policy program.Program currently
// implements (spec.md §9, Open Question OQ-3); the type exists so a
// future policy can be added without an Options-shape break.
type TieBreak int

const (
	// TieBreakSmallestIndex breaks ties in favor of the smallest node index.
	TieBreakSmallestIndex TieBreak = iota
)

// Options configures one Run of the coordinate-descent driver.
type Options struct {
	// KOuter is the number of outer forward/backward sweep pairs.
	KOuter int
	// Perturbations lists the step sizes applied within each sweep, in
	// the order they are tried. DefaultOptions descends 25..1.
	Perturbations []int
	// TieBreak selects the tie-break policy; only TieBreakSmallestIndex
	// is currently supported.
	TieBreak TieBreak
}

// DefaultOptions returns the reference driver's configuration: 20 outer
// iterations and perturbation steps descending from 25 to 1 (spec.md §4.E;
// the step variable is the sweep's own loop index j, not a fixed +=3 —
// see doc.go and DESIGN.md for the resolved ambiguity).
func DefaultOptions() Options {
	steps := make([]int, 25)
	for i := range steps {
		steps[i] = 25 - i
	}

	return Options{
		KOuter:        20,
		Perturbations: steps,
		TieBreak:      TieBreakSmallestIndex,
	}
}
