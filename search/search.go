package search

import (
	"context"

	"github.com/pietrek928/listsched/program"
)

// Result is the outcome of one Run: the best priority/position vector
// found, its estimated makespan, and the non-increasing trace of every
// accepted score (P7).
type Result struct {
	Order   []int
	Score   float64
	History []float64
}

// Run drives coordinate-descent local search over order, starting from its
// initial forward-schedule score and repeating opts.KOuter forward/backward
// sweep pairs. order is not mutated; the returned Result.Order holds the
// final accepted vector. ctx is checked at each outer-loop boundary.
func Run(ctx context.Context, prog *program.Program, order []int, opts Options) (Result, error) {
	if prog == nil {
		return Result{}, ErrNilProgram
	}
	if len(order) != prog.Size() {
		return Result{}, ErrOrderLengthMismatch
	}
	if len(opts.Perturbations) == 0 {
		return Result{}, ErrNoPerturbations
	}
	if opts.KOuter < 0 {
		return Result{}, ErrNegativeKOuter
	}
	if opts.TieBreak != TieBreakSmallestIndex {
		return Result{}, ErrUnsupportedTieBreak
	}

	n := prog.Size()
	cur := make([]int, n)
	copy(cur, order)

	score, err := prog.ScheduleForward(cur)
	if err != nil {
		return Result{}, err
	}

	history := []float64{score}
	candidate := make([]int, n)

	for outer := 0; outer < opts.KOuter; outer++ {
		if err := ctx.Err(); err != nil {
			return Result{Order: cur, Score: score, History: history}, err
		}

		// Forward sweep: node index ascending, order[i] += step.
		for _, step := range opts.Perturbations {
			for i := 0; i < n; i++ {
				copy(candidate, cur)
				candidate[i] += step

				candScore, err := prog.ScheduleForward(candidate)
				if err != nil {
					return Result{Order: cur, Score: score, History: history}, err
				}
				if candScore <= score {
					cur, candidate = candidate, cur
					score = candScore
					history = append(history, score)
				}
			}
		}

		// Backward sweep: node index descending, order[i] -= step.
		for _, step := range opts.Perturbations {
			for i := n - 1; i >= 0; i-- {
				copy(candidate, cur)
				candidate[i] -= step

				candScore, err := prog.ScheduleForward(candidate)
				if err != nil {
					return Result{Order: cur, Score: score, History: history}, err
				}
				if candScore <= score {
					cur, candidate = candidate, cur
					score = candScore
					history = append(history, score)
				}
			}
		}
	}

	return Result{Order: cur, Score: score, History: history}, nil
}
