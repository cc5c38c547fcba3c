package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pietrek928/listsched/internal/specfile"
	"github.com/pietrek928/listsched/search"
)

var (
	searchInput   string
	searchKOuter  int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the coordinate-descent local search driver and report the before/after makespan",
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchInput, "input", "i", "", "input JSON file (required)")
	searchCmd.Flags().IntVar(&searchKOuter, "k-outer", 0, "override the configured number of outer iterations (0 = use config)")
	searchCmd.MarkFlagRequired("input")
}

func runSearch(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	cfg := GetConfig()

	f, err := specfile.Load(searchInput)
	if err != nil {
		return err
	}

	_, prog, err := f.Build()
	if err != nil {
		return err
	}

	seed := specfile.SeedOrder(prog.Size())
	initial := make([]int, len(seed))
	copy(initial, seed)

	initialScore, err := prog.ScheduleForward(initial)
	if err != nil {
		return fmt.Errorf("initial schedule_forward failed: %w", err)
	}
	log.Info("initial makespan: %g", initialScore)

	opts := search.DefaultOptions()
	opts.KOuter = cfg.Search.KOuter
	opts.Perturbations = cfg.Search.Perturbations()
	if searchKOuter > 0 {
		opts.KOuter = searchKOuter
	}

	res, err := search.Run(context.Background(), prog, seed, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("initial_makespan=%g final_makespan=%g order=%v\n", initialScore, res.Score, res.Order)

	return nil
}
