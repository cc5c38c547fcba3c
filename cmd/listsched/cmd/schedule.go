package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pietrek928/listsched/internal/specfile"
)

var scheduleInput string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run a single forward schedule over an input graph and report its makespan",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringVarP(&scheduleInput, "input", "i", "", "input JSON file (required)")
	scheduleCmd.MarkFlagRequired("input")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	f, err := specfile.Load(scheduleInput)
	if err != nil {
		return err
	}

	_, prog, err := f.Build()
	if err != nil {
		return err
	}

	order := specfile.SeedOrder(prog.Size())
	log.Info("loaded program: %d nodes", prog.Size())

	score, err := prog.ScheduleForward(order)
	if err != nil {
		return fmt.Errorf("schedule_forward failed: %w", err)
	}

	fmt.Printf("makespan=%g order=%v\n", score, order)

	return nil
}
