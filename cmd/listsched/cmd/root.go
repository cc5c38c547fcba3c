package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pietrek928/listsched/internal/config"
	"github.com/pietrek928/listsched/internal/logx"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
	log logx.Logger
)

// rootCmd is the base command for the listsched reference driver.
var rootCmd = &cobra.Command{
	Use:   "listsched",
	Short: "List scheduler for a data-flow operation graph on a tiered-memory processor model",
	Long: `listsched schedules a data-flow operation graph over an abstract processor
with multiple execution ports and a tiered memory hierarchy. It estimates
the resulting makespan, including memory-traffic cost, and can run a
coordinate-descent local search to reduce it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := logx.ParseLevel(cfg.Log.Level)
		if verbose {
			level = logx.LevelDebug
		}
		log = logx.New(level, os.Stdout)

		return nil
	},
}

// Execute runs the root command, exiting 0 on success and non-zero on
// invalid input (spec.md §6).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./listsched.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetLogger returns the logger configured by the root command.
func GetLogger() logx.Logger {
	return log
}

// GetConfig returns the configuration loaded by the root command.
func GetConfig() *config.Config {
	return cfg
}
