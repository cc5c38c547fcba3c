// Package config loads the listsched CLI's configuration via viper,
// mirroring junjiewwang-perf-analysis/pkg/config/config.go's
// defaults-then-file-then-env layering.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// SearchConfig holds the coordinate-descent driver's tunables.
type SearchConfig struct {
	KOuter        int    `mapstructure:"k_outer"`
	PerturbMin    int    `mapstructure:"perturb_min"`
	PerturbMax    int    `mapstructure:"perturb_max"`
	TieBreak      string `mapstructure:"tie_break"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Config holds all configuration for the listsched CLI.
type Config struct {
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// Load reads configuration from configPath, falling back to defaults when
// no file is found. Environment variables prefixed LISTSCHED_ override
// file values (e.g. LISTSCHED_SEARCH_K_OUTER).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("listsched")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/listsched")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stderr, "config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("listsched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.k_outer", 20)
	v.SetDefault("search.perturb_min", 1)
	v.SetDefault("search.perturb_max", 25)
	v.SetDefault("search.tie_break", "smallest_index")

	v.SetDefault("log.level", "info")
}

// Validate checks the loaded configuration for internally-inconsistent
// values viper's unmarshal step cannot catch on its own.
func (c *Config) Validate() error {
	if c.Search.KOuter < 0 {
		return fmt.Errorf("search.k_outer must be non-negative")
	}
	if c.Search.PerturbMin <= 0 || c.Search.PerturbMax <= 0 {
		return fmt.Errorf("search.perturb_min and search.perturb_max must be positive")
	}
	if c.Search.PerturbMin > c.Search.PerturbMax {
		return fmt.Errorf("search.perturb_min must not exceed search.perturb_max")
	}
	if c.Search.TieBreak != "smallest_index" {
		return fmt.Errorf("unsupported tie_break: %s", c.Search.TieBreak)
	}

	return nil
}

// Perturbations expands [PerturbMin, PerturbMax] into the descending step
// list search.Options expects.
func (c *SearchConfig) Perturbations() []int {
	steps := make([]int, 0, c.PerturbMax-c.PerturbMin+1)
	for j := c.PerturbMax; j >= c.PerturbMin; j-- {
		steps = append(steps, j)
	}

	return steps
}
