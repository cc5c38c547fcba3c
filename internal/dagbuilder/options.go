package dagbuilder

import "math/rand"

// Option customizes a Build call by mutating a buildConfig before the
// topology's Constructor runs.
//
// Option constructors validate and panic on meaningless inputs; Constructors
// themselves never panic and only return sentinel errors.
type Option func(*buildConfig)

type buildConfig struct {
	rng     *rand.Rand
	density float64
}

func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{
		rng:     rand.New(rand.NewSource(1)),
		density: 0.3,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed creates a deterministic RNG for stochastic topologies (RandomSparse).
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG, replacing the one set by any earlier
// option (options apply in order, so a later WithSeed replaces it). Panics on nil to
// surface the mistake immediately rather than silently falling back.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dagbuilder: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithDensity sets the per-pair edge probability used by RandomSparse.
// Panics if p is outside [0,1].
// Complexity: O(1) time, O(1) space.
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("dagbuilder: WithDensity out of [0,1]")
	}
	return func(c *buildConfig) {
		c.density = p
	}
}
