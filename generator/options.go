// Package generator - functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Random itself never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
package generator

import "math/rand"

// Option customizes Random by mutating a config before generation.
type Option func(*config)

// config aggregates all knobs used by Random.
type config struct {
	rng *rand.Rand // nil ⇒ rngFromSeed(0)

	minValue, maxValue   int64
	minWeight, maxWeight int64

	// capacityRatio scales Σ weights into the capacity.
	capacityRatio float64

	// correlated ties each value to its weight (value = weight + noise).
	correlated bool
}

// Deterministic defaults.
const (
	defaultMinValue      = int64(1)
	defaultMaxValue      = int64(100)
	defaultMinWeight     = int64(1)
	defaultMaxWeight     = int64(100)
	defaultCapacityRatio = 0.5
)

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		minValue:      defaultMinValue,
		maxValue:      defaultMaxValue,
		minWeight:     defaultMinWeight,
		maxWeight:     defaultMaxWeight,
		capacityRatio: defaultCapacityRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithValueRange draws values uniformly from [lo, hi].
// Panics unless 0 ≤ lo ≤ hi.
func WithValueRange(lo, hi int64) Option {
	if lo < 0 || lo > hi {
		panic("generator: WithValueRange requires 0 <= lo <= hi")
	}
	return func(c *config) {
		c.minValue, c.maxValue = lo, hi
	}
}

// WithWeightRange draws weights uniformly from [lo, hi].
// Panics unless 0 ≤ lo ≤ hi.
func WithWeightRange(lo, hi int64) Option {
	if lo < 0 || lo > hi {
		panic("generator: WithWeightRange requires 0 <= lo <= hi")
	}
	return func(c *config) {
		c.minWeight, c.maxWeight = lo, hi
	}
}

// WithCapacityRatio sets capacity = ⌊r·Σ weights⌋. Panics unless 0 ≤ r ≤ 1.
func WithCapacityRatio(r float64) Option {
	if !(r >= 0 && r <= 1) {
		panic("generator: WithCapacityRatio requires 0 <= r <= 1")
	}
	return func(c *config) {
		c.capacityRatio = r
	}
}

// WithCorrelation makes values track weights: value = weight + noise, with
// noise drawn from the value range. Strongly correlated instances defeat
// density-based pruning and are the usual stress case for branch-and-bound.
func WithCorrelation(on bool) Option {
	return func(c *config) {
		c.correlated = on
	}
}
