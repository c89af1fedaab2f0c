package generator

import (
	"math"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Random returns n items with indices 0..n-1 and a capacity of
// ⌊ratio·Σ weights⌋. n ≤ 0 yields no items and capacity 0.
//
// Draw order is fixed (weight, then value, per item), so a seed pins the
// whole instance.
//
// Complexity: O(n).
func Random(n int, opts ...Option) ([]knapsack.Item, int64) {
	if n <= 0 {
		return []knapsack.Item{}, 0
	}
	cfg := newConfig(opts...)

	var (
		items = make([]knapsack.Item, n)
		total int64
		w, v  int64
		i     int
	)
	for i = 0; i < n; i++ {
		w = between(cfg.rng, cfg.minWeight, cfg.maxWeight)
		v = between(cfg.rng, cfg.minValue, cfg.maxValue)
		if cfg.correlated {
			v += w
		}
		items[i] = knapsack.Item{Index: i, Value: v, Weight: w}
		total += w
	}

	return items, int64(math.Floor(cfg.capacityRatio * float64(total)))
}
