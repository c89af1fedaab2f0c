// Package knapsack_test provides lightweight helpers shared across *_test.go
// files in this package.
package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/knapsack"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// bruteMaxN bounds instance sizes compared against exhaustive search.
	bruteMaxN = 14

	// propertyRuns is the number of random instances per property test.
	propertyRuns = 60

	// seedBase anchors every generated fixture.
	seedBase = int64(20240611)
)

// scenarioA is the three-item instance used throughout: optimum 80 at
// capacity 10 by taking indices 0 and 2, relaxation 92.
func scenarioA() []knapsack.Item {
	return []knapsack.Item{
		{Index: 2, Value: 35, Weight: 3},
		{Index: 0, Value: 45, Weight: 5},
		{Index: 1, Value: 48, Weight: 8},
	}
}

// bruteForce enumerates all 2ⁿ subsets and returns the best value.
func bruteForce(items []knapsack.Item, capacity int64) int64 {
	var (
		best int64
		n    = len(items)
	)
	for mask := 0; mask < 1<<n; mask++ {
		var v, w int64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				v += items[i].Value
				w += items[i].Weight
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// fixture generates the k-th random instance of a property test.
func fixture(k int, opts ...generator.Option) ([]knapsack.Item, int64) {
	n := 1 + k%bruteMaxN
	seed := generator.DeriveSeed(seedBase, uint64(k))
	base := []generator.Option{
		generator.WithSeed(seed),
		generator.WithValueRange(0, 60),
		generator.WithWeightRange(1, 40),
		generator.WithCapacityRatio(float64(k%5) / 4),
		generator.WithCorrelation(k%3 == 0),
	}

	return generator.Random(n, append(base, opts...)...)
}

// mustConsistent asserts the shape/feasibility/value contract of res.
func mustConsistent(t *testing.T, items []knapsack.Item, capacity int64, res knapsack.Result) {
	t.Helper()
	require.NoError(t, knapsack.Verify(items, capacity, res))
}
