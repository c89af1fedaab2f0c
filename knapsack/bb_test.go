// Package knapsack_test validates the branch-and-bound solver (SolveBB).
// Focus:
//  1. Scenarios: exact optimum, degenerate inputs, approximation mode.
//  2. Optimality flag ⇔ tolerance == 0.
//  3. Approximation floor: value ≥ ⌊(1−t)·OPT⌋.
//  4. Determinism under identical inputs.
package knapsack_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/knapsack"
)

func TestSolveBB_ScenarioA(t *testing.T) {
	items := scenarioA()
	res, err := knapsack.SolveBB(items, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(80), res.Value)
	assert.True(t, res.Optimal)
	assert.Equal(t, []int{1, 0, 1}, res.Selection)
	assert.Positive(t, res.Stats.Nodes)
	mustConsistent(t, items, 10, res)
}

func TestSolveBB_ZeroCapacity(t *testing.T) {
	res, err := knapsack.SolveBB(scenarioA(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Value)
	assert.True(t, res.Optimal)
	assert.Equal(t, []int{0, 0, 0}, res.Selection)
}

func TestSolveBB_OversizedItem(t *testing.T) {
	res, err := knapsack.SolveBB([]knapsack.Item{{Index: 0, Value: 99, Weight: 15}}, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Value)
	assert.True(t, res.Optimal)
	assert.Equal(t, []int{0}, res.Selection)
}

func TestSolveBB_Empty(t *testing.T) {
	res, err := knapsack.SolveBB([]knapsack.Item{}, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Value)
	assert.True(t, res.Optimal)
	assert.Empty(t, res.Selection)
}

func TestSolveBB_ZeroWeightItems(t *testing.T) {
	items := []knapsack.Item{
		{Index: 0, Value: 5, Weight: 0},
		{Index: 1, Value: 7, Weight: 0},
		{Index: 2, Value: 9, Weight: 4},
	}
	res, err := knapsack.SolveBB(items, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.Value)
	assert.Equal(t, []int{1, 1, 0}, res.Selection)
}

// With tolerance 0.5 the root bound drops from 92 to 46 and the search
// settles for the single heavy item.
func TestSolveBB_ApproximateScenarioA(t *testing.T) {
	items := scenarioA()
	res, err := knapsack.SolveBB(items, 0.5, 10)
	require.NoError(t, err)

	assert.False(t, res.Optimal)
	assert.LessOrEqual(t, res.Value, int64(80))
	assert.Equal(t, int64(48), res.Value)
	assert.Equal(t, []int{0, 1, 0}, res.Selection)
	mustConsistent(t, items, 10, res)
}

func TestSolveBB_BadTolerance(t *testing.T) {
	for _, tol := range []float64{-0.1, 1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := knapsack.SolveBB(scenarioA(), tol, 10)
		assert.ErrorIsf(t, err, knapsack.ErrBadTolerance, "tolerance %v", tol)
	}
}

func TestSolveBB_MatchesBruteForce(t *testing.T) {
	for k := 0; k < propertyRuns; k++ {
		items, capacity := fixture(k)
		res, err := knapsack.SolveBB(items, 0, capacity)
		require.NoError(t, err)

		require.Equalf(t, bruteForce(items, capacity), res.Value, "run %d (n=%d, C=%d)", k, len(items), capacity)
		require.True(t, res.Optimal)
		mustConsistent(t, items, capacity, res)
	}
}

func TestSolveBB_ApproximationFloor(t *testing.T) {
	for _, tol := range []float64{0.05, 0.2, 0.5, 0.9} {
		for k := 0; k < propertyRuns; k++ {
			items, capacity := fixture(k)
			res, err := knapsack.SolveBB(items, tol, capacity)
			require.NoError(t, err)

			opt := bruteForce(items, capacity)
			require.False(t, res.Optimal)
			require.LessOrEqual(t, res.Value, opt)
			// ⌊(1−t)·OPT⌋ with one unit of slack for float rounding.
			require.GreaterOrEqualf(t, float64(res.Value), math.Floor((1-tol)*float64(opt))-1,
				"tol %v run %d: value %d, optimum %d", tol, k, res.Value, opt)
			mustConsistent(t, items, capacity, res)
		}
	}
}

func TestSolveBB_Deterministic(t *testing.T) {
	items, capacity := fixture(13)
	first, err := knapsack.SolveBB(items, 0, capacity)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := knapsack.SolveBB(slices.Clone(items), 0, capacity)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Many equal-density items exercise the stable tie order.
func TestSolveBB_EqualDensities(t *testing.T) {
	items := []knapsack.Item{
		{Index: 0, Value: 4, Weight: 2},
		{Index: 1, Value: 6, Weight: 3},
		{Index: 2, Value: 2, Weight: 1},
		{Index: 3, Value: 8, Weight: 4},
		{Index: 4, Value: 10, Weight: 5},
	}
	res, err := knapsack.SolveBB(items, 0, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(14), res.Value)
	mustConsistent(t, items, 7, res)

	again, err := knapsack.SolveBB(items, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, res.Selection, again.Selection)
}
