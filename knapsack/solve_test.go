package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/knapsack"
)

func TestSolve_Dispatch(t *testing.T) {
	items := scenarioA()

	res, err := knapsack.Solve(items, 10, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(80), res.Value)
	assert.Positive(t, res.Stats.Cells, "default is dynamic programming")

	res, err = knapsack.Solve(items, 10, knapsack.Options{Algo: knapsack.BranchAndBound, Tolerance: 0.5})
	require.NoError(t, err)
	assert.False(t, res.Optimal)
	assert.Positive(t, res.Stats.Nodes)

	_, err = knapsack.Solve(items, 10, knapsack.Options{Algo: knapsack.Algorithm(42)})
	assert.ErrorIs(t, err, knapsack.ErrUnsupportedAlgorithm)
}

// DynamicProgramming is exact whatever tolerance is passed.
func TestSolve_DPIgnoresTolerance(t *testing.T) {
	res, err := knapsack.Solve(scenarioA(), 10, knapsack.Options{Algo: knapsack.DynamicProgramming, Tolerance: 0.5})
	require.NoError(t, err)

	assert.Equal(t, int64(80), res.Value)
	assert.True(t, res.Optimal)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := knapsack.ParseAlgorithm("bb")
	require.NoError(t, err)
	assert.Equal(t, knapsack.BranchAndBound, a)
	assert.Equal(t, "bb", a.String())

	a, err = knapsack.ParseAlgorithm("dp")
	require.NoError(t, err)
	assert.Equal(t, knapsack.DynamicProgramming, a)

	_, err = knapsack.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, knapsack.ErrUnsupportedAlgorithm)
	assert.Equal(t, "Algorithm(7)", knapsack.Algorithm(7).String())
}

// -----------------------------------------------------------------------------
// Cross-solver properties
// -----------------------------------------------------------------------------

func TestSolvers_AgreeExactly(t *testing.T) {
	for k := 0; k < propertyRuns; k++ {
		items, capacity := fixture(k)

		dp, err := knapsack.SolveDP(items, capacity)
		require.NoError(t, err)
		bb, err := knapsack.SolveBB(items, 0, capacity)
		require.NoError(t, err)

		require.Equalf(t, dp.Value, bb.Value, "run %d", k)
		require.True(t, dp.Optimal)
		require.True(t, bb.Optimal)
	}
}

// Larger than brute force can reach; DP is the reference.
func TestSolvers_AgreeOnLargerInstances(t *testing.T) {
	for k := 0; k < 10; k++ {
		items, capacity := generator.Random(30+k,
			generator.WithSeed(generator.DeriveSeed(seedBase, uint64(1000+k))),
			generator.WithWeightRange(1, 50),
			generator.WithValueRange(1, 50),
		)

		dp, err := knapsack.SolveDP(items, capacity)
		require.NoError(t, err)
		bb, err := knapsack.SolveBB(items, 0, capacity)
		require.NoError(t, err)

		require.Equalf(t, dp.Value, bb.Value, "run %d", k)
		mustConsistent(t, items, capacity, dp)
		mustConsistent(t, items, capacity, bb)
	}
}

func TestSolvers_MonotoneInCapacity(t *testing.T) {
	items, total := generator.Random(10, generator.WithSeed(seedBase), generator.WithCapacityRatio(1))

	var prevDP, prevBB int64
	for c := int64(0); c <= total; c++ {
		dp, err := knapsack.SolveDP(items, c)
		require.NoError(t, err)
		bb, err := knapsack.SolveBB(items, 0, c)
		require.NoError(t, err)

		require.GreaterOrEqualf(t, dp.Value, prevDP, "capacity %d", c)
		require.GreaterOrEqualf(t, bb.Value, prevBB, "capacity %d", c)
		prevDP, prevBB = dp.Value, bb.Value
	}
}

// -----------------------------------------------------------------------------
// Logging
// -----------------------------------------------------------------------------

func TestSolve_LogsOneRecordPerCall(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	knapsack.SetLogger(zap.New(core))
	t.Cleanup(func() { knapsack.SetLogger(nil) })

	_, err := knapsack.SolveDP(scenarioA(), 10)
	require.NoError(t, err)
	_, err = knapsack.SolveBB(scenarioA(), 0, 10)
	require.NoError(t, err)

	entries := logs.FilterMessage("knapsack solved").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "dp", entries[0].ContextMap()["algo"])
	assert.Equal(t, "bb", entries[1].ContextMap()["algo"])
	assert.Equal(t, int64(80), entries[1].ContextMap()["value"])
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	knapsack.SetLogger(nil)
	assert.NotNil(t, knapsack.Logger())
}
