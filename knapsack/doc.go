// Package knapsack provides exact and controlled-approximation solvers for
// the 0/1 knapsack problem.
//
// 🚀 What is the 0/1 knapsack problem?
//
//	Given items with an integer value and an integer weight, and a single
//	integer capacity, choose a subset of items whose total weight does not
//	exceed the capacity and whose total value is as large as possible.
//	Every item is either taken whole or left behind.
//
// ✨ Solvers:
//
//   - SolveDP — dynamic programming over a sparse (prefix, capacity) table
//     followed by a backward traceback. Always exact.
//
//   - Time:   O(n·C) worst case (C = capacity, clamped to Σ weights)
//
//   - Memory: O(populated cells); zero cells are never stored.
//
//   - SolveBB — depth-first branch-and-bound pruned by the greedy
//     fractional-relaxation bound (GreedyBound). Exact when tolerance == 0;
//     a positive tolerance lowers every bound by that fraction, pruning
//     harder at the risk of missing the optimum.
//
//   - Time:   exponential in n in the worst case, fast in practice.
//
//   - Memory: O(n) (recursion depth, partial selection, discard mask).
//
//   - Relaxation / GreedyBound — the fractional relaxation on its own.
//
// All solvers accept items in any order and report the selection aligned to
// the items' original Index, independent of the internal sort order:
//
//	items := []knapsack.Item{
//	  {Index: 0, Value: 45, Weight: 5},
//	  {Index: 1, Value: 48, Weight: 8},
//	  {Index: 2, Value: 35, Weight: 3},
//	}
//	res, err := knapsack.SolveDP(items, 10)
//	// res.Value == 80, res.Selection == [1 0 1], res.Optimal == true
//
// Values and weights are int64. Inputs whose total value or total weight would
// overflow int64 are rejected with ErrOverflow, so no accumulator inside a
// solver can wrap around.
//
// Each call owns its table, search state and masks; solvers share nothing and
// are safe to call from multiple goroutines concurrently.
package knapsack
