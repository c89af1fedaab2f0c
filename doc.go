// Package knapsack is the root of a small toolkit for the 0/1 knapsack
// problem: exact and controlled-approximation solvers, a reproducible
// instance generator, an instance/report codec and a command line tool.
//
// 🚀 What is inside?
//
//	knapsack/     — Item model, GreedyBound, SolveDP (sparse DP + traceback),
//	                SolveBB (branch-and-bound with an optional tolerance)
//	generator/    — seeded random instances (uncorrelated or weight-correlated)
//	instance/     — (index, value, weight) tuples in JSON / YAML, optionally zstd
//	cmd/knapsack/ — solve instance files or generated instances from the shell
//
// ✨ Guarantees:
//
//   - Both exact solvers return the same optimal value for every instance.
//   - Selections are always addressed by the items' original Index.
//   - Results are deterministic: equal inputs give equal outputs.
//   - Values and weights are int64 and totals are overflow-checked.
//
// Quick start:
//
//	go run ./cmd/knapsack -gen 40 -algo bb
package knapsack
