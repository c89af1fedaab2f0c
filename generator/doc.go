// Package generator builds reproducible random 0/1 knapsack instances for
// tests, benchmarks and the knapsack CLI.
//
// Instances are fully determined by the options: the same seed and knobs
// yield the same items and capacity on every platform.
//
//	items, capacity := generator.Random(40,
//	  generator.WithSeed(7),
//	  generator.WithWeightRange(1, 100),
//	  generator.WithCapacityRatio(0.5),
//	  generator.WithCorrelation(true),
//	)
//
// Item indices are 0..n-1 in generation order, so the result can be passed
// straight to knapsack.SolveDP / knapsack.SolveBB.
package generator
