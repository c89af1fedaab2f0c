package knapsack

// Solve validates inputs and routes to the solver chosen in opts.
//
// Contracts:
//   - DynamicProgramming ignores opts.Tolerance and is always exact.
//   - BranchAndBound is exact iff opts.Tolerance == 0.
//
// Errors: validation sentinels from types.go; ErrUnsupportedAlgorithm for an
// unknown opts.Algo.
func Solve(items []Item, capacity int64, opts Options) (Result, error) {
	switch opts.Algo {
	case DynamicProgramming:
		return SolveDP(items, capacity)

	case BranchAndBound:
		return SolveBB(items, opts.Tolerance, capacity)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
