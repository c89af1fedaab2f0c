package knapsack

import (
	"errors"
	"fmt"
)

// Sentinel errors. Degenerate but well-formed inputs (no items, zero
// capacity, every item oversized) are not errors.
var (
	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeValue indicates an item with Value < 0.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrNegativeWeight indicates an item with Weight < 0.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")

	// ErrIndexOutOfRange indicates an item Index outside [0, len(items)).
	ErrIndexOutOfRange = errors.New("knapsack: item index out of range")

	// ErrDuplicateIndex indicates two items sharing the same Index.
	ErrDuplicateIndex = errors.New("knapsack: duplicate item index")

	// ErrOverflow indicates that Σ values or Σ weights does not fit in int64.
	ErrOverflow = errors.New("knapsack: total value or weight overflows int64")

	// ErrBadTolerance indicates a tolerance outside [0, 1) or NaN.
	ErrBadTolerance = errors.New("knapsack: tolerance must be in [0, 1)")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrSelectionShape indicates a selection of the wrong length or with
	// entries other than 0 and 1.
	ErrSelectionShape = errors.New("knapsack: malformed selection")

	// ErrInfeasible indicates a selection whose weight exceeds the capacity.
	ErrInfeasible = errors.New("knapsack: selection exceeds capacity")

	// ErrValueMismatch indicates a selection whose value differs from Result.Value.
	ErrValueMismatch = errors.New("knapsack: selection value does not match result")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// DynamicProgramming runs SolveDP (exact).
	DynamicProgramming Algorithm = iota

	// BranchAndBound runs SolveBB (exact when Tolerance == 0).
	BranchAndBound
)

// String returns the short CLI name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DynamicProgramming:
		return "dp"
	case BranchAndBound:
		return "bb"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dp" / "bb" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "dp":
		return DynamicProgramming, nil
	case "bb":
		return BranchAndBound, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Options configures Solve.
//
// Fields:
//   - Algo      — solver to run.
//   - Tolerance — BranchAndBound only; every bound is scaled by (1 − Tolerance).
//     0 keeps the search exact. Ignored by DynamicProgramming.
type Options struct {
	Algo      Algorithm
	Tolerance float64
}

// DefaultOptions returns exact dynamic programming.
func DefaultOptions() Options {
	return Options{Algo: DynamicProgramming}
}

// Stats carries search diagnostics. They never influence the result.
type Stats struct {
	// Nodes is the number of branch-and-bound recursion steps.
	Nodes int
	// Pruned counts subtrees abandoned because a bound did not beat the incumbent.
	Pruned int
	// Cells is the number of populated dynamic-programming cells.
	Cells int
}

// Result holds the outcome of a solver.
type Result struct {
	// Value is the total value of the selected items.
	Value int64

	// Optimal reports whether Value is provably optimal.
	Optimal bool

	// Selection has one entry per item, addressed by Item.Index:
	// 1 if the item is taken, 0 otherwise.
	Selection []int

	Stats Stats
}

// Selected returns the original indices of the taken items in ascending order.
func (r Result) Selected() []int {
	out := make([]int, 0, len(r.Selection))
	for i, s := range r.Selection {
		if s == 1 {
			out = append(out, i)
		}
	}

	return out
}
