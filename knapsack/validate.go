// Package knapsack - validation shared by every solver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time; the only allocation is the index bitset.
package knapsack

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// validateInstance verifies capacity and items.
//
// Contract:
//   - capacity ≥ 0.
//   - Every Value and Weight ≥ 0.
//   - Indices form a permutation of 0..n-1 (in range and unique), so the
//     selection can be addressed by Index.
//   - Σ Value and Σ Weight fit in int64.
//
// Complexity: O(n) time, O(n/64) extra words for the seen-index set.
func validateInstance(items []Item, capacity int64) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	var (
		n      = len(items)
		seen   = bitset.New(uint(n))
		sumV   int64 // running Σ values
		sumW   int64 // running Σ weights
		it     Item
		i      int
		hasOvf bool
	)
	for i = 0; i < n; i++ {
		it = items[i]
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has value %d", ErrNegativeValue, it.Index, it.Value)
		}
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d has weight %d", ErrNegativeWeight, it.Index, it.Weight)
		}
		if it.Index < 0 || it.Index >= n {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, it.Index, n)
		}
		if seen.Test(uint(it.Index)) {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, it.Index)
		}
		seen.Set(uint(it.Index))

		if sumV, hasOvf = addChecked(sumV, it.Value); hasOvf {
			return ErrOverflow
		}
		if sumW, hasOvf = addChecked(sumW, it.Weight); hasOvf {
			return ErrOverflow
		}
	}

	return nil
}

// validateTolerance accepts 0 ≤ tol < 1.
func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || tol < 0 || tol >= 1 {
		return fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
	}

	return nil
}

// addChecked returns a+b and whether the sum overflowed (a, b ≥ 0).
func addChecked(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, true
	}

	return a + b, false
}

// Verify checks that res is a consistent answer for (items, capacity):
// the selection has one 0/1 entry per item, the selected weight fits the
// capacity and the selected value equals res.Value.
//
// Verify does not check optimality.
//
// Complexity: O(n).
func Verify(items []Item, capacity int64, res Result) error {
	if err := validateInstance(items, capacity); err != nil {
		return err
	}
	if len(res.Selection) != len(items) {
		return fmt.Errorf("%w: length %d, want %d", ErrSelectionShape, len(res.Selection), len(items))
	}

	var value, weight int64
	for _, it := range items {
		switch res.Selection[it.Index] {
		case 0:
		case 1:
			value += it.Value
			weight += it.Weight
		default:
			return fmt.Errorf("%w: entry %d is %d", ErrSelectionShape, it.Index, res.Selection[it.Index])
		}
	}
	if weight > capacity {
		return fmt.Errorf("%w: weight %d > capacity %d", ErrInfeasible, weight, capacity)
	}
	if value != res.Value {
		return fmt.Errorf("%w: selected %d, reported %d", ErrValueMismatch, value, res.Value)
	}

	return nil
}
