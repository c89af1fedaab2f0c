// Package knapsack — greedy fractional-relaxation bound.
//
// The fractional relaxation lets the knapsack take a fraction of one item.
// Over items sorted by descending density it is solved greedily in O(n):
// take whole items while they fit, then the fitting fraction of the first
// item that does not, then stop. The result is an upper bound on every 0/1
// selection drawn from the same items.
//
// Rounding rule: the fractional contribution remaining·value/weight is
// rounded half away from zero, computed exactly in 128-bit integer
// arithmetic. Since the 0/1 optimum is an integer no larger than the real
// relaxation, it is also no larger than the rounded one, so the bound stays
// admissible at tolerance 0.
package knapsack

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// GreedyBound returns the fractional-relaxation estimate for the items not
// marked in discard, scaled down by (1 − tolerance).
//
// Contracts:
//   - sorted must be in ByDensityDesc order; otherwise the value is not a bound.
//   - discard is addressed by position in sorted; a set bit excludes the item.
//     A nil discard excludes nothing.
//   - tolerance ∈ [0, 1). With tolerance == 0 the result is ≥ the optimal
//     0/1 value of the induced sub-problem. A positive tolerance returns
//     trunc(v − v·tolerance), deliberately lowering the bound.
//
// Complexity: O(n) time, O(1) space.
func GreedyBound(sorted []Item, discard *bitset.BitSet, tolerance float64, capacity int64) int64 {
	var (
		weight int64 // weight of whole items taken so far
		value  int64 // value gathered so far
		it     Item
		i      int
	)
	for i = 0; i < len(sorted); i++ {
		if discard != nil && discard.Test(uint(i)) {
			continue
		}
		it = sorted[i]

		if it.Weight > capacity-weight {
			// First item that does not fit: take the fitting fraction and stop.
			value += fraction(capacity-weight, it.Value, it.Weight)

			break
		}

		weight += it.Weight
		value += it.Value
		// Capacity filled exactly. Zero-weight items sort first, so none remain.
		if weight == capacity && it.Weight > 0 {
			break
		}
	}

	return scaleDown(value, tolerance)
}

// Relaxation solves the fractional relaxation of (items, capacity) and
// returns its rounded value. It is the standalone form of GreedyBound.
//
// Complexity: O(n log n) for the density sort, O(n) for the bound.
func Relaxation(items []Item, capacity int64) (int64, error) {
	if err := validateInstance(items, capacity); err != nil {
		return 0, err
	}

	return GreedyBound(ByDensityDesc(items), nil, 0, capacity), nil
}

// fraction returns round(remaining·value/weight), half away from zero.
// Requires 0 ≤ remaining < weight, so the quotient is < value.
func fraction(remaining, value, weight int64) int64 {
	if remaining <= 0 || value == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(remaining), uint64(value))
	// hi < weight because remaining < weight; Div64 cannot overflow.
	q, r := bits.Div64(hi, lo, uint64(weight))
	if r >= uint64(weight)-r {
		q++
	}

	return int64(q)
}

// scaleDown applies the approximation tolerance: trunc(v − v·tol).
// tol == 0 returns v untouched so the exact path never goes through floats.
func scaleDown(v int64, tol float64) int64 {
	if tol == 0 {
		return v
	}
	f := float64(v)

	return int64(f - f*tol)
}
