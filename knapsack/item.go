package knapsack

import (
	"math/bits"
	"slices"
)

// Item is one candidate for the knapsack.
//
// Index is the item's stable original position. It is used only to address
// Result.Selection and is never reassigned by a solver. Solvers reorder
// private copies of the item slice; the caller's slice is never mutated.
type Item struct {
	Index  int
	Value  int64
	Weight int64
}

// ByWeightDesc returns a copy of items sorted by Weight, heaviest first.
// The sort is stable, so equal weights keep their input order.
//
// Complexity: O(n log n) time, O(n) space.
func ByWeightDesc(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})

	return out
}

// ByDensityDesc returns a copy of items sorted by value density
// (Value/Weight), densest first. The sort is stable.
//
// Densities are compared exactly by 128-bit cross-multiplication, so the
// order is the same on every platform. Zero-weight items have infinite
// density and come first; among themselves they keep their input order.
//
// Complexity: O(n log n) time, O(n) space.
func ByDensityDesc(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compareDensity)

	return out
}

// compareDensity orders a before b (-1) when a is strictly denser.
func compareDensity(a, b Item) int {
	// Zero weight: infinite density, all equal to each other.
	if a.Weight == 0 || b.Weight == 0 {
		switch {
		case a.Weight == 0 && b.Weight == 0:
			return 0
		case a.Weight == 0:
			return -1
		default:
			return 1
		}
	}

	// a.V/a.W > b.V/b.W  ⇔  a.V·b.W > b.V·a.W  (all operands non-negative).
	lh, ll := bits.Mul64(uint64(a.Value), uint64(b.Weight))
	rh, rl := bits.Mul64(uint64(b.Value), uint64(a.Weight))
	switch {
	case lh > rh || (lh == rh && ll > rl):
		return -1
	case lh < rh || (lh == rh && ll < rl):
		return 1
	default:
		return 0
	}
}

// emptySelection allocates an all-zero selection of length n.
func emptySelection(n int) []int {
	return make([]int, n)
}
