// Package knapsack — Branch-and-Bound (depth-first search pruned by the
// greedy fractional-relaxation bound).
//
// SolveBB enumerates take/discard decisions item by item over items sorted by
// descending density, pruning any subtree whose bound cannot beat the
// incumbent.
//
// Rationale (succinct):
//  1. Density order makes GreedyBound admissible and finds good incumbents
//     early: the first path taken is the greedy solution.
//  2. At item i the discard branch runs first. Item i is marked in the discard
//     mask and the bound is recomputed for what remains; the branch is explored
//     only if that bound beats the incumbent. The mask bit is cleared again on
//     every return path.
//  3. The take branch reuses the bound inherited from the caller: taking an
//     item does not change which items are still available, so that bound
//     still covers every completion. The branch is skipped when the bound no
//     longer beats the incumbent or the item does not fit.
//  4. A positive tolerance lowers every bound by that fraction. Pruning then
//     becomes more aggressive and the result is reported as not optimal.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes, O(n) per node for the bound.
//   - Memory: O(n) recursion depth + O(n) selection + O(n/64) mask words.

package knapsack

import (
	"github.com/bits-and-blooms/bitset"
)

// bbEngine holds the search environment of one SolveBB call. It is created
// per call and owned by the recursion; nothing in it is shared.
type bbEngine struct {
	// Configuration
	items     []Item // density order
	capacity  int64
	tolerance float64

	// Current path
	discard *bitset.BitSet // positions in items excluded on the current path
	current []int          // partial selection, by original Index
	weight  int64
	value   int64

	// Incumbent
	bestValue     int64
	bestSelection []int

	stats Stats
}

// newBBEngine prepares an engine over items already in density order.
func newBBEngine(sorted []Item, capacity int64, tolerance float64) *bbEngine {
	return &bbEngine{
		items:         sorted,
		capacity:      capacity,
		tolerance:     tolerance,
		discard:       bitset.New(uint(len(sorted))),
		current:       emptySelection(len(sorted)),
		bestSelection: emptySelection(len(sorted)),
	}
}

// bound evaluates GreedyBound under the current discard mask.
func (e *bbEngine) bound() int64 {
	return GreedyBound(e.items, e.discard, e.tolerance, e.capacity)
}

// record commits the current path as the new incumbent.
func (e *bbEngine) record() {
	e.bestValue = e.value
	copy(e.bestSelection, e.current)
}

// search branches on item i. prevEst is the bound under which the caller
// reached this point; it stays valid for the take branch.
func (e *bbEngine) search(i int, prevEst int64) {
	e.stats.Nodes++
	if i == len(e.items) {
		return
	}
	it := e.items[i]

	// Discard branch.
	e.discard.Set(uint(i))
	if est := e.bound(); est > e.bestValue {
		e.search(i+1, est)
	} else {
		e.stats.Pruned++
	}
	e.discard.Clear(uint(i))

	// Take branch.
	if prevEst <= e.bestValue {
		e.stats.Pruned++

		return
	}
	if it.Weight > e.capacity-e.weight {
		return // does not fit
	}

	e.current[it.Index] = 1
	e.weight += it.Weight
	e.value += it.Value
	if e.value > e.bestValue {
		e.record()
	}

	e.search(i+1, prevEst)

	e.current[it.Index] = 0
	e.weight -= it.Weight
	e.value -= it.Value
}

// SolveBB returns the best selection found by branch-and-bound.
//
// Contracts:
//   - tolerance ∈ [0, 1). tolerance == 0 gives an exact answer and
//     Result.Optimal == true; any positive tolerance gives Optimal == false.
//   - With tolerance t the value is at least ⌊(1−t)·OPT⌋: a subtree is only
//     pruned when ⌊(1−t)·bound⌋ ≤ incumbent and bound ≥ its optimum.
//
// Errors: validation sentinels from types.go (ErrBadTolerance for t ∉ [0,1)).
func SolveBB(items []Item, tolerance float64, capacity int64) (Result, error) {
	if err := validateInstance(items, capacity); err != nil {
		return Result{}, err
	}
	if err := validateTolerance(tolerance); err != nil {
		return Result{}, err
	}

	sorted := ByDensityDesc(items)
	e := newBBEngine(sorted, capacity, tolerance)

	// Root bound with nothing discarded.
	e.search(0, e.bound())

	res := Result{
		Value:     e.bestValue,
		Optimal:   tolerance == 0,
		Selection: e.bestSelection,
		Stats:     e.stats,
	}
	logResult(BranchAndBound, len(items), capacity, res)

	return res, nil
}
