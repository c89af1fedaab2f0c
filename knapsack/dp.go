package knapsack

// SolveDP — exact dynamic programming with sparse memoization.
//
// Recurrence over items sorted by weight (heaviest first), with
// O(k, c) = best value using the first k sorted items within capacity c:
//
//	O(k, c) = max( O(k−1, c),                      // skip item k−1
//	               O(k−1, c − w[k−1]) + v[k−1] )   // take item k−1
//
// Algorithm Outline:
//  1. Sort a copy of the items by descending weight. Heavy items come first,
//     so early rows populate few cells: a row for an item of weight w only
//     touches capacities ≥ w, and every capacity below the current weight is
//     still 0 and stays absent from the table.
//  2. Forward pass: for every item that fits at all, for c = w..C compute
//     skip/take, store the maximum under (k, c) only if it is > 0, and
//     remember the last written key as the terminal cell.
//  3. Traceback from the terminal cell: O(k, c) ≠ O(k−1, c) means item k−1
//     was taken (move to (k−1, c−w)); otherwise move to (k−1, c). Stop at k = 0.
//
// Items heavier than the capacity are skipped outright. C is clamped to the
// total weight of the items that fit: no capacity beyond that can change any
// value, and the clamp keeps the table small for generous capacities.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(populated cells) ≤ O(n·C)

// cell is a composite (prefix-count, capacity) key of the sparse table.
type cell struct {
	k int
	c int64
}

// sparseTable maps cells to strictly positive values; absent cells are 0.
type sparseTable map[cell]int64

// at returns the stored value, defaulting to 0.
func (t sparseTable) at(k int, c int64) int64 {
	return t[cell{k: k, c: c}]
}

// maxTableHint caps the initial map allocation.
const maxTableHint = 1 << 16

// SolveDP returns an optimal selection for (items, capacity).
// Result.Optimal is always true.
//
// Errors: validation sentinels from types.go only. Empty items, zero
// capacity and all-oversized items return value 0 and an all-zero selection.
func SolveDP(items []Item, capacity int64) (Result, error) {
	if err := validateInstance(items, capacity); err != nil {
		return Result{}, err
	}

	sorted := ByWeightDesc(items)
	limit := dpCapacity(sorted, capacity)

	var (
		table    = make(sparseTable, tableHint(len(sorted), limit))
		terminal cell // last written key; (0,0) when nothing fits
		it       Item
		k        int
		c        int64
		skip     int64
		take     int64
	)
	for k = 0; k < len(sorted); k++ {
		it = sorted[k]
		if it.Weight > limit {
			continue // cannot contribute at any capacity
		}
		// Capacities below it.Weight hold 0 in row k (all earlier items are at
		// least as heavy), so the row starts at it.Weight.
		for c = it.Weight; c <= limit; c++ {
			skip = table.at(k, c)
			take = table.at(k, c-it.Weight) + it.Value

			terminal = cell{k: k + 1, c: c}
			if take > skip {
				skip = take
			}
			if skip > 0 {
				table[terminal] = skip
			}
		}
	}

	value, selection := traceback(table, sorted, terminal)
	res := Result{
		Value:     value,
		Optimal:   true,
		Selection: selection,
		Stats:     Stats{Cells: len(table)},
	}
	logResult(DynamicProgramming, len(items), capacity, res)

	return res, nil
}

// traceback walks the table from the terminal cell back to prefix 0 and
// rebuilds the selection in original Index order.
func traceback(table sparseTable, sorted []Item, from cell) (int64, []int) {
	var (
		selection = emptySelection(len(sorted))
		value     int64
		k         = from.k
		c         = from.c
		it        Item
	)
	for k > 0 {
		if table.at(k, c) != table.at(k-1, c) {
			it = sorted[k-1]
			selection[it.Index] = 1
			value += it.Value
			c -= it.Weight
		}
		k--
	}

	return value, selection
}

// dpCapacity clamps capacity to Σ weights of the items that fit.
func dpCapacity(sorted []Item, capacity int64) int64 {
	var total int64
	for _, it := range sorted {
		if it.Weight <= capacity {
			total += it.Weight // Σ weights validated to fit in int64
		}
	}
	if total < capacity {
		return total
	}

	return capacity
}

// tableHint estimates the initial map size: half the dense table, capped.
func tableHint(n int, limit int64) int {
	if n == 0 || limit == 0 {
		return 0
	}
	if limit >= maxTableHint || int64(n)*limit/2 >= maxTableHint {
		return maxTableHint
	}

	return int(int64(n) * limit / 2)
}
