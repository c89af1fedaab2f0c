// Package instance is the binding layer between external data and the
// knapsack solvers.
//
// An instance file carries a capacity, an optional branch-and-bound
// tolerance and a list of (originalIndex, value, weight) tuples:
//
//	capacity: 10
//	tolerance: 0
//	items:
//	  - [2, 35, 3]
//	  - [0, 45, 5]
//	  - [1, 48, 8]
//
// JSON uses the same field names. Load picks the codec from the file
// extension (.json, .yaml, .yml) and transparently decompresses a trailing
// .zst suffix (e.g. "big.json.zst").
//
// Results travel back as Report values: (value, optimality flag 0|1,
// selection aligned to original indices) plus solver statistics.
package instance
