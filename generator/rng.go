// Package generator - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical instances across platforms.
//   - A single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to give every worker or batch member its own stream.
package generator

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed,
// e.g. one seed per generated instance of a batch.
//
// SplitMix64 finalizer; small input changes spread over all output bits.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// between draws uniformly from [lo, hi] (lo ≤ hi).
func between(r *rand.Rand, lo, hi int64) int64 {
	if lo == hi {
		return lo
	}

	return lo + r.Int63n(hi-lo+1)
}
