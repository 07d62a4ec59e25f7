// SPDX-License-Identifier: MIT

// Package sampler - RNG utilities shared by every sampling strategy.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms (PCG from math/rand/v2).
//   - Encapsulation: a single source factory; no time-based sources hidden anywhere.
//   - Parallelism without order dependence: DeriveSource(seed, stream) gives every
//     row (or worker) its own independent stream, so output does not depend on
//     how work is scheduled.
//
// Concurrency:
//   - rand.Source is NOT goroutine-safe. Do not share one across goroutines.
package sampler

import "math/rand/v2"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed uint64 = 1

// NewSource returns a deterministic PCG source.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewSource(seed uint64) rand.Source {
	s := normalizeSeed(seed)

	return rand.NewPCG(s, DeriveSeed(s, 0))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 avalanche, so neighbouring stream ids give uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// DeriveSource creates an independent deterministic stream for (seed, stream).
// Seed 0 follows the NewSource policy.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-row or per-worker sources.
//
// Complexity: O(1).
func DeriveSource(seed, stream uint64) rand.Source {
	s := normalizeSeed(seed)
	d := DeriveSeed(s, stream+1) // stream 0 of the parent is reserved by NewSource

	return rand.NewPCG(d, DeriveSeed(d, 0))
}

func normalizeSeed(seed uint64) uint64 {
	if seed == 0 {
		return DefaultSeed
	}

	return seed
}
