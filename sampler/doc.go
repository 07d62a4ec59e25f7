// SPDX-License-Identifier: MIT

// Package sampler generates random probability vectors: n non-negative values
// summing to 1. Each vector becomes one row of a synthetic transition matrix.
//
// Three strategies are available:
//
//   - Uniform: n draws from U[0,1), divided by their sum.
//   - Exponential: n draws transformed by -ln(u), then normalized; this is a
//     uniform sample of the probability simplex.
//   - Dirichlet: gonum's stat/distmv Dirichlet with α=1 (same law as Exponential).
//
// Entropy is always injected by the caller as a math/rand/v2 Source. NewSource
// and DeriveSource implement the seeding policy: seed 0 selects DefaultSeed,
// and DeriveSource(seed, k) yields an independent stream per row or worker.
//
// Samplers are not safe for concurrent use; give each goroutine its own.
package sampler
