// SPDX-License-Identifier: MIT

// Package transition builds the damped, row-stochastic transition matrices
// consumed by the PageRank solver.
//
// Build draws every row from a sampler.Sampler (one call of length n per row,
// each row on its own derived random stream) and then applies the damping
// transform
//
//	M'(i,j) = M(i,j)·(1−a) + a/n
//
// with a = DefaultDamping unless overridden. Damping keeps each row summing to
// 1 and makes every entry at least a/n, so the chain is irreducible and
// aperiodic and power iteration converges.
//
// Damp and FromRows expose the same transform and validation for matrices
// specified by hand.
package transition
