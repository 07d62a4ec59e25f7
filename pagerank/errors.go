// SPDX-License-Identifier: MIT
// Package pagerank: sentinel errors.
//
// ErrNotConverged is RECOVERABLE: Solve returns it together with a non-nil
// *Result holding the best-effort ranks. All other errors are fatal to the call.

package pagerank

import "errors"

var (
	// ErrInvalidDimension indicates an empty node set (n == 0).
	ErrInvalidDimension = errors.New("pagerank: node count must be > 0")

	// ErrNotConverged indicates the iteration cap was reached before the
	// convergence test passed. The accompanying Result is still usable.
	ErrNotConverged = errors.New("pagerank: did not converge within max iterations")

	// ErrNonFiniteRank indicates a NaN or ±Inf rank appeared during iteration.
	ErrNonFiniteRank = errors.New("pagerank: non-finite rank")
)
