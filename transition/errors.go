// SPDX-License-Identifier: MIT
// Package: stochrank/transition
//
// errors.go: sentinel errors for transition-matrix synthesis.
//
// Contract:
//   • Return sentinels (optionally wrapped with %w); never panic in algorithms.
//   • Callers match with errors.Is.
//   • ErrInvalidDimension is always returned together with
//     matrix.ErrInvalidDimensions so either sentinel matches.

package transition

import (
	"errors"

	"github.com/katalvlaran/stochrank/matrix"
)

var (
	// ErrInvalidDimension indicates a node count n <= 0.
	ErrInvalidDimension = errors.New("transition: node count must be > 0")

	// ErrInvalidDamping indicates a damping factor outside [0, 1] or NaN.
	ErrInvalidDamping = errors.New("transition: damping must be in [0,1]")

	// ErrNotStochastic aliases the matrix sentinel for a row not summing to 1.
	ErrNotStochastic = matrix.ErrNotRowStochastic
)
