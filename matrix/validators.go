// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/stochasticity checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element-wise checks run O(r*c) with a *Dense fast path.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen checks that a vector is non-nil and has exactly n entries.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil || len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec returns ErrNaNInf (tagged with the index) if any entry is NaN or ±Inf.
// Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateRowStochastic verifies that m is a square, finite, non-negative
// matrix whose rows each sum to 1 within eps (WithEpsilon, DefaultEpsilon).
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan rows in order; first violation wins (NaN/Inf → negative → sum).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeEntry, ErrNotRowStochastic.
// Complexity: O(n²), no allocations on the *Dense path.
func ValidateRowStochastic(m Matrix, opts ...Option) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateSquare(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	n := m.Cols()
	var i, j int
	var v, sum float64
	var err error
	d, fast := m.(*Dense)
	for i = 0; i < m.Rows(); i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if fast {
				v = d.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), ErrNegativeEntry)
			}
			sum += v
		}
		if math.Abs(sum-1) > o.eps {
			return validatorErrorf(fmt.Sprintf("%s: row %d sums to %g", tag, i, sum), ErrNotRowStochastic)
		}
	}

	return nil
}
