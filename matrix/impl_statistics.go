// SPDX-License-Identifier: MIT

// Package matrix - row/column statistics and normalization kernels.
//
// Purpose:
//   - rowSums / colSums: marginal totals (row sums check stochasticity).
//   - normalizeRowsL1: rescale each row to unit L1 norm (probability rows).
//   - allClose: element-wise |a-b| <= atol + rtol*|b| comparison.
//
// Contract:
//   - Inputs are never mutated; results are fresh allocations.
//   - Degenerate rows (L1 norm == 0) are left unchanged and reported via norms.
package matrix

import (
	"fmt"
	"math"
)

// rowSums returns Σ_j m(i,j) for each row i.
// Complexity: O(r*c) time, O(r) space.
func rowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out[i] += d.data[i*c+j]
			}
		}

		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// colSums returns Σ_i m(i,j) for each column j.
// Complexity: O(r*c) time, O(c) space.
func colSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, c)

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// normalizeRowsL1 scales every row to unit L1 norm.
// MAIN DESCRIPTION:
//   - Y(i,:) = X(i,:) / ||X(i,:)||₁ for rows with a positive norm.
//
// Implementation:
//   - Stage 1: validate; copy X into a fresh *Dense.
//   - Stage 2: compute |·| sums per row.
//   - Stage 3: divide rows with positive norm; keep zero rows unchanged.
//
// Returns:
//   - Y: normalized copy; norms: the original L1 norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func normalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeL1, err)
	}
	Y, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeL1, err)
	}

	r, c := Y.r, Y.c
	norms := make([]float64, r)
	var i, j, base int
	var s float64
	for i = 0; i < r; i++ {
		s = 0
		base = i * c
		for j = 0; j < c; j++ {
			s += math.Abs(Y.data[base+j])
		}
		norms[i] = s
		if s > 0 {
			for j = 0; j < c; j++ {
				Y.data[base+j] /= s
			}
		}
	}

	return Y, norms, nil
}

// allClose reports whether |a(i,j) - b(i,j)| <= atol + rtol*|b(i,j)| everywhere.
// NaN never compares close.
func allClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
