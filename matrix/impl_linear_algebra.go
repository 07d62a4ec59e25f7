// SPDX-License-Identifier: MIT

// Package matrix - linear-algebra kernels used by the ranking pipeline.
//
// Purpose:
//   - Transpose: materialize Aᵀ once so column reads become row reads.
//   - MatVec / MatVecRange: y = A·x, optionally restricted to a row range so
//     disjoint ranges can be computed by independent goroutines.
//   - Scale: element-wise αA into a fresh matrix.
//
// Determinism:
//   - Fixed i→j loop orders; each y(i) is accumulated left to right from an
//     explicitly zeroed accumulator, so results are bitwise reproducible
//     regardless of how rows are partitioned.
//
// AI-Hints:
//   - Every kernel has a *Dense fast path over the flat buffer and an interface
//     fallback via At/Set; tests compare both (see hide{} in test helpers).
package matrix

import "fmt"

// ZeroSum is the explicit starting value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation tags used by matrixErrorf.
const (
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opMatVecRange = "MatVecRange"
	opScale       = "Scale"
	opRowSums     = "RowSums"
	opColSums     = "ColSums"
	opNormalizeL1 = "NormalizeRowsL1"
	opAllClose    = "AllClose"
)

// matrixErrorf prefixes err with an operation tag, preserving the sentinel via %w.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped.
// MAIN DESCRIPTION:
//   - res(j,i) = m(i,j) for all i,j.
//
// Implementation:
//   - Stage 1: validate non-nil; allocate cols×rows Dense.
//   - Stage 2: *Dense fast path copies data[i*cols+j] → res.data[j*rows+i].
//   - Stage 3: fallback uses At/Set.
//
// Errors:
//   - ErrNilMatrix; errors surfaced by At/Set in the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x into a freshly allocated vector.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c) time, O(r) space.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := MatVecRange(m, x, y, 0, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// MatVecRange computes y(i) = Σ_j m(i,j)·x(j) for i in the half-open range [lo, hi).
// MAIN DESCRIPTION:
//   - Range-restricted matrix-vector product writing into a caller-owned y.
//
// Implementation:
//   - Stage 1: validate m, len(x)==Cols, len(y)==Rows, 0 ≤ lo ≤ hi ≤ Rows.
//   - Stage 2: for each i in range, zero the accumulator, sum left to right, store y(i).
//
// Behavior highlights:
//   - Reads only x and m; writes only y[lo:hi]. Disjoint ranges may run concurrently
//     against the same x and y.
//   - y(i) outside [lo,hi) is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadRange.
//
// Complexity:
//   - Time O((hi-lo)*c), Space O(1).
func MatVecRange(m Matrix, x, y []float64, lo, hi int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecRange, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return matrixErrorf(opMatVecRange, fmt.Errorf("x: %w", err))
	}
	if err := ValidateVecLen(y, rows); err != nil {
		return matrixErrorf(opMatVecRange, fmt.Errorf("y: %w", err))
	}
	if lo < 0 || hi < lo || hi > rows {
		return matrixErrorf(opMatVecRange, fmt.Errorf("[%d,%d) of %d rows: %w", lo, hi, rows, ErrBadRange))
	}

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var row []float64
		for i = lo; i < hi; i++ {
			acc = ZeroSum
			row = d.data[i*cols : (i+1)*cols]
			for j = 0; j < cols; j++ {
				acc += row[j] * x[j]
			}
			y[i] = acc
		}

		return nil
	}

	var mv float64
	var err error
	for i = lo; i < hi; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return matrixErrorf(opMatVecRange, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return nil
}

// Scale returns alpha*m as a new *Dense; m is not modified.
//
// Errors: ErrNilMatrix; ErrNaNInf if a product overflows and the policy is on.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err = res.Apply(func(_, _ int, v float64) float64 { return v * alpha }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// toDense returns an independent *Dense copy of m (Clone fast path for *Dense).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}
