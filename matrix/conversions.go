// SPDX-License-Identifier: MIT

// Package matrix - bridges to gonum.org/v1/gonum/mat.
//
// The ranking kernels stay on *Dense; these converters let callers hand a
// transition matrix to gonum for decompositions (e.g. an eigenvector
// cross-check of the stationary distribution) and bring results back.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (gonum forbids empty matrices).
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}

	var i, j int
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if buf[i*c+j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense, enforcing the
// default numeric policy (NaN/Inf rejected).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = res.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}
