// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stochrank/matrix"
)

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	assert.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
}

func TestValidateFiniteVec(t *testing.T) {
	assert.NoError(t, matrix.ValidateFiniteVec([]float64{0, 1, -2}))
	assert.ErrorIs(t, matrix.ValidateFiniteVec([]float64{0, math.NaN()}), matrix.ErrNaNInf)
}

func TestValidateRowStochastic(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"uniform", mustUniform(t, 4), nil},
		{"identity", mustIdentity(t, 3), nil},
		{"short row", MustRows(t, [][]float64{{0.5, 0.4}, {0, 1}}), matrix.ErrNotRowStochastic},
		{"negative", MustRows(t, [][]float64{{1.5, -0.5}, {0, 1}}), matrix.ErrNegativeEntry},
		{"non-square", MustDense(t, 1, 2), matrix.ErrNonSquare},
		{"fallback path", hide{mustUniform(t, 2)}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRowStochastic(tc.m)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateRowStochastic_Epsilon(t *testing.T) {
	m := MustRows(t, [][]float64{{0.5, 0.5 + 1e-7}, {0, 1}})
	assert.ErrorIs(t, matrix.ValidateRowStochastic(m), matrix.ErrNotRowStochastic)
	assert.NoError(t, matrix.ValidateRowStochastic(m, matrix.WithEpsilon(1e-6)))
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
}

func mustUniform(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewUniform(n)
	assert.NoError(t, err)
	return m
}

func mustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	assert.NoError(t, err)
	return m
}
