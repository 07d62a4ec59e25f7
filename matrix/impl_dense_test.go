// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochrank/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			m.Do(func(i, j int, v float64) bool {
				assert.Zero(t, v, "cell (%d,%d)", i, j)
				return true
			})
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 0.25))
	assert.Equal(t, 0.25, MustAt(t, m, 1, 0))
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err := matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	lax, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, lax, 0, 0)))
}

func TestNewDenseFromRows_DoesNotAlias(t *testing.T) {
	src := [][]float64{{1, 2}}
	m := MustRows(t, src)
	src[0][0] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_RowSetRow(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.SetRow(1, []float64{0.2, 0.3, 0.5}))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.3, 0.5}, row)

	row[0] = 7 // copy, not a view
	assert.Equal(t, 0.2, MustAt(t, m, 1, 0))

	assert.ErrorIs(t, m.SetRow(2, []float64{1, 2, 3}), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, m.SetRow(0, []float64{1, math.Inf(1), 0}), matrix.ErrNaNInf)
	// A rejected row leaves the matrix untouched.
	assert.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_ApplyAndString(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	assert.Equal(t, "[2, 4]\n[6, 8]\n", m.String())

	err := m.Apply(func(_, _ int, v float64) float64 { return math.Inf(1) })
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_DoEarlyStop(t *testing.T) {
	m := MustDense(t, 3, 3)
	visits := 0
	m.Do(func(_, _ int, _ float64) bool {
		visits++
		return visits < 4
	})
	assert.Equal(t, 4, visits)
}
