// SPDX-License-Identifier: MIT

// Package matrix - public facades over the statistics kernels.
// Each facade is a thin, documented entry point; the kernels live in impl_*.go.
package matrix

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewUniform returns the n×n matrix with every entry equal to 1/n
// (the maximally uninformative row-stochastic matrix).
func NewUniform(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	v := 1 / float64(n)
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// RowSums returns the per-row totals of m.
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// ColSums returns the per-column totals of m.
func ColSums(m Matrix) ([]float64, error) { return colSums(m) }

// NormalizeRowsL1 returns a copy of X with every non-zero row scaled to unit L1 norm,
// plus the original row norms.
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) { return normalizeRowsL1(X) }

// AllClose reports element-wise closeness within atol + rtol*|b|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return allClose(a, b, rtol, atol) }
