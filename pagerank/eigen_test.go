// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stochrank/matrix"
	"github.com/katalvlaran/stochrank/pagerank"
)

// TestSolve_MatchesDominantEigenvector cross-checks power iteration against
// gonum's dense eigendecomposition: the stationary vector is the right
// eigenvector of Mᵀ for eigenvalue 1, scaled to unit sum.
func TestSolve_MatchesDominantEigenvector(t *testing.T) {
	const n = 25
	m := mustBuild(t, n, 2718)

	res, err := pagerank.Solve(context.Background(), m, mustNodes(t, n), pagerank.WithThreshold(1e-13))
	require.NoError(t, err)

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	var eig mat.Eigen
	require.True(t, eig.Factorize(g.T(), mat.EigenRight))

	vals := eig.Values(nil)
	best := 0
	for i, v := range vals {
		if real(v) > real(vals[best]) {
			best = i
		}
	}
	assert.InDelta(t, 1.0, real(vals[best]), 1e-9)

	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	want := make([]float64, n)
	var sum float64
	for i := range want {
		c := vecs.At(i, best)
		assert.InDelta(t, 0, imag(c), 1e-9)
		want[i] = real(c)
		sum += want[i]
	}
	for i := range want {
		want[i] /= sum
	}

	got := pagerank.Ranks(res.Nodes)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "node %d", i)
	}
}
