// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distmv"
)

// DirichletSampler implements strategy Dirichlet using gonum's symmetric
// Dirichlet(α) distribution. The distribution object is cached per dimension.
type DirichletSampler struct {
	src   rand.Source
	alpha float64
	dist  *distmv.Dirichlet
}

// DefaultDirichletAlpha is the concentration used by NewDirichlet.
// α=1 is the flat distribution over the simplex.
const DefaultDirichletAlpha = 1.0

// NewDirichlet binds a DirichletSampler (α = DefaultDirichletAlpha) to src.
func NewDirichlet(src rand.Source) *DirichletSampler {
	return &DirichletSampler{src: src, alpha: DefaultDirichletAlpha}
}

// Sample draws one point of the (n-1)-simplex.
// Complexity: O(n) per call; O(n) once per new n to rebuild the distribution.
func (s *DirichletSampler) Sample(n int) ([]float64, error) {
	if out, done, err := checkCount(n); done {
		return out, err
	}
	if s.dist == nil || s.dist.Dim() != n {
		alpha := make([]float64, n)
		for i := range alpha {
			alpha[i] = s.alpha
		}
		s.dist = distmv.NewDirichlet(alpha, s.src)
	}

	out := s.dist.Rand(nil)
	// gonum normalizes internally without guarding the sum.
	if floats.HasNaN(out) {
		return nil, fmt.Errorf("dirichlet n=%d: %w", n, ErrDegenerateDistribution)
	}

	return out, nil
}
