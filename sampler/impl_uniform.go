// SPDX-License-Identifier: MIT

package sampler

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// unit is U[0,1) bound to src.
func unit(src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}
}

// UniformSampler implements strategy Uniform: raw U[0,1) draws divided by their sum.
type UniformSampler struct {
	dist distuv.Uniform
}

// NewUniform binds a UniformSampler to src.
func NewUniform(src rand.Source) *UniformSampler {
	return &UniformSampler{dist: unit(src)}
}

// Sample draws n values and normalizes them.
// Complexity: O(n).
func (s *UniformSampler) Sample(n int) ([]float64, error) {
	if out, done, err := checkCount(n); done {
		return out, err
	}
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = s.dist.Rand()
	}
	if err := normalize(draws); err != nil {
		return nil, err
	}

	return draws, nil
}

// ExponentialSampler implements strategy Exponential: -ln(u) of U[0,1) draws,
// normalized. A draw of exactly 0 maps to +Inf and surfaces as
// ErrDegenerateDistribution.
type ExponentialSampler struct {
	dist distuv.Uniform
}

// NewExponential binds an ExponentialSampler to src.
func NewExponential(src rand.Source) *ExponentialSampler {
	return &ExponentialSampler{dist: unit(src)}
}

// Sample draws n values, transforms each by -ln, and normalizes.
// Complexity: O(n).
func (s *ExponentialSampler) Sample(n int) ([]float64, error) {
	if out, done, err := checkCount(n); done {
		return out, err
	}
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = -math.Log(s.dist.Rand())
	}
	if err := normalize(draws); err != nil {
		return nil, err
	}

	return draws, nil
}
