// SPDX-License-Identifier: MIT
package sampler_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stochrank/sampler"
)

var allStrategies = []sampler.Strategy{sampler.Uniform, sampler.Exponential, sampler.Dirichlet}

// zeroSource always yields 0, so every U[0,1) draw is exactly 0.
type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }

func mustSampler(t *testing.T, s sampler.Strategy, seed uint64) sampler.Sampler {
	t.Helper()
	smp, err := sampler.New(s, sampler.NewSource(seed))
	require.NoError(t, err)

	return smp
}

func TestSample_SumsToOne(t *testing.T) {
	for _, s := range allStrategies {
		for _, n := range []int{1, 2, 17, 500} {
			t.Run(fmt.Sprintf("%v/n=%d", s, n), func(t *testing.T) {
				out, err := mustSampler(t, s, 42).Sample(n)
				require.NoError(t, err)
				require.Len(t, out, n)
				assert.InDelta(t, 1.0, floats.Sum(out), 1e-9)
				for i, v := range out {
					assert.GreaterOrEqual(t, v, 0.0, "entry %d", i)
				}
			})
		}
	}
}

func TestSample_ZeroAndNegative(t *testing.T) {
	for _, s := range allStrategies {
		smp := mustSampler(t, s, 7)

		out, err := smp.Sample(0)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)

		_, err = smp.Sample(-1)
		assert.ErrorIs(t, err, sampler.ErrNegativeCount)
	}
}

func TestSample_SingleIsOne(t *testing.T) {
	for _, s := range allStrategies {
		out, err := mustSampler(t, s, 3).Sample(1)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, out[0], 1e-12)
	}
}

func TestSample_DegenerateDraws(t *testing.T) {
	_, err := sampler.NewUniform(zeroSource{}).Sample(4)
	assert.ErrorIs(t, err, sampler.ErrDegenerateDistribution)

	_, err = sampler.NewExponential(zeroSource{}).Sample(4)
	assert.ErrorIs(t, err, sampler.ErrDegenerateDistribution)
}

func TestSample_Deterministic(t *testing.T) {
	for _, s := range allStrategies {
		a, err := mustSampler(t, s, 99).Sample(32)
		require.NoError(t, err)
		b, err := mustSampler(t, s, 99).Sample(32)
		require.NoError(t, err)
		assert.Equal(t, a, b, "%v", s)

		c, err := mustSampler(t, s, 100).Sample(32)
		require.NoError(t, err)
		assert.NotEqual(t, a, c, "%v", s)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := sampler.New(sampler.Uniform, nil)
	assert.ErrorIs(t, err, sampler.ErrNilSource)

	_, err = sampler.New(sampler.Strategy(42), sampler.NewSource(1))
	assert.ErrorIs(t, err, sampler.ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range allStrategies {
		got, err := sampler.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := sampler.ParseStrategy(" Exponential ")
	require.NoError(t, err)
	assert.Equal(t, sampler.Exponential, got)

	_, err = sampler.ParseStrategy("gaussian")
	assert.ErrorIs(t, err, sampler.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", sampler.Strategy(9).String())
}
