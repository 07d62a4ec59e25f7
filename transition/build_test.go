// SPDX-License-Identifier: MIT
package transition_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/stochrank/matrix"
	"github.com/katalvlaran/stochrank/sampler"
	"github.com/katalvlaran/stochrank/transition"
)

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestBuild_RowsSumToOne(t *testing.T) {
	strategies := []sampler.Strategy{sampler.Uniform, sampler.Exponential, sampler.Dirichlet}
	for _, s := range strategies {
		for _, n := range []int{1, 2, 10, 64} {
			t.Run(fmt.Sprintf("%v/n=%d", s, n), func(t *testing.T) {
				m, err := transition.Build(context.Background(), n,
					transition.WithStrategy(s), transition.WithSeed(11))
				require.NoError(t, err)

				sums, err := matrix.RowSums(m)
				require.NoError(t, err)
				for i, sum := range sums {
					assert.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
				}
			})
		}
	}
}

func TestBuild_EntryBounds(t *testing.T) {
	const n = 40
	for _, a := range []float64{0, transition.DefaultDamping, 0.5, 1} {
		t.Run(fmt.Sprintf("a=%g", a), func(t *testing.T) {
			m, err := transition.Build(context.Background(), n,
				transition.WithDamping(a), transition.WithSeed(3))
			require.NoError(t, err)

			lo, hi := a/n, (1-a)+a/n
			m.Do(func(i, j int, v float64) bool {
				assert.GreaterOrEqual(t, v, lo-1e-15, "(%d,%d)", i, j)
				assert.LessOrEqual(t, v, hi+1e-15, "(%d,%d)", i, j)
				return true
			})
		})
	}
}

func TestBuild_SingleNode(t *testing.T) {
	m, err := transition.Build(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mustAt(t, m, 0, 0), 1e-15)
}

func TestBuild_InvalidDimension(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := transition.Build(context.Background(), n)
		assert.ErrorIs(t, err, transition.ErrInvalidDimension)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestBuild_WorkerCountDoesNotChangeResult(t *testing.T) {
	ctx := context.Background()
	seq, err := transition.Build(ctx, 50, transition.WithSeed(77), transition.WithStrategy(sampler.Exponential))
	require.NoError(t, err)
	par, err := transition.Build(ctx, 50, transition.WithSeed(77), transition.WithStrategy(sampler.Exponential),
		transition.WithWorkers(8))
	require.NoError(t, err)

	ok, err := matrix.AllClose(seq, par, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_SeedChangesResult(t *testing.T) {
	ctx := context.Background()
	a, err := transition.Build(ctx, 8, transition.WithSeed(1))
	require.NoError(t, err)
	b, err := transition.Build(ctx, 8, transition.WithSeed(2))
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

// failingSampler returns errBoom on every call.
type failingSampler struct{}

var errBoom = errors.New("boom")

func (failingSampler) Sample(int) ([]float64, error) { return nil, errBoom }

// shortSampler returns one value less than requested.
type shortSampler struct{}

func (shortSampler) Sample(n int) ([]float64, error) { return make([]float64, n-1), nil }

func TestBuild_SamplerErrorsPropagate(t *testing.T) {
	_, err := transition.Build(context.Background(), 4,
		transition.WithSamplerFactory(func(rand.Source) sampler.Sampler { return failingSampler{} }),
		transition.WithWorkers(2))
	assert.ErrorIs(t, err, errBoom)

	_, err = transition.Build(context.Background(), 4,
		transition.WithSamplerFactory(func(rand.Source) sampler.Sampler { return shortSampler{} }))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := transition.Build(ctx, 16)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_LogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := transition.Build(context.Background(), 3, transition.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("transition matrix built").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["n"])
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { transition.WithDamping(-0.1) })
	assert.Panics(t, func() { transition.WithDamping(1.5) })
	assert.Panics(t, func() { transition.WithWorkers(0) })
	assert.Panics(t, func() { transition.WithStrategy(sampler.Strategy(99)) })
	assert.Panics(t, func() { transition.WithSamplerFactory(nil) })
	assert.Panics(t, func() { transition.WithLogger(nil) })
}
