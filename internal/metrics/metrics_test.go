// SPDX-License-Identifier: MIT
package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochrank/internal/metrics"
)

func TestCollector_Observe(t *testing.T) {
	c := metrics.NewCollector(metrics.DefaultNamespace)

	c.ObserveSweep(1, 0.5)
	c.ObserveSweep(2, 0.01)
	c.ObserveSolve(2, true, 3*time.Millisecond)
	c.ObserveSolve(9, false, time.Millisecond)
	c.ObserveBuild(64, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Sweeps))
	assert.Equal(t, 0.01, testutil.ToFloat64(c.MaxDelta))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Runs.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Runs.WithLabelValues("false")))
	assert.Equal(t, 64.0, testutil.ToFloat64(c.Nodes))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Iterations))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a := metrics.NewCollector("x")
	b := metrics.NewCollector("x")
	a.ObserveSweep(1, 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Sweeps))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.NewCollector(metrics.DefaultNamespace)
	c.ObserveSolve(4, true, time.Millisecond)

	path := filepath.Join(t.TempDir(), "stochrank.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `stochrank_solver_runs_total{converged="true"} 1`), out)
	assert.Contains(t, out, "stochrank_solver_iterations_count 1")
}
