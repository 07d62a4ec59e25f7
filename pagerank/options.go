// SPDX-License-Identifier: MIT

// Package pagerank: functional options for Solve.
// This file defines:
//   - documented defaults (single source of truth),
//   - WithX constructors that PANIC on nonsensical values (programmer error),
//   - newSolverConfig, which folds options over the defaults.
//
// Solve itself never panics on user input; it returns sentinel errors.
package pagerank

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// ---------- Defaults ----------

const (
	// DefaultThreshold is the absolute per-component convergence bound:
	// iteration stops once |current(i) - next(i)| < DefaultThreshold for all i.
	DefaultThreshold = 1e-6

	// DefaultMaxIterations caps the number of sweeps. A damped stochastic
	// matrix contracts by (1-a) per sweep, so realistic inputs finish in well
	// under a hundred sweeps; the cap only guards against pathological input.
	DefaultMaxIterations = 10_000

	// DefaultWorkers evaluates each sweep sequentially.
	DefaultWorkers = 1
)

// Observer receives solver progress. Implementations must be cheap; they are
// called synchronously once per sweep.
type Observer interface {
	// ObserveSweep is called after every sweep with its 1-based index and
	// max_i |current(i) - next(i)|.
	ObserveSweep(iteration int, maxDelta float64)

	// ObserveSolve is called once when Solve finishes iterating.
	ObserveSolve(iterations int, converged bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveSweep(int, float64)             {}
func (nopObserver) ObserveSolve(int, bool, time.Duration) {}

// Option configures Solve.
type Option func(*solverConfig)

type solverConfig struct {
	threshold float64
	maxIter   int
	workers   int
	initial   []float64
	logger    *zap.Logger
	observer  Observer
}

func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		threshold: DefaultThreshold,
		maxIter:   DefaultMaxIterations,
		workers:   DefaultWorkers,
		logger:    zap.NewNop(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithThreshold sets the convergence bound. Panics unless t is finite and > 0.
func WithThreshold(t float64) Option {
	if !(t > 0) || math.IsInf(t, 0) {
		panic(fmt.Sprintf("pagerank: WithThreshold(%g): must be finite and > 0", t))
	}

	return func(c *solverConfig) { c.threshold = t }
}

// WithMaxIterations caps the number of sweeps. Panics when k < 1.
func WithMaxIterations(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("pagerank: WithMaxIterations(%d): must be >= 1", k))
	}

	return func(c *solverConfig) { c.maxIter = k }
}

// WithWorkers splits each sweep's destination indices across k goroutines.
// Results are bitwise identical for every k. Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("pagerank: WithWorkers(%d): must be >= 1", k))
	}

	return func(c *solverConfig) { c.workers = k }
}

// WithInitialRanks starts iteration from r instead of the uniform 1/n vector.
// r is copied; its length is checked by Solve. Panics on nil.
func WithInitialRanks(r []float64) Option {
	if r == nil {
		panic("pagerank: WithInitialRanks(nil)")
	}
	cp := append([]float64(nil), r...)

	return func(c *solverConfig) { c.initial = cp }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pagerank: WithLogger(nil)")
	}

	return func(c *solverConfig) { c.logger = l }
}

// WithObserver attaches a progress observer (e.g. metrics). Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("pagerank: WithObserver(nil)")
	}

	return func(c *solverConfig) { c.observer = o }
}
