// SPDX-License-Identifier: MIT
package stochrank

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/stochrank/pagerank"
	"github.com/katalvlaran/stochrank/ranking"
	"github.com/katalvlaran/stochrank/sampler"
	"github.com/katalvlaran/stochrank/transition"
)

// ErrInvalidRunConfig reports a RunConfig field outside its domain.
var ErrInvalidRunConfig = errors.New("stochrank: invalid run config")

// Observer receives pipeline progress. internal/metrics.Collector implements it.
type Observer interface {
	pagerank.Observer
	ObserveBuild(n int, elapsed time.Duration)
}

// RunConfig parameterizes Run. Start from DefaultRunConfig; the zero value
// is not valid.
type RunConfig struct {
	Nodes         int
	Damping       float64
	Threshold     float64
	MaxIterations int
	Seed          uint64
	Strategy      sampler.Strategy
	Workers       int

	// Logger and Observer are optional.
	Logger   *zap.Logger
	Observer Observer
}

// DefaultRunConfig returns the reference parameters for n = 5000 nodes.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Nodes:         5000,
		Damping:       transition.DefaultDamping,
		Threshold:     pagerank.DefaultThreshold,
		MaxIterations: pagerank.DefaultMaxIterations,
		Strategy:      sampler.DefaultStrategy,
		Workers:       1,
	}
}

// Validate reports the first field outside its domain.
func (c RunConfig) Validate() error {
	switch {
	case c.Nodes < 1:
		return fmt.Errorf("%w: nodes=%d: %w", ErrInvalidRunConfig, c.Nodes, transition.ErrInvalidDimension)
	case math.IsNaN(c.Damping) || c.Damping < 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping=%g: %w", ErrInvalidRunConfig, c.Damping, transition.ErrInvalidDamping)
	case !(c.Threshold > 0) || math.IsInf(c.Threshold, 0):
		return fmt.Errorf("%w: threshold=%g must be finite and > 0", ErrInvalidRunConfig, c.Threshold)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations=%d must be >= 1", ErrInvalidRunConfig, c.MaxIterations)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers=%d must be >= 1", ErrInvalidRunConfig, c.Workers)
	}
	if _, err := sampler.FactoryFor(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRunConfig, err)
	}

	return nil
}

// Report is the outcome of Run.
type Report struct {
	// Ranked holds every node ordered by rank descending, ties by ID ascending.
	Ranked     []pagerank.Node
	Iterations int
	Converged  bool
	MaxDelta   float64

	BuildTime time.Duration
	SolveTime time.Duration
	RankTime  time.Duration
}

// Run builds the transition matrix, solves for the stationary ranks and
// orders the nodes.
//
// When the solver hits its iteration cap Run still ranks the best-effort
// vector and returns the *Report together with pagerank.ErrNotConverged.
// Any other error yields a nil *Report.
func Run(ctx context.Context, cfg RunConfig) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	nodes, err := pagerank.NewNodes(cfg.Nodes)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := transition.Build(ctx, cfg.Nodes,
		transition.WithDamping(cfg.Damping),
		transition.WithSeed(cfg.Seed),
		transition.WithStrategy(cfg.Strategy),
		transition.WithWorkers(cfg.Workers),
		transition.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build transition matrix: %w", err)
	}
	rep := &Report{BuildTime: time.Since(start)}
	if cfg.Observer != nil {
		cfg.Observer.ObserveBuild(cfg.Nodes, rep.BuildTime)
	}

	solveOpts := []pagerank.Option{
		pagerank.WithThreshold(cfg.Threshold),
		pagerank.WithMaxIterations(cfg.MaxIterations),
		pagerank.WithWorkers(cfg.Workers),
		pagerank.WithLogger(logger),
	}
	if cfg.Observer != nil {
		solveOpts = append(solveOpts, pagerank.WithObserver(cfg.Observer))
	}

	start = time.Now()
	res, solveErr := pagerank.Solve(ctx, m, nodes, solveOpts...)
	if solveErr != nil && !errors.Is(solveErr, pagerank.ErrNotConverged) {
		return nil, fmt.Errorf("solve: %w", solveErr)
	}
	rep.SolveTime = time.Since(start)
	rep.Iterations = res.Iterations
	rep.Converged = res.Converged
	rep.MaxDelta = res.MaxDelta

	start = time.Now()
	rep.Ranked, err = ranking.Rank(res.Nodes)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	rep.RankTime = time.Since(start)

	logger.Info("run finished",
		zap.Int("nodes", cfg.Nodes),
		zap.Int("iterations", rep.Iterations),
		zap.Bool("converged", rep.Converged),
		zap.Duration("build", rep.BuildTime),
		zap.Duration("solve", rep.SolveTime),
	)

	return rep, solveErr
}
