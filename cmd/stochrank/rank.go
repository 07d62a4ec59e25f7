// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/stochrank"
	"github.com/katalvlaran/stochrank/internal/config"
	"github.com/katalvlaran/stochrank/internal/metrics"
	"github.com/katalvlaran/stochrank/pagerank"
	"github.com/katalvlaran/stochrank/ranking"
)

type rankFlags struct {
	common      commonFlags
	nodes       int
	damping     float64
	threshold   float64
	maxIter     int
	seed        uint64
	strategy    string
	workers     int
	top         int
	precision   int
	metricsFile string
}

func (f *rankFlags) register(fs *flag.FlagSet) {
	d := config.DefaultConfig().Rank
	f.common.register(fs)
	fs.IntVar(&f.nodes, "n", d.Nodes, "number of nodes")
	fs.Float64Var(&f.damping, "damping", d.Damping, "teleportation probability in [0,1]")
	fs.Float64Var(&f.threshold, "threshold", d.Threshold, "absolute convergence threshold")
	fs.IntVar(&f.maxIter, "max-iter", d.MaxIterations, "maximum number of sweeps")
	fs.Uint64Var(&f.seed, "seed", d.Seed, "root seed (0 selects the default seed)")
	fs.StringVar(&f.strategy, "strategy", d.Strategy, "row sampler: uniform, exponential, dirichlet")
	fs.IntVar(&f.workers, "workers", d.Workers, "goroutines for row sampling and sweeps")
	fs.IntVar(&f.top, "top", d.Top, "number of ranked nodes to print")
	fs.IntVar(&f.precision, "precision", d.Precision, "decimal places of printed ranks")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
}

// apply overlays explicitly set flags on cfg.
func (f *rankFlags) apply(set map[string]bool) func(*config.Config) {
	return func(cfg *config.Config) {
		r := &cfg.Rank
		if set["n"] {
			r.Nodes = f.nodes
		}
		if set["damping"] {
			r.Damping = f.damping
		}
		if set["threshold"] {
			r.Threshold = f.threshold
		}
		if set["max-iter"] {
			r.MaxIterations = f.maxIter
		}
		if set["seed"] {
			r.Seed = f.seed
		}
		if set["strategy"] {
			r.Strategy = f.strategy
		}
		if set["workers"] {
			r.Workers = f.workers
		}
		if set["top"] {
			r.Top = f.top
		}
		if set["precision"] {
			r.Precision = f.precision
		}
		if set["metrics-file"] {
			cfg.Metrics.TextfilePath = f.metricsFile
		}
	}
}

func runRank(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f rankFlags
	f.register(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, logger, code := setup("rank", fs, f.common, stderr, f.apply(setFlags(fs)))
	if code != exitOK {
		return code
	}
	defer func() { _ = logger.Sync() }()

	strategy, err := cfg.StrategyValue()
	if err != nil {
		fmt.Fprintf(stderr, "stochrank rank: %v\n", err)
		return exitUsage
	}

	collector := metrics.NewCollector(metrics.DefaultNamespace)
	runCfg := stochrank.RunConfig{
		Nodes:         cfg.Rank.Nodes,
		Damping:       cfg.Rank.Damping,
		Threshold:     cfg.Rank.Threshold,
		MaxIterations: cfg.Rank.MaxIterations,
		Seed:          cfg.Rank.Seed,
		Strategy:      strategy,
		Workers:       cfg.Rank.Workers,
		Logger:        logger,
		Observer:      collector,
	}

	rep, runErr := stochrank.Run(ctx, runCfg)
	if runErr != nil && !errors.Is(runErr, pagerank.ErrNotConverged) {
		logger.Error("rank failed", zap.Error(runErr))
		return exitFailure
	}

	if err = ranking.Render(stdout, rep.Ranked, cfg.Rank.Top, cfg.Rank.Precision); err != nil {
		logger.Error("render failed", zap.Error(err))
		return exitFailure
	}

	if path := cfg.Metrics.TextfilePath; path != "" {
		if err = collector.WriteTextfile(path); err != nil {
			logger.Error("write metrics", zap.String("path", path), zap.Error(err))
			return exitFailure
		}
		logger.Debug("metrics written", zap.String("path", path))
	}

	if runErr != nil {
		logger.Warn("printed best-effort ranking", zap.Error(runErr))
		return exitNotConverged
	}

	return exitOK
}
