// SPDX-License-Identifier: MIT

// Package pagerank - power-iteration solver.
//
// Purpose:
//   - Compute the stationary rank vector of a row-stochastic transition matrix M
//     by repeated application of next = Mᵀ·current.
//
// Algorithm (per sweep):
//   - next is zeroed explicitly;
//   - next(i) = Σ_j M(j,i)·current(j), read from a transpose materialized once;
//   - the sweep converges when |current(i) - next(i)| < threshold for every i,
//     in which case next is the result; otherwise current ← next.
//
// Determinism:
//   - Each next(i) is a left-to-right sum over j, so partitioning destinations
//     across workers never changes the bits of the result.
//
// Complexity:
//   - O(n²) per sweep; O(n²) once for the transpose; O(n) extra vectors.
package pagerank

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stochrank/matrix"
)

const opSolve = "Solve"

// Result is the outcome of Solve.
type Result struct {
	// Nodes carries the caller's IDs with the final ranks, in input order.
	Nodes []Node
	// Iterations is the number of completed sweeps.
	Iterations int
	// Converged reports whether the threshold test passed.
	Converged bool
	// MaxDelta is max_i |current(i) - next(i)| of the last sweep.
	MaxDelta float64
}

// Solve runs power iteration over m starting from the uniform vector 1/n
// (or WithInitialRanks).
// MAIN DESCRIPTION:
//   - Returns the converged rank vector attached to a copy of nodes; the
//     caller's slice and m are never modified.
//
// Implementation:
//   - Stage 1: validate nodes, m (square, n×n) and the initial vector.
//   - Stage 2: transpose m once.
//   - Stage 3: sweep until convergence, the iteration cap or cancellation.
//
// Errors:
//   - ErrInvalidDimension (and matrix.ErrInvalidDimensions) when len(nodes) == 0.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - matrix.ErrNaNInf for a non-finite initial vector.
//   - ErrNonFiniteRank if a sweep produces NaN/Inf.
//   - ErrNotConverged together with a non-nil best-effort *Result.
//   - ctx.Err() on cancellation (checked between sweeps).
func Solve(ctx context.Context, m matrix.Matrix, nodes []Node, opts ...Option) (*Result, error) {
	cfg := newSolverConfig(opts...)

	n := len(nodes)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w: %w", opSolve, ErrInvalidDimension, matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if m.Rows() != n {
		return nil, fmt.Errorf("%s: matrix %dx%d for %d nodes: %w", opSolve, m.Rows(), m.Cols(), n, matrix.ErrDimensionMismatch)
	}

	current := make([]float64, n)
	if cfg.initial != nil {
		if err := matrix.ValidateVecLen(cfg.initial, n); err != nil {
			return nil, fmt.Errorf("%s: initial ranks: %w", opSolve, err)
		}
		if err := matrix.ValidateFiniteVec(cfg.initial); err != nil {
			return nil, fmt.Errorf("%s: initial ranks: %w", opSolve, err)
		}
		copy(current, cfg.initial)
	} else {
		for i := range current {
			current[i] = 1 / float64(n)
		}
	}

	mt, err := matrix.Transpose(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	start := time.Now()
	next := make([]float64, n)
	var maxDelta float64
	for iter := 1; iter <= cfg.maxIter; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: sweep %d: %w", opSolve, iter, err)
		}

		clear(next)
		if err = sweep(mt, current, next, cfg.workers); err != nil {
			return nil, fmt.Errorf("%s: sweep %d: %w", opSolve, iter, err)
		}

		var finite bool
		maxDelta, finite = maxAbsDelta(current, next)
		if !finite {
			cfg.observer.ObserveSolve(iter, false, time.Since(start))
			return nil, fmt.Errorf("%s: sweep %d: %w", opSolve, iter, ErrNonFiniteRank)
		}
		cfg.observer.ObserveSweep(iter, maxDelta)
		cfg.logger.Debug("pagerank sweep", zap.Int("iteration", iter), zap.Float64("max_delta", maxDelta))

		if maxDelta < cfg.threshold {
			elapsed := time.Since(start)
			cfg.observer.ObserveSolve(iter, true, elapsed)
			cfg.logger.Info("pagerank converged",
				zap.Int("n", n),
				zap.Int("iterations", iter),
				zap.Float64("max_delta", maxDelta),
				zap.Duration("elapsed", elapsed),
			)

			return &Result{Nodes: withRanks(nodes, next), Iterations: iter, Converged: true, MaxDelta: maxDelta}, nil
		}
		current, next = next, current
	}

	// current holds the last computed vector after the final swap.
	elapsed := time.Since(start)
	cfg.observer.ObserveSolve(cfg.maxIter, false, elapsed)
	cfg.logger.Warn("pagerank did not converge",
		zap.Int("n", n),
		zap.Int("max_iterations", cfg.maxIter),
		zap.Float64("max_delta", maxDelta),
		zap.Float64("threshold", cfg.threshold),
		zap.Duration("elapsed", elapsed),
	)
	res := &Result{Nodes: withRanks(nodes, current), Iterations: cfg.maxIter, MaxDelta: maxDelta}

	return res, fmt.Errorf("%s: %d sweeps, max delta %g: %w", opSolve, cfg.maxIter, maxDelta, ErrNotConverged)
}

// sweep computes next = mt·current, split into at most workers contiguous
// destination ranges. Every range reads all of current and writes only its
// own slice of next.
func sweep(mt matrix.Matrix, current, next []float64, workers int) error {
	n := len(next)
	if workers <= 1 || n < 2 {
		return matrix.MatVecRange(mt, current, next, 0, n)
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error { return matrix.MatVecRange(mt, current, next, lo, hi) })
	}

	return g.Wait()
}

// maxAbsDelta returns max_i |a(i) - b(i)| and whether every b(i) is finite.
func maxAbsDelta(a, b []float64) (float64, bool) {
	var d, worst float64
	for i := range b {
		if math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return math.NaN(), false
		}
		d = math.Abs(a[i] - b[i])
		if d > worst {
			worst = d
		}
	}

	return worst, true
}
