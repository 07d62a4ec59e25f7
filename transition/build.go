// SPDX-License-Identifier: MIT
// Package: stochrank/transition
//
// build.go: synthesis of damped, row-stochastic transition matrices.
//
// Pipeline:
//   1. Rows:    row i = Sampler.Sample(n) drawn from sampler.DeriveSource(seed, i).
//   2. Damping: M(i,j) ← M(i,j)·(1−a) + a/n for every cell.
//
// Invariants (tested):
//   • every row of the result sums to 1 within matrix.DefaultEpsilon;
//   • every entry lies in [a/n, (1−a) + a/n];
//   • the result is independent of WithWorkers.

package transition

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stochrank/matrix"
	"github.com/katalvlaran/stochrank/sampler"
)

const (
	opBuild    = "Build"
	opDamp     = "Damp"
	opFromRows = "FromRows"
	opValidate = "ValidateStochastic"
)

// Build synthesizes an n×n damped transition matrix.
// MAIN DESCRIPTION:
//   - One Sample(n) call per row, assigned as that row; then the damping transform.
//
// Implementation:
//   - Stage 1: validate n; resolve options and the sampler factory.
//   - Stage 2: fan rows out over an errgroup bounded by WithWorkers; each row
//     gets a private sampler on its own derived stream and writes only its own row.
//   - Stage 3: apply damping in place.
//
// Errors:
//   - ErrInvalidDimension (also matrix.ErrInvalidDimensions) for n <= 0.
//   - Sampler errors (e.g. sampler.ErrDegenerateDistribution) wrapped with the row index.
//   - matrix.ErrDimensionMismatch if a custom sampler returns a wrong-length row.
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the matrix plus O(workers·n) transient rows.
func Build(ctx context.Context, n int, opts ...Option) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(n=%d): %w: %w", opBuild, n, ErrInvalidDimension, matrix.ErrInvalidDimensions)
	}
	cfg := newBuildConfig(opts...)
	factory, err := cfg.samplerFactory()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			smp := factory(sampler.DeriveSource(cfg.seed, uint64(i)))
			vals, err := smp.Sample(n)
			if err != nil {
				return fmt.Errorf("%s: row %d: %w", opBuild, i, err)
			}

			return m.SetRow(i, vals)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	if err = dampInPlace(m, cfg.damping); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	cfg.logger.Debug("transition matrix built",
		zap.Int("n", n),
		zap.Float64("damping", cfg.damping),
		zap.Stringer("strategy", cfg.strategy),
		zap.Int("workers", cfg.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return m, nil
}

// Damp returns a fresh matrix with M'(i,j) = M(i,j)·(1−a) + a/n; m is untouched.
// Row sums are preserved and every entry becomes at least a/n.
//
// Errors: ErrInvalidDamping, matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func Damp(m matrix.Matrix, a float64) (*matrix.Dense, error) {
	if !validDamping(a) {
		return nil, fmt.Errorf("%s(%g): %w", opDamp, a, ErrInvalidDamping)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opDamp, err)
	}
	out, err := matrix.Scale(m, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDamp, err)
	}
	if err = dampInPlace(out, a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDamp, err)
	}

	return out, nil
}

func dampInPlace(m *matrix.Dense, a float64) error {
	teleport := a / float64(m.Rows())
	keep := 1 - a

	return m.Apply(func(_, _ int, v float64) float64 { return v*keep + teleport })
}

// FromRows builds a transition matrix from hand-specified rows and checks it
// is row-stochastic. No damping is applied; pass the result to Damp if needed.
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch,
// matrix.ErrNaNInf, matrix.ErrNonSquare, matrix.ErrNegativeEntry, ErrNotStochastic.
func FromRows(rows [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromRows, err)
	}
	if err = ValidateStochastic(m, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromRows, err)
	}

	return m, nil
}

// ValidateStochastic reports whether m is square, finite, non-negative and
// every row sums to 1 within tol. tol must be finite and non-negative
// (matrix.WithEpsilon panics otherwise).
func ValidateStochastic(m matrix.Matrix, tol float64) error {
	if err := matrix.ValidateRowStochastic(m, matrix.WithEpsilon(tol)); err != nil {
		return fmt.Errorf("%s: %w", opValidate, err)
	}

	return nil
}
