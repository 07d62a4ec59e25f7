// SPDX-License-Identifier: MIT

// Package pagerank computes stationary importance ranks by power iteration.
//
// Given a row-stochastic transition matrix M over n nodes (see package
// transition), Solve repeats
//
//	next(i) = Σ_j M(j,i)·current(j)
//
// from current = 1/n until every component moves by less than the threshold
// (DefaultThreshold, absolute). The accumulator vector is zeroed at the start
// of every sweep, the transpose of M is materialized once, and the number of
// sweeps is capped (DefaultMaxIterations). Hitting the cap is recoverable:
// Solve returns the best-effort *Result together with ErrNotConverged.
//
// Each sweep may be split across goroutines (WithWorkers). Workers read only
// the previous vector and write disjoint ranges of the next one, so the result
// is bitwise identical to the sequential computation.
//
// Progress is reported through an optional zap logger and an Observer hook
// (used for metrics).
package pagerank
