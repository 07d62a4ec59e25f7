// SPDX-License-Identifier: MIT
// Package sampler: sentinel errors.
// Callers MUST match with errors.Is; messages are prefixed "sampler: ...".

package sampler

import "errors"

var (
	// ErrNegativeCount is returned when Sample is asked for n < 0 values.
	ErrNegativeCount = errors.New("sampler: negative sample count")

	// ErrDegenerateDistribution is returned when the raw draws cannot be
	// normalized: their sum is zero, NaN or ±Inf.
	ErrDegenerateDistribution = errors.New("sampler: degenerate distribution (zero or non-finite sum)")

	// ErrUnknownStrategy is returned by ParseStrategy / New for an unsupported strategy.
	ErrUnknownStrategy = errors.New("sampler: unknown strategy")

	// ErrNilSource is returned by New when no entropy source is supplied.
	ErrNilSource = errors.New("sampler: nil random source")
)
