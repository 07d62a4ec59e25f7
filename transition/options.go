// SPDX-License-Identifier: MIT
// Package: stochrank/transition
//
// options.go: functional options for Build.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package transition

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/stochrank/sampler"
)

// Option customizes Build by mutating a buildConfig before synthesis begins.
type Option func(*buildConfig)

// WithDamping sets the teleportation probability a ∈ [0, 1].
// a = 0 keeps the sampled matrix; a = 1 yields the uniform matrix.
// Panics on NaN or out-of-range values.
func WithDamping(a float64) Option {
	if !validDamping(a) {
		panic(fmt.Sprintf("transition: WithDamping(%g): must be in [0,1]", a))
	}

	return func(c *buildConfig) { c.damping = a }
}

// WithSeed fixes the root seed for row streams (0 selects sampler.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(c *buildConfig) { c.seed = seed }
}

// WithStrategy picks the row-sampling strategy. Panics on an unknown strategy.
func WithStrategy(s sampler.Strategy) Option {
	if _, err := sampler.FactoryFor(s); err != nil {
		panic(fmt.Sprintf("transition: WithStrategy: %v", err))
	}

	return func(c *buildConfig) { c.strategy = s }
}

// WithSamplerFactory overrides the strategy with a custom per-row Sampler
// constructor. Each row receives its own derived source. Panics on nil.
func WithSamplerFactory(f sampler.Factory) Option {
	if f == nil {
		panic("transition: WithSamplerFactory(nil)")
	}

	return func(c *buildConfig) { c.factory = f }
}

// WithWorkers bounds the number of goroutines sampling rows. Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("transition: WithWorkers(%d): must be >= 1", k))
	}

	return func(c *buildConfig) { c.workers = k }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("transition: WithLogger(nil)")
	}

	return func(c *buildConfig) { c.logger = l }
}

func validDamping(a float64) bool {
	return !math.IsNaN(a) && a >= 0 && a <= 1
}
