// SPDX-License-Identifier: MIT
// Package: stochrank/transition
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • buildConfig is the single source of truth for all Build knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuildConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • damping  = DefaultDamping (0.15)
//   • seed     = 0 → sampler.DefaultSeed
//   • strategy = sampler.DefaultStrategy (uniform)
//   • workers  = 1 (sequential)
//   • logger   = zap.NewNop()
//
// AI-Hints:
//   • Row i always draws from sampler.DeriveSource(seed, i), so the matrix is
//     identical for any WithWorkers value.

package transition

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/stochrank/sampler"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultDamping is the teleportation probability a in M' = M(1-a) + a/n.
	DefaultDamping = 0.15

	// DefaultWorkers runs row synthesis sequentially.
	DefaultWorkers = 1
)

// buildConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type buildConfig struct {
	damping  float64
	seed     uint64
	strategy sampler.Strategy
	factory  sampler.Factory // overrides strategy when non-nil
	workers  int
	logger   *zap.Logger
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order; last-wins semantics.
// Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		damping:  DefaultDamping,
		strategy: sampler.DefaultStrategy,
		workers:  DefaultWorkers,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// samplerFactory resolves the effective factory (explicit override first).
func (c buildConfig) samplerFactory() (sampler.Factory, error) {
	if c.factory != nil {
		return c.factory, nil
	}

	return sampler.FactoryFor(c.strategy)
}
