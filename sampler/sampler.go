// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sampler produces one random probability distribution per call.
//
// Contract:
//   - n > 0: n non-negative values summing to 1 (within floating-point epsilon).
//   - n == 0: an empty, non-nil slice and no error.
//   - n < 0: ErrNegativeCount.
//   - A degenerate draw (zero or non-finite sum) yields ErrDegenerateDistribution;
//     implementations never divide by zero.
//
// Implementations are NOT safe for concurrent use.
type Sampler interface {
	Sample(n int) ([]float64, error)
}

// Strategy selects a sampling algorithm.
type Strategy int

const (
	// Uniform draws n values from U[0,1) and divides by their sum.
	// The resulting distribution is concentrated near the centre of the simplex.
	Uniform Strategy = iota

	// Exponential transforms n U[0,1) draws by -ln(u) before normalizing,
	// which samples the simplex uniformly (symmetric Dirichlet, α=1).
	Exponential

	// Dirichlet draws from gonum's Dirichlet distribution with α=1.
	// Same law as Exponential, generated through Gamma variates.
	Dirichlet
)

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = Uniform

var strategyNames = [...]string{
	Uniform:     "uniform",
	Exponential: "exponential",
	Dirichlet:   "dirichlet",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a case-insensitive name ("uniform", "exponential",
// "dirichlet") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Factory builds a Sampler bound to one entropy source.
type Factory func(src rand.Source) Sampler

// FactoryFor returns the constructor for s.
func FactoryFor(s Strategy) (Factory, error) {
	switch s {
	case Uniform:
		return func(src rand.Source) Sampler { return NewUniform(src) }, nil
	case Exponential:
		return func(src rand.Source) Sampler { return NewExponential(src) }, nil
	case Dirichlet:
		return func(src rand.Source) Sampler { return NewDirichlet(src) }, nil
	default:
		return nil, fmt.Errorf("%v: %w", s, ErrUnknownStrategy)
	}
}

// New builds a Sampler of strategy s drawing from src.
func New(s Strategy, src rand.Source) (Sampler, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	f, err := FactoryFor(s)
	if err != nil {
		return nil, err
	}

	return f(src), nil
}

// normalize divides draws by their sum in place.
// A zero, NaN or ±Inf sum is reported as ErrDegenerateDistribution.
func normalize(draws []float64) error {
	sum := floats.Sum(draws)
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fmt.Errorf("sum=%g: %w", sum, ErrDegenerateDistribution)
	}
	floats.Scale(1/sum, draws)

	return nil
}

// checkCount implements the shared n<0 / n==0 part of the Sampler contract.
// done reports that the caller should return out immediately.
func checkCount(n int) (out []float64, done bool, err error) {
	if n < 0 {
		return nil, true, fmt.Errorf("n=%d: %w", n, ErrNegativeCount)
	}
	if n == 0 {
		return []float64{}, true, nil
	}

	return nil, false, nil
}
