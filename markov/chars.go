// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultOrder is the n-gram length of a CharChain when none is configured.
const DefaultOrder = 3

// CharChain is an order-k character-level Markov chain: every window of k
// runes maps to the runes that followed it in the training text.
//
// A CharChain is not safe for concurrent use.
type CharChain struct {
	order int
	next  map[string][]rune
	keys  []string
	rng   *rand.Rand
}

// NewCharChain returns an empty order-k chain drawing from src.
//
// Errors: ErrInvalidOrder (k < 1), ErrNilSource.
func NewCharChain(order int, src rand.Source) (*CharChain, error) {
	if order < 1 {
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	if src == nil {
		return nil, ErrNilSource
	}

	return &CharChain{order: order, next: make(map[string][]rune), rng: rand.New(src)}, nil
}

// Order returns k.
func (c *CharChain) Order() int { return c.order }

// Len returns the number of distinct k-rune windows seen in training.
func (c *CharChain) Len() int { return len(c.next) }

// Train records, for every k-rune window of text, the rune that follows it.
//
// Errors: ErrEmptyCorpus when text has no more than k runes.
func (c *CharChain) Train(text string) error {
	runes := []rune(text)
	if len(runes) <= c.order {
		return fmt.Errorf("%d runes for order %d: %w", len(runes), c.order, ErrEmptyCorpus)
	}
	for i := 0; i+c.order < len(runes); i++ {
		key := string(runes[i : i+c.order])
		c.next[key] = append(c.next[key], runes[i+c.order])
	}
	c.keys = nil

	return nil
}

// RandomStart picks a uniformly random known window (sorted candidates).
func (c *CharChain) RandomStart() (string, bool) {
	if len(c.next) == 0 {
		return "", false
	}
	if c.keys == nil {
		c.keys = sortedKeys(c.next)
	}

	return c.keys[c.rng.IntN(len(c.keys))], true
}

// Generate extends seed rune by rune until the text holds length runes or the
// current window (the last k runes) is unknown. The seed is included in the
// output and counts toward length; a seed already at or beyond length is
// returned unchanged.
//
// Errors: ErrSeedTooShort when seed has fewer than k runes.
func (c *CharChain) Generate(seed string, length int) (string, error) {
	out := []rune(seed)
	if len(out) < c.order {
		return "", fmt.Errorf("seed %q: %w", seed, ErrSeedTooShort)
	}

	var b strings.Builder
	b.WriteString(seed)
	for len(out) < length {
		succ := c.next[string(out[len(out)-c.order:])]
		if len(succ) == 0 {
			break
		}
		r := succ[c.rng.IntN(len(succ))]
		out = append(out, r)
		b.WriteRune(r)
	}

	return b.String(), nil
}
