// SPDX-License-Identifier: MIT

package markov

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
)

// WordChain is a first-order word-level Markov chain.
//
// Training splits text on whitespace, keeps only letters of each token,
// lowercases it and drops tokens that become empty. Every pair of consecutive
// tokens adds one successor entry; duplicates are kept, so a successor's
// multiplicity is its transition weight.
//
// A WordChain is not safe for concurrent use.
type WordChain struct {
	next map[string][]string
	keys []string // sorted, nil when stale
	rng  *rand.Rand
}

// NewWordChain returns an empty chain drawing from src.
func NewWordChain(src rand.Source) (*WordChain, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return &WordChain{next: make(map[string][]string), rng: rand.New(src)}, nil
}

// Train adds the transitions found in r. Calls accumulate; no transition is
// recorded across the boundary of two calls.
//
// Errors: ErrEmptyCorpus when r holds fewer than two usable words; read errors.
func (c *WordChain) Train(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	var prev string
	pairs := 0
	for sc.Scan() {
		w := cleanWord(sc.Text())
		if w == "" {
			continue
		}
		if prev != "" {
			c.next[prev] = append(c.next[prev], w)
			pairs++
		}
		prev = w
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("markov: read corpus: %w", err)
	}
	if pairs == 0 {
		return ErrEmptyCorpus
	}
	c.keys = nil

	return nil
}

func cleanWord(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// Len returns the number of distinct words that have at least one successor.
func (c *WordChain) Len() int { return len(c.next) }

// Successors returns a copy of the successor list of word (nil if unknown).
func (c *WordChain) Successors(word string) []string {
	return slices.Clone(c.next[word])
}

// RandomStart picks a uniformly random word among those with successors.
// Candidates are taken in sorted order so the choice depends only on the source.
func (c *WordChain) RandomStart() (string, bool) {
	if len(c.next) == 0 {
		return "", false
	}
	if c.keys == nil {
		c.keys = sortedKeys(c.next)
	}

	return c.keys[c.rng.IntN(len(c.keys))], true
}

// Generate walks the chain from start, returning at most length words
// (start included). The walk stops early at a word without successors.
func (c *WordChain) Generate(start string, length int) []string {
	if length <= 0 {
		return []string{}
	}
	out := make([]string, 0, length)
	cur := start
	out = append(out, cur)
	for len(out) < length {
		succ := c.next[cur]
		if len(succ) == 0 {
			break
		}
		cur = succ[c.rng.IntN(len(succ))]
		out = append(out, cur)
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
