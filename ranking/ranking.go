// SPDX-License-Identifier: MIT

// Package ranking orders solved nodes and renders the leaderboard.
//
// Ordering is total and deterministic: rank descending, ties broken by
// ascending node ID. NaN or ±Inf ranks are rejected before sorting
// (ErrNonFiniteRank), so no comparison ever involves a NaN.
package ranking

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/stochrank/matrix"
	"github.com/katalvlaran/stochrank/pagerank"
)

// Presentation defaults.
const (
	// DefaultTop is the leaderboard length used by the CLI.
	DefaultTop = 20

	// DefaultPrecision is the number of decimal places printed for a rank.
	DefaultPrecision = 10
)

// ErrNonFiniteRank is returned when a node carries a NaN or ±Inf rank.
// It also matches matrix.ErrNaNInf.
var ErrNonFiniteRank = fmt.Errorf("ranking: non-finite rank: %w", matrix.ErrNaNInf)

// ErrNegativePrecision is returned by Render for precision < 0.
var ErrNegativePrecision = errors.New("ranking: negative precision")

// Rank returns a sorted copy of nodes: rank descending, then ID ascending.
// The input slice is not modified.
//
// Errors: ErrNonFiniteRank (wrapped with the offending node ID).
// Complexity: O(n log n).
func Rank(nodes []pagerank.Node) ([]pagerank.Node, error) {
	for _, nd := range nodes {
		if math.IsNaN(nd.Rank) || math.IsInf(nd.Rank, 0) {
			return nil, fmt.Errorf("node %d: %w", nd.ID, ErrNonFiniteRank)
		}
	}

	out := slices.Clone(nodes)
	slices.SortFunc(out, compare)

	return out, nil
}

func compare(a, b pagerank.Node) int {
	if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}

// Top returns the first k entries of ranked (all of them when k >= len).
// k <= 0 yields an empty slice. The result aliases ranked.
func Top(ranked []pagerank.Node, k int) []pagerank.Node {
	if k <= 0 {
		return ranked[:0]
	}

	return ranked[:min(k, len(ranked))]
}

// FormatRank renders r with exactly precision decimal places.
func FormatRank(r float64, precision int) string {
	return strconv.FormatFloat(r, 'f', precision, 64)
}

// Render writes the first k entries of ranked, one per line:
//
//	Id: <id>, Rank: "<rank>"
//
// ranked is expected to come from Rank; Render does not re-sort.
func Render(w io.Writer, ranked []pagerank.Node, k, precision int) error {
	if precision < 0 {
		return fmt.Errorf("precision %d: %w", precision, ErrNegativePrecision)
	}
	for _, nd := range Top(ranked, k) {
		if _, err := fmt.Fprintf(w, "Id: %d, Rank: %q\n", nd.ID, FormatRank(nd.Rank, precision)); err != nil {
			return err
		}
	}

	return nil
}
