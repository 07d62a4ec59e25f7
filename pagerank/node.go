// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"

	"github.com/katalvlaran/stochrank/matrix"
)

// Node is one ranked entity: a stable 0-based ID and its current rank.
// IDs are assigned once by NewNodes and never change; Rank is written only
// by the solver.
type Node struct {
	ID   uint64
	Rank float64
}

// NewNodes returns n nodes with IDs 0..n-1 and Rank 1/n.
//
// Errors: ErrInvalidDimension (also matrix.ErrInvalidDimensions) for n <= 0.
func NewNodes(n int) ([]Node, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewNodes(%d): %w: %w", n, ErrInvalidDimension, matrix.ErrInvalidDimensions)
	}
	nodes := make([]Node, n)
	r := 1 / float64(n)
	for i := range nodes {
		nodes[i] = Node{ID: uint64(i), Rank: r}
	}

	return nodes, nil
}

// Ranks extracts the rank vector in node order.
func Ranks(nodes []Node) []float64 {
	out := make([]float64, len(nodes))
	for i, nd := range nodes {
		out[i] = nd.Rank
	}

	return out
}

// withRanks returns a copy of nodes whose ranks are replaced by r.
func withRanks(nodes []Node, r []float64) []Node {
	out := make([]Node, len(nodes))
	for i, nd := range nodes {
		out[i] = Node{ID: nd.ID, Rank: r[i]}
	}

	return out
}
