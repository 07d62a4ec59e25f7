// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stochrank/pagerank"
	"github.com/katalvlaran/stochrank/transition"
)

// ExampleSolve ranks a three-node chain where node 0 and node 2 both link
// only to node 1, and node 1 splits evenly between them.
func ExampleSolve() {
	raw, _ := transition.FromRows([][]float64{
		{0, 1, 0},
		{0.5, 0, 0.5},
		{0, 1, 0},
	})
	m, _ := transition.Damp(raw, transition.DefaultDamping)
	nodes, _ := pagerank.NewNodes(3)

	res, err := pagerank.Solve(context.Background(), m, nodes)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, nd := range res.Nodes {
		fmt.Printf("%d %.4f\n", nd.ID, nd.Rank)
	}
	fmt.Println(res.Converged)
	// Output:
	// 0 0.2568
	// 1 0.4865
	// 2 0.2568
	// true
}
