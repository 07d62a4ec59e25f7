// SPDX-License-Identifier: MIT
package stochrank_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stochrank"
)

// ExampleRun ranks a fully damped graph, where every node is equally important.
func ExampleRun() {
	cfg := stochrank.DefaultRunConfig()
	cfg.Nodes = 4
	cfg.Damping = 1

	rep, err := stochrank.Run(context.Background(), cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, nd := range rep.Ranked {
		fmt.Printf("%d %.2f\n", nd.ID, nd.Rank)
	}
	fmt.Println(rep.Converged, rep.Iterations)
	// Output:
	// 0 0.25
	// 1 0.25
	// 2 0.25
	// 3 0.25
	// true 1
}
