// SPDX-License-Identifier: MIT

// Package stochrank ranks the nodes of a synthetic random graph by PageRank.
//
// The pipeline is split across subpackages:
//
//	matrix/     dense row-major matrices, validators and the kernels used below
//	sampler/    random probability vectors (uniform, exponential, Dirichlet)
//	transition/ synthesis of a damped, row-stochastic transition matrix
//	pagerank/   power iteration to the stationary rank vector
//	ranking/    descending order, top-K selection and formatting
//	markov/     word- and character-level Markov text generators
//
// Run wires them together: n nodes with IDs 0..n-1, a transition matrix built
// from seeded samplers, a capped power iteration and a stable ranking.
//
// Quick start:
//
//	cfg := stochrank.DefaultRunConfig()
//	cfg.Nodes = 1000
//	rep, err := stochrank.Run(ctx, cfg)
//	if err != nil && !errors.Is(err, pagerank.ErrNotConverged) {
//		return err
//	}
//	_ = ranking.Render(os.Stdout, rep.Ranked, 20, 10)
//
// The stochrank command (cmd/stochrank) exposes the same pipeline on the
// command line together with the Markov generators.
package stochrank
