// SPDX-License-Identifier: MIT

// Package markov generates text from Markov chains trained on a corpus.
//
// WordChain is a first-order chain over normalized words (letters only,
// lowercase). CharChain is an order-k chain over runes; the default order is 3.
// Both choose successors uniformly from the recorded list, so frequent
// transitions are proportionally more likely.
//
// Randomness is injected as a math/rand/v2 Source; with a fixed seed the
// generated text is reproducible.
package markov
