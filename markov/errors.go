// SPDX-License-Identifier: MIT

package markov

import "errors"

var (
	// ErrEmptyCorpus indicates the training text yields no transition.
	ErrEmptyCorpus = errors.New("markov: corpus too short to yield any transition")

	// ErrInvalidOrder indicates a character-chain order below 1.
	ErrInvalidOrder = errors.New("markov: order must be >= 1")

	// ErrSeedTooShort indicates a generation seed shorter than the chain order.
	ErrSeedTooShort = errors.New("markov: seed shorter than chain order")

	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("markov: nil random source")
)
