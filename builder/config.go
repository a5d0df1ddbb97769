// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil       (no randomness unless seeded)
//   • valueFn   = identity  (value == positional index)
//   • rightward = false     (Chain leans left)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors never mutate it.
type builderConfig struct {
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// Maps a positional index to the value stored in the node.
	valueFn func(int) int
	// Chain direction: false → left children, true → right children.
	rightward bool
}

// newBuilderConfig applies opts, in order, on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		valueFn:   identity,
		rightward: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// identity is the default valueFn.
func identity(i int) int { return i }
