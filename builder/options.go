// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil arguments; constructors never panic.
//   • Later options override earlier ones.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating its builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides how a positional index becomes a node value.
// Complete passes the 1-based heap index, Chain the 1-based position from
// the root, RandomBST each drawn key. Panics on nil.
func WithValueFn(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithRightLeaning makes Chain attach every node as a right child.
func WithRightLeaning() BuilderOption {
	return func(c *builderConfig) {
		c.rightward = true
	}
}
