// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_chain.go — degenerate (list-shaped) trees.
//
// Contract:
//   • n ≥ 0 (else ErrBadSize); n == 0 → empty tree.
//   • Position k (1-based, root = 1) holds cfg.valueFn(k).
//   • Every node but the last has exactly one child, on the left by default,
//     on the right with WithRightLeaning.
//   • Built bottom-up without recursion, so n is limited only by memory.

package builder

import "github.com/katalvlaran/lvtree/core"

// Chain builds a degenerate tree of n nodes whose depth equals n.
//
// Complexity: O(n) time and memory.
func Chain(n int, opts ...BuilderOption) (*core.Node[int], error) {
	if n < 0 {
		return nil, builderErrorf(MethodChain, ErrBadSize, "n=%d", n)
	}
	cfg := newBuilderConfig(opts...)

	var below *core.Node[int]
	for k := n; k >= 1; k-- {
		if cfg.rightward {
			below = core.NewNodeWith(cfg.valueFn(k), nil, below)
		} else {
			below = core.NewNodeWith(cfg.valueFn(k), below, nil)
		}
	}

	return below, nil
}
