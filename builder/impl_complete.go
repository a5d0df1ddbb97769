// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_complete.go — perfect binary trees.
//
// Contract:
//   • 0 ≤ depth ≤ MaxCompleteDepth (else ErrBadSize); depth 0 → empty tree.
//   • The node with 1-based heap index i has children 2i and 2i+1; its value
//     is cfg.valueFn(i).
//   • Result has 2^depth − 1 nodes and every layer is full.

package builder

import "github.com/katalvlaran/lvtree/core"

// Complete builds a perfect binary tree with the given depth.
//
// Complexity: O(2^depth) time and memory.
func Complete(depth int, opts ...BuilderOption) (*core.Node[int], error) {
	if depth < 0 || depth > MaxCompleteDepth {
		return nil, builderErrorf(MethodComplete, ErrBadSize, "depth=%d outside [0,%d]", depth, MaxCompleteDepth)
	}
	cfg := newBuilderConfig(opts...)
	last := 1<<depth - 1

	return completeAt(1, last, cfg), nil
}

// completeAt builds the subtree rooted at heap index i.
func completeAt(i, last int, cfg builderConfig) *core.Node[int] {
	if i > last {
		return nil
	}

	return core.NewNodeWith(cfg.valueFn(i), completeAt(2*i, last, cfg), completeAt(2*i+1, last, cfg))
}
