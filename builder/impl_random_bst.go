// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_random_bst.go — seeded random binary search trees.
//
// Contract:
//   • n ≥ 0 (else ErrBadSize); n == 0 → empty tree, no RNG needed.
//   • Requires cfg.rng for n > 0 (else ErrNeedRandSource).
//   • Keys 1..n are shuffled with cfg.rng, mapped through cfg.valueFn and
//     inserted with BST semantics.
//   • Same seed and options → same tree.

package builder

import "github.com/katalvlaran/lvtree/core"

// RandomBST builds a binary search tree from a random insertion order of
// the keys 1..n. Expected height is O(log n), worst case n.
//
// Complexity: O(n·h) time, O(n) memory.
func RandomBST(n int, opts ...BuilderOption) (*core.Node[int], error) {
	if n < 0 {
		return nil, builderErrorf(MethodRandomBST, ErrBadSize, "n=%d", n)
	}
	if n == 0 {
		return nil, nil
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomBST, ErrNeedRandSource, "n=%d", n)
	}

	var root *core.Node[int]
	for _, p := range cfg.rng.Perm(n) {
		root = insertBST(root, cfg.valueFn(p+1))
	}

	return root, nil
}
