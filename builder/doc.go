// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// Package builder provides deterministic constructors for binary tree
// fixtures: the reference sample tree, level-order decoding, binary search
// trees, perfect trees, degenerate chains and seeded random BSTs.
//
// What
//
//   - Sample()              → the 7-node reference tree used across lvtree docs.
//   - FromLevelOrder(slots) → decode a level-order slice with nil holes.
//   - BST(vals...)          → plain (unbalanced) binary search tree insertion.
//   - Complete(depth)       → perfect tree whose values are 1-based heap indices.
//   - Chain(n)              → degenerate tree, one child per node.
//   - RandomBST(n)          → BST over a seeded permutation of 1..n.
//
// Options
//
//   - WithSeed(seed)      → reproducible RNG for RandomBST.
//   - WithRand(r)         → explicit RNG (panics on nil).
//   - WithValueFn(fn)     → map positional index → stored value (panics on nil).
//   - WithRightLeaning()  → Chain grows to the right instead of the left.
//
// Errors
//
//   - ErrBadSize        for negative sizes or depths beyond MaxCompleteDepth.
//   - ErrNeedRandSource for RandomBST without WithSeed/WithRand.
//
// Determinism
//
//	Every constructor is a pure function of its arguments and options; the
//	only randomness comes from the RNG supplied through options.
package builder
