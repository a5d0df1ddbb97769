// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_bst.go — plain binary search tree insertion.
//
// Contract:
//   • Values are inserted in argument order, without rebalancing.
//   • Smaller values go left; equal or greater values go right, so an
//     in-order walk yields the values sorted and stable.
//   • Insertion is iterative; sorted input (a degenerate chain) is fine.

package builder

import (
	"cmp"

	"github.com/katalvlaran/lvtree/core"
)

// BST inserts vals, in order, into an initially empty binary search tree
// and returns its root. No values yields the empty tree.
//
// Complexity: O(n·h) time, where h is the height of the resulting tree.
func BST[T cmp.Ordered](vals ...T) *core.Node[T] {
	var root *core.Node[T]
	for _, v := range vals {
		root = insertBST(root, v)
	}

	return root
}

// insertBST places v below root and returns the (possibly new) root.
func insertBST[T cmp.Ordered](root *core.Node[T], v T) *core.Node[T] {
	leaf := core.NewNode(v)
	if root == nil {
		return leaf
	}
	cur := root
	for {
		if cmp.Less(v, cur.Value) {
			if cur.Left == nil {
				cur.Left = leaf
				return root
			}
			cur = cur.Left
			continue
		}
		if cur.Right == nil {
			cur.Right = leaf
			return root
		}
		cur = cur.Right
	}
}
