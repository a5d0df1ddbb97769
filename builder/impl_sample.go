// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_sample.go — the reference 7-node fixture.

package builder

import "github.com/katalvlaran/lvtree/core"

// Sample returns a fresh copy of the reference tree:
//
//	        0
//	      /   \
//	    11     12
//	    /
//	  21
//	 /  \
//	31   32
//	  \
//	   42
//
// It has 7 nodes, depth 5, and is not balanced: at the root the left subtree
// has height 4 and the right subtree height 1.
func Sample() *core.Node[int] {
	root := core.NewNode(0)
	root.Left = core.NewNode(11)
	root.Right = core.NewNode(12)
	root.Left.Left = core.NewNode(21)
	root.Left.Left.Left = core.NewNode(31)
	root.Left.Left.Right = core.NewNode(32)
	root.Left.Left.Left.Right = core.NewNode(42)

	return root
}
