package shape

import "github.com/katalvlaran/lvtree/core"

// IsBalanced reports whether the tree rooted at root satisfies the AVL
// property at every node, together with the height of the tree.
//
// The empty tree is balanced with height 0. For a node, the height is
// 1 + max(height(left), height(right)), and the node is balanced iff both
// subtrees are balanced and |height(left) - height(right)| <= 1.
//
// Both subtrees are always visited, so height is exact even for
// unbalanced trees.
//
// Complexity: O(n) time, O(h) stack.
func IsBalanced[T any](root *core.Node[T]) (bool, int) {
	if root == nil {
		return true, 0
	}

	// 1. Post-order: both children first, unconditionally.
	leftOK, leftH := IsBalanced(root.Left)
	rightOK, rightH := IsBalanced(root.Right)

	// 2. Combine.
	height := 1 + max(leftH, rightH)
	diff := leftH - rightH
	if diff < 0 {
		diff = -diff
	}

	return leftOK && rightOK && diff <= 1, height
}
