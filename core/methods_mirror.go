// File: methods_mirror.go
// Role: In-place structural mirroring.
// Concurrency:
//   - Mirror rewrites child pointers; callers must not read the same tree
//     from another goroutine while it runs.

package core

// Mirror swaps the Left and Right subtrees of every node of the tree,
// in place. No node is created or released. An empty tree is left as is.
//
// The swap happens before the recursion, so the children are visited under
// their post-swap labels. Mirror is an involution: calling it twice restores
// the original shape.
//
// Complexity: O(n) time, O(h) stack.
func Mirror[T any](root *Node[T]) {
	if root == nil {
		return
	}
	root.Left, root.Right = root.Right, root.Left
	Mirror(root.Left)
	Mirror(root.Right)
}
