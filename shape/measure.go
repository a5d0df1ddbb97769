package shape

import "github.com/katalvlaran/lvtree/core"

// Count returns the number of nodes in the tree; 0 for the empty tree.
//
// Complexity: O(n) time, O(h) stack.
func Count[T any](root *core.Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + Count(root.Left) + Count(root.Right)
}

// Depth returns the number of nodes on the longest path from root down to
// a leaf; 0 for the empty tree.
//
// Complexity: O(n) time, O(h) stack.
func Depth[T any](root *core.Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + max(Depth(root.Left), Depth(root.Right))
}

// CountAtLayer returns how many nodes sit on the given 1-indexed layer.
// The root alone forms layer 1. A layer below 1, or a layer deeper than the
// tree, yields 0.
//
// The recursion descends exactly layer-1 levels; subtrees that end earlier
// contribute nothing.
//
// Complexity: O(min(n, 2^layer)) time, O(layer) stack.
func CountAtLayer[T any](root *core.Node[T], layer int) int {
	if root == nil || layer < 1 {
		return 0
	}
	if layer == 1 {
		return 1
	}

	return CountAtLayer(root.Left, layer-1) + CountAtLayer(root.Right, layer-1)
}

// Diameter returns the greatest distance, counted in edges, between any two
// nodes of the tree. The empty tree and a single node both have diameter 0.
//
// The longest path either stays inside one subtree or bends at the root,
// joining the deepest node of each side.
//
// Complexity: O(n) time, O(h) stack.
func Diameter[T any](root *core.Node[T]) int {
	d, _ := diameter(root)
	return d
}

// diameter returns the diameter and the depth of the subtree in one pass.
func diameter[T any](n *core.Node[T]) (diam, depth int) {
	if n == nil {
		return 0, 0
	}
	ld, lh := diameter(n.Left)
	rd, rh := diameter(n.Right)

	return max(ld, rd, lh+rh), 1 + max(lh, rh)
}
