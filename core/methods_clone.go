// File: methods_clone.go
// Role: Structural copy and comparison of whole trees.
// Determinism:
//   - Both functions recurse left before right.

package core

// Clone returns a deep copy of the tree rooted at root. Every node is
// duplicated; values are copied by assignment, so pointer-like payloads
// are shared between the original and the copy.
//
// Complexity: O(n) time, O(h) stack.
func Clone[T any](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}

	return &Node[T]{
		Value: root.Value,
		Left:  Clone(root.Left),
		Right: Clone(root.Right),
	}
}

// Equal reports whether a and b have the same shape and hold equal values
// in the same left/right arrangement. Two empty trees are equal.
//
// Complexity: O(min(|a|, |b|)) time, O(h) stack.
func Equal[T comparable](a, b *Node[T]) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	case a == b:
		return true
	}

	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
