// File: validate.go
// Role: Opt-in precondition check for tree-shaped input.

package core

import "fmt"

// Validate checks that the structure rooted at root is a proper tree: every
// node is reachable exactly once from root. A cycle or a subtree attached
// to two parents yields an error wrapping ErrCycle. The empty tree is valid.
//
// None of the lvtree algorithms call Validate; use it at trust boundaries
// where trees are assembled from untrusted input.
//
// Complexity: O(n) time, O(n) memory. Uses an explicit stack, so
// degenerate trees do not grow the goroutine stack.
func Validate[T any](root *Node[T]) error {
	if root == nil {
		return nil
	}

	// 1. Seed the stack with the root and remember it as seen.
	seen := map[*Node[T]]struct{}{root: {}}
	stack := []*Node[T]{root}

	// 2. Depth-first sweep; any second arrival at a node is a violation.
	var n *Node[T]
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range [2]*Node[T]{n.Left, n.Right} {
			if child == nil {
				continue
			}
			if _, dup := seen[child]; dup {
				return fmt.Errorf("%w: node %p (after %d distinct nodes)", ErrCycle, child, len(seen))
			}
			seen[child] = struct{}{}
			stack = append(stack, child)
		}
	}

	return nil
}
