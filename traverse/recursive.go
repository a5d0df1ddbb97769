package traverse

import (
	"iter"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/lvtree/core"
)

// PreOrder returns the values of the tree root-first: node, then left
// subtree, then right subtree.
func PreOrder[T any](root *core.Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrder(root, yield)
	}
}

// InOrder returns the values of the tree left subtree first, then node,
// then right subtree. For a binary search tree this is ascending order.
func InOrder[T any](root *core.Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(root, yield)
	}
}

// PostOrder returns the values of the tree root-last: left subtree, right
// subtree, then node.
func PostOrder[T any](root *core.Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrder(root, yield)
	}
}

// LevelOrder returns the values of the tree breadth-first. A FIFO queue is
// seeded with the root; each dequeued node is yielded, then its non-nil left
// child and non-nil right child are enqueued, until the queue drains. Every
// layer is therefore finished before the next starts, left to right.
func LevelOrder[T any](root *core.Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}
		q := linkedlistqueue.New()
		q.Enqueue(root)
		for !q.Empty() {
			v, _ := q.Dequeue()
			n := v.(*core.Node[T])
			if !yield(n.Value) {
				return
			}
			if n.Left != nil {
				q.Enqueue(n.Left)
			}
			if n.Right != nil {
				q.Enqueue(n.Right)
			}
		}
	}
}

// The recursive helpers return false once yield asked to stop, which
// unwinds the whole recursion without visiting further nodes.

func preOrder[T any](n *core.Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return yield(n.Value) && preOrder(n.Left, yield) && preOrder(n.Right, yield)
}

func inOrder[T any](n *core.Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.Left, yield) && yield(n.Value) && inOrder(n.Right, yield)
}

func postOrder[T any](n *core.Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return postOrder(n.Left, yield) && postOrder(n.Right, yield) && yield(n.Value)
}
