package shape

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/lvtree/core"
)

// LayerCounts returns the width of every layer of the tree, root first:
// element i holds CountAtLayer(root, i+1). The slice has exactly Depth(root)
// elements and is empty (non-nil) for the empty tree.
//
// A single breadth-first sweep is used: the queue is drained one layer at a
// time, the number of nodes present when a layer starts being its width.
//
// Complexity: O(n) time, O(max width) memory.
func LayerCounts[T any](root *core.Node[T]) []int {
	widths := []int{}
	if root == nil {
		return widths
	}

	q := linkedlistqueue.New()
	q.Enqueue(root)
	for !q.Empty() {
		// 1. Everything queued right now belongs to the same layer.
		width := q.Size()
		widths = append(widths, width)

		// 2. Replace that layer by the next one, left before right.
		for i := 0; i < width; i++ {
			v, _ := q.Dequeue()
			n := v.(*core.Node[T])
			if n.Left != nil {
				q.Enqueue(n.Left)
			}
			if n.Right != nil {
				q.Enqueue(n.Right)
			}
		}
	}

	return widths
}
