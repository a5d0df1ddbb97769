// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_level_order.go — decoding of level-order slot slices.
//
// Contract:
//   • slots[0] is the root; a nil root slot yields the empty tree.
//   • Slots are consumed two at a time for every node already placed, in
//     breadth-first order; a nil slot is a missing child.
//   • Holes do not reserve slots for their own children (compact encoding).
//   • Trailing slots that no placed node can adopt are ignored.

package builder

import "github.com/katalvlaran/lvtree/core"

// FromLevelOrder decodes a compact level-order encoding, where nil marks
// an absent child, into a tree. For example
//
//	FromLevelOrder([]*int{Some(1), Some(2), Some(3), nil, Some(4)})
//
// yields 1 with children 2 and 3, and 4 as the right child of 2.
//
// Complexity: O(len(slots)) time and memory.
func FromLevelOrder[T any](slots []*T) *core.Node[T] {
	if len(slots) == 0 || slots[0] == nil {
		return nil
	}

	root := core.NewNode(*slots[0])
	parents := []*core.Node[T]{root}
	next := 1
	var p *core.Node[T]
	for len(parents) > 0 && next < len(slots) {
		p, parents = parents[0], parents[1:]

		// left slot
		if s := slots[next]; s != nil {
			p.Left = core.NewNode(*s)
			parents = append(parents, p.Left)
		}
		next++
		if next >= len(slots) {
			break
		}

		// right slot
		if s := slots[next]; s != nil {
			p.Right = core.NewNode(*s)
			parents = append(parents, p.Right)
		}
		next++
	}

	return root
}

// Some returns a pointer to v; shorthand for filling FromLevelOrder slots.
func Some[T any](v T) *T {
	return &v
}
