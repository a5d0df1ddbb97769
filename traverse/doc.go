// Package traverse walks a binary tree in the four classical orders and
// exposes every walk as a Go iterator, so results can be ranged over,
// collected with slices.Collect, or stopped early with break.
//
// What
//
//   - PreOrder(root)   → node, left subtree, right subtree (root first).
//   - InOrder(root)    → left subtree, node, right subtree.
//   - PostOrder(root)  → left subtree, right subtree, node (root last).
//   - LevelOrder(root) → layer by layer, left to right within a layer.
//   - Walk(root, order, opts...) → any of the above with an explicit stack,
//     yielding (layer, value) pairs, optionally restricted to a layer band.
//
// Sequences
//
//	Each function returns an iter.Seq that visits every node exactly once per
//	range loop. Ranging over the same sequence again restarts the walk from
//	the root and observes the tree as it is at that moment. The empty tree
//	yields nothing.
//
// Recursion vs. explicit stack
//
//	PreOrder, InOrder and PostOrder recurse, so their goroutine stack grows
//	with the height of the tree. LevelOrder uses a FIFO queue seeded with the
//	root. Walk keeps its own stack or queue on the heap and is the choice for
//	degenerate or untrusted trees.
//
// Options (Walk only)
//
//   - WithMinLayer(k): yield only nodes on layer ≥ k (k ≥ 0, 0 = no bound).
//   - WithMaxLayer(k): do not descend below layer k (k ≥ 0, 0 = no bound).
//
// Errors
//
//   - ErrOptionViolation if a layer bound is negative or min > max.
//   - ErrUnknownOrder    if order is not one of Pre, In, Post, Level.
//
// Complexity (n = nodes, h = height, w = max width)
//
//   - Time:   O(n) per full walk.
//   - Memory: O(h) for depth-first orders, O(w) for level order.
//
// Concurrency
//
//	Walks read child pointers lazily; core.Mirror or any other mutation of
//	the same tree while a walk is in progress is a data race.
package traverse
