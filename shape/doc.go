// Package shape answers structural questions about a binary tree: whether it
// satisfies the AVL balance property, how many nodes it has in total and per
// layer, how deep it is, and how far apart its two most distant nodes are.
//
// What
//
//   - IsBalanced(root)          → (balanced, height) in a single post-order pass.
//   - Count(root)               → number of nodes.
//   - Depth(root)               → number of nodes on the longest root-to-leaf path.
//   - CountAtLayer(root, layer) → number of nodes on a 1-indexed layer.
//   - LayerCounts(root)         → width of every layer, root first.
//   - Diameter(root)            → longest node-to-node distance, in edges.
//
// Conventions
//
//   - The empty tree (nil root) is valid everywhere: height and depth 0,
//     count 0, balanced.
//   - Layers are 1-indexed: the root is layer 1. A layer below 1 or beyond
//     the depth of the tree holds 0 nodes.
//   - Height and depth denote the same quantity. IsBalanced reports it as a
//     by-product; Depth computes it on its own.
//
// Balance semantics
//
//	A tree is balanced when it is empty, or when both of its subtrees are
//	balanced and their heights differ by at most one. IsBalanced always
//	computes both subtree heights, even after an imbalance has been found,
//	so the reported height is exact for every input.
//
// Complexity (n = nodes, h = height)
//
//   - IsBalanced, Count, Depth, Diameter: O(n) time, O(h) stack.
//   - CountAtLayer(root, k):              O(min(n, 2^k)) time, O(k) stack.
//   - LayerCounts:                        O(n) time, O(width) queue.
//
// None of these functions mutate the tree or return errors. They assume an
// acyclic input; see core.Validate.
package shape
