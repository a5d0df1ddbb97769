// Package core defines the binary tree data model shared by every lvtree
// algorithm package: the generic Node type, constructors, and the few
// structural operations that act on a whole tree (Equal, Clone, Mirror,
// Validate).
//
// What
//
//   - Node[T] is one vertex of a binary tree. It owns its Left and Right
//     subtrees exclusively; there are no parent pointers.
//   - A tree is a *Node[T] pointing at its root. A nil pointer is the empty
//     tree and is a valid input to every function in lvtree.
//   - Trees are assembled by callers, either through NewNode/NewNodeWith and
//     the chaining setters WithLeft/WithRight, or by assigning the exported
//     fields directly. The builder package offers ready-made fixtures.
//
// Invariants
//
//	The structure must be acyclic and finite, and no node may be reachable
//	through more than one parent. These invariants are established by
//	construction and are not checked by the algorithms. Validate performs
//	the check on demand; a non-nil result is a caller bug, not a
//	recoverable condition.
//
// Mutation
//
//	Only Mirror mutates a tree, and only by exchanging child pointers. It
//	must not run concurrently with any other read of the same tree.
//
// Complexity (n = nodes, h = height)
//
//   - Equal, Clone, Mirror: O(n) time, O(h) stack.
//   - Validate:             O(n) time, O(n) memory for the visited set.
//
// Errors
//
//   - ErrCycle  if Validate reaches the same node twice.
package core
