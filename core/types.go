// Package core declares the Node type, its constructors and the sentinel
// errors of the package.
package core

import "errors"

// ErrCycle is returned by Validate when a node is reachable more than once,
// either through a cycle or through a subtree shared by two parents.
var ErrCycle = errors.New("core: node reachable more than once")

// Node is one vertex of a binary tree carrying a payload of type T.
//
// Left and Right are independently optional: a node may have zero, one or
// two children. A nil *Node[T] is the empty tree.
type Node[T any] struct {
	// Value is the payload stored at this node.
	Value T

	// Left is the root of the left subtree, or nil.
	Left *Node[T]

	// Right is the root of the right subtree, or nil.
	Right *Node[T]
}

// NewNode returns a childless node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// NewNodeWith returns a node holding v with the given subtrees attached.
// Either subtree may be nil.
func NewNodeWith[T any](v T, left, right *Node[T]) *Node[T] {
	return &Node[T]{Value: v, Left: left, Right: right}
}

// WithLeft attaches child as the left subtree of n and returns n,
// so that construction can be chained:
//
//	root := core.NewNode(1).WithLeft(core.NewNode(2)).WithRight(core.NewNode(3))
func (n *Node[T]) WithLeft(child *Node[T]) *Node[T] {
	n.Left = child
	return n
}

// WithRight attaches child as the right subtree of n and returns n.
func (n *Node[T]) WithRight(child *Node[T]) *Node[T] {
	n.Right = child
	return n
}

// IsLeaf reports whether n is a non-nil node without children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}
