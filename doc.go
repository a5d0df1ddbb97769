// Package lvtree is a small, dependency-light toolkit for binary trees:
// structural validation, size and depth queries, per-layer node counts, the
// classical depth-first traversals, breadth-first traversal, and mirroring.
//
// What is inside?
//
//	core/      — Node[T], constructors, Equal, Clone, Mirror, Validate
//	shape/     — IsBalanced, Count, Depth, CountAtLayer, LayerCounts, Diameter
//	traverse/  — PreOrder, InOrder, PostOrder, LevelOrder as iter.Seq; Walk with layer bands
//	builder/   — Sample, FromLevelOrder, BST, Complete, Chain, RandomBST fixtures
//	cmd/lvtree — command-line driver (demo, stats) with zerolog logs and prometheus output
//
// Design rules
//
//   - The empty tree (a nil *core.Node[T]) is valid input everywhere.
//   - Every query is a pure function; only core.Mirror mutates, and only by
//     swapping child pointers.
//   - Traversals are Go iterators, so results are collected, not printed.
//   - Balance is detected, never maintained: there are no rotations.
//
// Quick ASCII example (the reference tree returned by builder.Sample):
//
//	        0
//	      /   \
//	    11     12
//	    /
//	  21
//	 /  \
//	31   32
//	  \
//	   42
//
// 7 nodes, depth 5, not balanced; pre-order 0 11 21 31 42 32 12.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
