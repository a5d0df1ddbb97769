package shape_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/shape"
)

// ExampleIsBalanced checks the reference tree, whose left side is three
// levels deeper than its right side.
func ExampleIsBalanced() {
	root := builder.Sample()

	ok, height := shape.IsBalanced(root)
	fmt.Println("balanced:", ok)
	fmt.Println("height:", height)
	// Output:
	// balanced: false
	// height: 5
}

// ExampleLayerCounts prints the width profile of the reference tree next to
// the per-layer query it summarises.
func ExampleLayerCounts() {
	root := builder.Sample()

	fmt.Println(shape.LayerCounts(root))
	fmt.Println(shape.CountAtLayer(root, 4), shape.Count(root), shape.Depth(root))
	// Output:
	// [1 2 1 2 1]
	// 2 7 5
}
