package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/shape"
)

// fixtures returns a spread of shapes used by the property tests.
func fixtures(t *testing.T) map[string]*core.Node[int] {
	t.Helper()
	complete4, err := builder.Complete(4)
	require.NoError(t, err)
	chain6, err := builder.Chain(6)
	require.NoError(t, err)
	rchain3, err := builder.Chain(3, builder.WithRightLeaning())
	require.NoError(t, err)
	rnd, err := builder.RandomBST(200, builder.WithSeed(42))
	require.NoError(t, err)

	return map[string]*core.Node[int]{
		"empty":     nil,
		"single":    core.NewNode(1),
		"sample":    builder.Sample(),
		"complete4": complete4,
		"chain6":    chain6,
		"rchain3":   rchain3,
		"bst":       builder.BST(50, 30, 70, 20, 40, 60, 80, 10),
		"random200": rnd,
	}
}

func TestSample_Scenario(t *testing.T) {
	root := builder.Sample()

	assert.Equal(t, 7, shape.Count(root))
	assert.Equal(t, 5, shape.Depth(root))

	ok, h := shape.IsBalanced(root)
	assert.False(t, ok, "left height 4 vs right height 1")
	assert.Equal(t, 5, h)

	assert.Equal(t, 2, shape.CountAtLayer(root, 4), "31 and 32 sit on layer 4")
	assert.Equal(t, 1, shape.CountAtLayer(root, 5), "42 alone on layer 5")
	assert.Equal(t, []int{1, 2, 1, 2, 1}, shape.LayerCounts(root))
}

func TestEmptyTree(t *testing.T) {
	var root *core.Node[int]

	assert.Equal(t, 0, shape.Count(root))
	assert.Equal(t, 0, shape.Depth(root))
	ok, h := shape.IsBalanced(root)
	assert.True(t, ok)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, shape.CountAtLayer(root, 1))
	assert.Equal(t, 0, shape.Diameter(root))

	widths := shape.LayerCounts(root)
	assert.NotNil(t, widths)
	assert.Empty(t, widths)
}

func TestIsBalanced(t *testing.T) {
	complete3, err := builder.Complete(3)
	require.NoError(t, err)
	chain2, err := builder.Chain(2)
	require.NoError(t, err)
	chain3, err := builder.Chain(3)
	require.NoError(t, err)

	cases := []struct {
		name   string
		root   *core.Node[int]
		ok     bool
		height int
	}{
		{"single", core.NewNode(1), true, 1},
		{"complete3", complete3, true, 3},
		{"chain2 (diff 1)", chain2, true, 2},
		{"chain3 (diff 2)", chain3, false, 3},
		{"sample", builder.Sample(), false, 5},
		{
			// Root looks fine (heights 3 and 2) but a child is skewed.
			"imbalance below root",
			core.NewNodeWith(1,
				core.NewNodeWith(2, nil, core.NewNodeWith(4, nil, core.NewNode(5))),
				core.NewNodeWith(3, core.NewNode(6), nil),
			),
			false, 4,
		},
		{
			"both children balanced, heights differ by 2",
			core.NewNodeWith(1,
				core.NewNodeWith(2, core.NewNode(4), core.NewNode(5)),
				nil,
			),
			false, 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, h := shape.IsBalanced(tc.root)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.height, h)
		})
	}
}

func TestDepth_MatchesBalanceHeight(t *testing.T) {
	for name, root := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			_, h := shape.IsBalanced(root)
			assert.Equal(t, shape.Depth(root), h)
		})
	}
}

func TestCount_EqualsSumOfLayers(t *testing.T) {
	for name, root := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			depth := shape.Depth(root)
			sum := 0
			for layer := 1; layer <= depth; layer++ {
				sum += shape.CountAtLayer(root, layer)
			}
			assert.Equal(t, shape.Count(root), sum)
		})
	}
}

func TestCountAtLayer_OutOfRange(t *testing.T) {
	for name, root := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			depth := shape.Depth(root)
			assert.Zero(t, shape.CountAtLayer(root, 0))
			assert.Zero(t, shape.CountAtLayer(root, -3))
			assert.Zero(t, shape.CountAtLayer(root, depth+1))
			assert.Zero(t, shape.CountAtLayer(root, depth+10))
		})
	}
}

func TestCountAtLayer_LeafAtOwnLayer(t *testing.T) {
	leaf := core.NewNode("x")
	assert.Equal(t, 1, shape.CountAtLayer(leaf, 1))
	assert.Equal(t, 0, shape.CountAtLayer(leaf, 2))
}

func TestCountAtLayer_Complete(t *testing.T) {
	root, err := builder.Complete(5)
	require.NoError(t, err)
	for layer := 1; layer <= 5; layer++ {
		assert.Equal(t, 1<<(layer-1), shape.CountAtLayer(root, layer), "layer %d", layer)
	}
	assert.Equal(t, 31, shape.Count(root))
}

func TestLayerCounts_MatchesCountAtLayer(t *testing.T) {
	for name, root := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			widths := shape.LayerCounts(root)
			require.Len(t, widths, shape.Depth(root))
			for i, w := range widths {
				assert.Equal(t, shape.CountAtLayer(root, i+1), w, "layer %d", i+1)
			}
		})
	}
}

func TestDiameter(t *testing.T) {
	complete3, err := builder.Complete(3)
	require.NoError(t, err)
	chain5, err := builder.Chain(5)
	require.NoError(t, err)

	cases := []struct {
		name string
		root *core.Node[int]
		want int
	}{
		{"single", core.NewNode(1), 0},
		{"pair", core.NewNodeWith(1, core.NewNode(2), nil), 1},
		{"complete3", complete3, 4},
		{"chain5", chain5, 4},
		// 42 → 31 → 21 → 11 → 0 → 12
		{"sample", builder.Sample(), 5},
		{
			// longest path stays inside the left subtree
			"deep left subtree",
			core.NewNodeWith(1,
				core.NewNodeWith(2,
					core.NewNodeWith(3, core.NewNode(5), nil),
					core.NewNodeWith(4, nil, core.NewNode(6)),
				),
				nil,
			),
			4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shape.Diameter(tc.root))
		})
	}
}

func TestQueries_DoNotMutate(t *testing.T) {
	root := builder.Sample()
	ref := core.Clone(root)

	shape.IsBalanced(root)
	shape.Count(root)
	shape.Depth(root)
	shape.CountAtLayer(root, 3)
	shape.LayerCounts(root)
	shape.Diameter(root)

	assert.True(t, core.Equal(ref, root))
}

func TestMirror_PreservesShapeMetrics(t *testing.T) {
	for name, root := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			count, depth := shape.Count(root), shape.Depth(root)
			ok, _ := shape.IsBalanced(root)
			widths := shape.LayerCounts(root)

			core.Mirror(root)

			assert.Equal(t, count, shape.Count(root))
			assert.Equal(t, depth, shape.Depth(root))
			ok2, _ := shape.IsBalanced(root)
			assert.Equal(t, ok, ok2)
			assert.Equal(t, widths, shape.LayerCounts(root))
		})
	}
}
