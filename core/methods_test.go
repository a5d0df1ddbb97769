package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

// sample builds the reference fixture:
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
func sample() *core.Node[int] {
	root := core.NewNode(0)
	root.Left = core.NewNode(11)
	root.Right = core.NewNode(12)
	root.Left.Left = core.NewNode(21)
	root.Left.Left.Left = core.NewNode(31)
	root.Left.Left.Right = core.NewNode(32)
	root.Left.Left.Left.Right = core.NewNode(42)

	return root
}

// preorder is a local collector so core tests do not depend on traverse.
func preorder(n *core.Node[int], out []int) []int {
	if n == nil {
		return out
	}
	out = append(out, n.Value)
	out = preorder(n.Left, out)

	return preorder(n.Right, out)
}

func TestClone_DeepCopy(t *testing.T) {
	orig := sample()
	cp := core.Clone(orig)

	require.True(t, core.Equal(orig, cp))
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Left.Left, cp.Left.Left)

	// mutating the copy must not leak into the original
	cp.Left.Left.Value = 99
	assert.Equal(t, 21, orig.Left.Left.Value)
	assert.False(t, core.Equal(orig, cp))
}

func TestClone_Empty(t *testing.T) {
	var root *core.Node[string]
	assert.Nil(t, core.Clone(root))
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b *core.Node[int]
		want bool
	}{
		{"both empty", nil, nil, true},
		{"empty vs node", nil, core.NewNode(1), false},
		{"node vs empty", core.NewNode(1), nil, false},
		{"same value leaf", core.NewNode(1), core.NewNode(1), true},
		{"different value", core.NewNode(1), core.NewNode(2), false},
		{
			"same values, different sides",
			core.NewNodeWith(1, core.NewNode(2), nil),
			core.NewNodeWith(1, nil, core.NewNode(2)),
			false,
		},
		{"fixture vs fixture", sample(), sample(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.Equal(tc.a, tc.b))
		})
	}
}

func TestMirror_Fixture(t *testing.T) {
	root := sample()
	core.Mirror(root)
	assert.Equal(t, []int{0, 12, 11, 21, 32, 31, 42}, preorder(root, nil))
}

func TestMirror_Involution(t *testing.T) {
	root := sample()
	orig := core.Clone(root)

	core.Mirror(root)
	assert.False(t, core.Equal(orig, root))
	core.Mirror(root)
	assert.True(t, core.Equal(orig, root))
}

func TestMirror_KeepsNodes(t *testing.T) {
	root := sample()
	left, right := root.Left, root.Right

	core.Mirror(root)
	assert.Same(t, right, root.Left, "mirror swaps pointers, it does not allocate")
	assert.Same(t, left, root.Right)
}

func TestMirror_Empty(t *testing.T) {
	var root *core.Node[int]
	assert.NotPanics(t, func() { core.Mirror(root) })
	assert.Nil(t, root)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, core.Validate[int](nil))
	assert.NoError(t, core.Validate(sample()))

	// shared subtree: two parents point at the same node
	shared := core.NewNode(5)
	dag := core.NewNodeWith(1, shared, shared)
	assert.ErrorIs(t, core.Validate(dag), core.ErrCycle)

	// back edge to the root
	cyc := sample()
	cyc.Left.Left.Left.Right.Left = cyc
	assert.ErrorIs(t, core.Validate(cyc), core.ErrCycle)

	// self loop
	self := core.NewNode(1)
	self.Right = self
	assert.ErrorIs(t, core.Validate(self), core.ErrCycle)
}
