package binarytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lopsided builds
//
//	a
//	├── b
//	│   ├── 1
//	│   └── 2
//	└── 3
func lopsided() *Node {
	return NewBranch("a",
		NewBranch("b", NewLeaf("1"), NewLeaf("2")),
		NewLeaf("3"))
}

func TestLeavesPostOrder(t *testing.T) {
	root := lopsided()

	var values []string
	for _, leaf := range root.Leaves() {
		values = append(values, leaf.Value)
	}
	assert.Equal(t, []string{"1", "2", "3"}, values)

	var order []string
	root.PostOrder(func(n *Node) { order = append(order, n.Value) })
	assert.Equal(t, []string{"1", "2", "b", "3", "a"}, order)
}

func TestShape(t *testing.T) {
	root := lopsided()
	assert.Equal(t, 5, root.Size())
	assert.Equal(t, 2, root.Height())
	assert.True(t, root.IsStrict())
	assert.False(t, root.IsLeaf())
	assert.True(t, root.Right.IsLeaf())

	root.Left.Right = nil
	assert.False(t, root.IsStrict())
}

func TestDepths(t *testing.T) {
	cases := []struct {
		name     string
		root     *Node
		max, min int
	}{
		{"leaf", NewLeaf("x"), 0, 0},
		{"single split", NewBranch("c", NewLeaf("0"), NewLeaf("1")), 1, 1},
		{"lopsided", lopsided(), 2, 1},
		{"balanced", NewBranch("a", lopsided().Left, NewBranch("c", NewLeaf("3"), NewLeaf("4"))), 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			max, min := Depths(c.root)
			assert.Equal(t, c.max, max)
			assert.Equal(t, c.min, min)
		})
	}
}

func TestString(t *testing.T) {
	expected := "a\n" +
		"  T: b\n" +
		"    T: 1\n" +
		"    F: 2\n" +
		"  F: 3\n"
	require.Equal(t, expected, lopsided().String())
}
