// Package binarytree is the strict binary tree shared by the condition and
// decision tree builders. Internal nodes hold condition text, leaves hold the
// assigned value text.
package binarytree

import (
	"fmt"
	"strings"
)

// Node is a binary tree element. Children are exclusively owned by their parent.
type Node struct {
	Value string
	Left  *Node
	Right *Node
}

// NewLeaf returns a node without children.
func NewLeaf(value string) *Node {
	return &Node{Value: value}
}

// NewBranch returns an internal node with both children set.
func NewBranch(value string, left, right *Node) *Node {
	return &Node{Value: value, Left: left, Right: right}
}

// IsLeaf returns true if the node has no children
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsStrict reports whether every internal node below n has exactly two children.
func (n *Node) IsStrict() bool {
	strict := true
	n.PostOrder(func(m *Node) {
		if (m.Left == nil) != (m.Right == nil) {
			strict = false
		}
	})
	return strict
}

// PostOrder calls fn on each node, children (left then right) before parents.
func (n *Node) PostOrder(fn func(*Node)) {
	if n == nil {
		return
	}
	n.Left.PostOrder(fn)
	n.Right.PostOrder(fn)
	fn(n)
}

// Leaves returns the leaves in post-order, which is also left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.PostOrder(func(m *Node) {
		if m.IsLeaf() {
			leaves = append(leaves, m)
		}
	})
	return leaves
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	var size int
	n.PostOrder(func(*Node) { size++ })
	return size
}

// Height is the number of edges on the longest root to leaf path.
func (n *Node) Height() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// String renders the tree one node per line, true branches before false ones.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b, "", "")
	return b.String()
}

func (n *Node) render(b *strings.Builder, label, indent string) {
	if n == nil {
		return
	}
	fmt.Fprintf(b, "%s%s%s\n", indent, label, n.Value)
	n.Left.render(b, "T: ", indent+"  ")
	n.Right.render(b, "F: ", indent+"  ")
}
