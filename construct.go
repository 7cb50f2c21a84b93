// Package cdoexpr generates CDO expr ternary expressions from bin edges,
// if/elif/else text blocks and dumped decision tree ensembles.
//
// Every operation is a pure function of its arguments; the generated text is
// never evaluated here.
package cdoexpr

import (
	"fmt"
	"strings"

	"github.com/kiteco/cdoexpr/binarytree"
)

const ternaryPattern = "((%s))? (%s): (%s)"

// Construct linearizes a condition tree into nested ternaries of the form
// ((<cond>))? (<true>): (<false>). Leaves contribute their text after the last
// "=", so "y = 1" and "leaf=1" both emit 1.
func Construct(root *binarytree.Node) string {
	maxDepth, _ := binarytree.Depths(root)
	switch maxDepth {
	case 0:
		return leafValue(root)
	case 1:
		return fmt.Sprintf(ternaryPattern, root.Value, leafValue(root.Left), leafValue(root.Right))
	}
	return fmt.Sprintf(ternaryPattern, root.Value, branch(root.Left), branch(root.Right))
}

func branch(n *binarytree.Node) string {
	if maxDepth, _ := binarytree.Depths(n); maxDepth >= 1 {
		return Construct(n)
	}
	return leafValue(n)
}

func leafValue(n *binarytree.Node) string {
	v := n.Value
	if idx := strings.LastIndex(v, "="); idx >= 0 {
		v = v[idx+1:]
	}
	return strings.TrimSpace(v)
}

// Assign renders a single expr statement, <name>=<expr>;.
func Assign(name, expr string) string {
	return name + "=" + expr + ";"
}
