// Package conditiontree rebuilds the binary decision tree of an if/elif/else
// block from its keyword stream and condition list.
//
// The builder relies on If/Else tokens nesting exactly as the block's
// indentation does. Every If must have a matching Else; input violating this
// is rejected where it can be detected, but the tree shape of inconsistently
// indented input is otherwise unspecified.
package conditiontree

import (
	"github.com/kiteco/cdoexpr/binarytree"
	"github.com/kiteco/cdoexpr/errors"
	"github.com/kiteco/cdoexpr/lineparser"
)

// Placeholder leaf values, overwritten by Fill.
const (
	TruePlaceholder  = "0"
	FalsePlaceholder = "1"
)

// Build returns the tree whose internal nodes hold the conditions and whose
// leaves hold TruePlaceholder/FalsePlaceholder.
func Build(keywords []lineparser.Keyword, conditions []lineparser.Line) (*binarytree.Node, error) {
	if len(keywords) == 0 {
		return nil, errors.Reasonf(errors.EmptyInput, "no if/else keywords")
	}
	return build(keywords, conditions)
}

func build(kw []lineparser.Keyword, cond []lineparser.Line) (*binarytree.Node, error) {
	if len(cond) == 0 {
		return nil, errors.Reasonf(errors.ConditionCount, "keywords %v have no condition left", kw)
	}

	// a lone if/else: both branches are leaves
	if len(kw) == 2 && len(cond) == 1 && kw[0] == lineparser.If && kw[1] == lineparser.ElseKeyword {
		return placeholderSplit(cond[0].Text), nil
	}

	elseIdx, err := matchingElse(kw)
	if err != nil {
		return nil, err
	}

	root := &binarytree.Node{Value: cond[0].Text}
	rest := kw[elseIdx+1:]

	if elseIdx == 1 {
		// the if branch is a leaf, everything after the else belongs to the false branch
		root.Left = binarytree.NewLeaf(TruePlaceholder)
		if len(rest) <= 1 {
			root.Right = binarytree.NewLeaf(FalsePlaceholder)
			return root, nil
		}
		right, err := build(rest, cond[1:])
		if err != nil {
			return nil, err
		}
		root.Right = right
		return root, nil
	}

	// the if branch nests n conditions; the token just before the matching
	// else always closes the nested block and is excluded from the count
	n := countIfs(kw[1 : elseIdx-1])
	if n+1 > len(cond) {
		return nil, errors.Reasonf(errors.ConditionCount, "true branch needs %d conditions, %d left", n, len(cond)-1)
	}
	left, err := build(kw[1:elseIdx], cond[1:n+1])
	if err != nil {
		return nil, err
	}
	root.Left = left

	if len(rest) <= 1 {
		root.Right = binarytree.NewLeaf(FalsePlaceholder)
		return root, nil
	}
	right, err := build(rest, cond[n+1:])
	if err != nil {
		return nil, err
	}
	root.Right = right
	return root, nil
}

func placeholderSplit(cond string) *binarytree.Node {
	return binarytree.NewBranch(cond,
		binarytree.NewLeaf(TruePlaceholder),
		binarytree.NewLeaf(FalsePlaceholder))
}

// matchingElse returns the index of the Else closing the If at kw[0].
func matchingElse(kw []lineparser.Keyword) (int, error) {
	if kw[0] != lineparser.If {
		return 0, errors.Reasonf(errors.Unbalanced, "keywords %v start with else", kw)
	}
	var depth int
	for i, k := range kw {
		switch k {
		case lineparser.If:
			depth++
		case lineparser.ElseKeyword:
			depth--
		}
		if depth == 0 {
			return i, nil
		}
	}
	return 0, errors.Reasonf(errors.Unbalanced, "if without else in %v", kw)
}

func countIfs(kw []lineparser.Keyword) int {
	var n int
	for _, k := range kw {
		if k == lineparser.If {
			n++
		}
	}
	return n
}

// Fill overwrites the leaves of root, in post-order, with the texts of values.
func Fill(root *binarytree.Node, values []lineparser.Line) error {
	leaves := root.Leaves()
	if len(leaves) != len(values) {
		return errors.Reasonf(errors.LeafCount, "tree has %d leaves but block assigns %d values", len(leaves), len(values))
	}
	for i, leaf := range leaves {
		leaf.Value = values[i].Text
	}
	return nil
}

// FromBlock builds and fills the tree of a parsed block.
func FromBlock(b lineparser.Block) (*binarytree.Node, error) {
	if len(b.Keywords) == 0 {
		if len(b.Values) == 1 {
			// unconditional assignment
			return binarytree.NewLeaf(b.Values[0].Text), nil
		}
		return nil, errors.Reasonf(errors.EmptyInput, "block has no conditions and %d values", len(b.Values))
	}
	root, err := Build(b.Keywords, b.Conditions)
	if err != nil {
		return nil, err
	}
	if err := Fill(root, b.Values); err != nil {
		return nil, err
	}
	return root, nil
}
