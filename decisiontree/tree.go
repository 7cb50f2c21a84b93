// Package decisiontree reads the text dumps of gradient boosted tree
// ensembles and rebuilds each dumped tree as a binarytree.
package decisiontree

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kiteco/cdoexpr/binarytree"
	"github.com/kiteco/cdoexpr/errors"
)

// A Node is one line of a tree dump: either a split of the form
// "<id>:[<cond>] yes=<id>,no=<id>,missing=<id>" or a leaf "<id>:leaf=<value>".
type Node struct {
	// ID is the node id printed at the start of the line
	ID int
	// Text is the bracketed condition for splits and "leaf=<value>" for leaves
	Text string
	// Children holds the yes and no child ids of a split, and is empty for leaves
	Children []int
	// Missing is the child taken for missing values; it does not affect the tree shape
	Missing int
}

// IsLeaf returns true for leaf lines
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// NodeTable maps node ids to the parsed lines of a single tree. Id 0 is the root.
type NodeTable map[int]Node

var (
	splitRe = regexp.MustCompile(`^\s*(\d+):\[(.+)\]\s+yes=(\d+),no=(\d+),missing=(\d+)`)
	leafRe  = regexp.MustCompile(`^\s*(\d+):(leaf=[^,\s]+)`)
)

// ParseLine parses a single dump line, returning false for lines that are
// neither splits nor leaves.
func ParseLine(line string) (Node, bool) {
	if m := splitRe.FindStringSubmatch(line); m != nil {
		ids, ok := atois(m[1], m[3], m[4], m[5])
		if !ok {
			return Node{}, false
		}
		return Node{
			ID:       ids[0],
			Text:     m[2],
			Children: []int{ids[1], ids[2]},
			Missing:  ids[3],
		}, true
	}
	if m := leafRe.FindStringSubmatch(line); m != nil {
		ids, ok := atois(m[1])
		if !ok {
			return Node{}, false
		}
		return Node{ID: ids[0], Text: m[2], Missing: -1}, true
	}
	return Node{}, false
}

func atois(strs ...string) ([]int, bool) {
	ints := make([]int, 0, len(strs))
	for _, s := range strs {
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		ints = append(ints, i)
	}
	return ints, true
}

// ParseDump builds the node table of one tree dump. Unrecognized lines are skipped.
func ParseDump(dump string) NodeTable {
	table := make(NodeTable)
	for _, line := range strings.Split(dump, "\n") {
		if n, ok := ParseLine(line); ok {
			table[n.ID] = n
		}
	}
	return table
}

// Build resolves the table into a tree rooted at node 0.
func (t NodeTable) Build() (*binarytree.Node, error) {
	if len(t) == 0 {
		return nil, errors.Reasonf(errors.EmptyInput, "dump has no nodes")
	}
	return t.resolve(0, make(map[int]bool))
}

func (t NodeTable) resolve(id int, onPath map[int]bool) (*binarytree.Node, error) {
	n, ok := t[id]
	if !ok {
		return nil, errors.Reasonf(errors.MissingNode, "node %d is referenced but not defined", id)
	}
	if onPath[id] {
		return nil, errors.Reasonf(errors.NodeCycle, "node %d is its own ancestor", id)
	}

	root := binarytree.NewLeaf(n.Text)
	if n.IsLeaf() {
		return root, nil
	}

	onPath[id] = true
	defer delete(onPath, id)

	left, err := t.resolve(n.Children[0], onPath)
	if err != nil {
		return nil, err
	}
	right, err := t.resolve(n.Children[1], onPath)
	if err != nil {
		return nil, err
	}
	root.Left, root.Right = left, right
	return root, nil
}

// BuildDump parses and builds a single tree dump.
func BuildDump(dump string) (*binarytree.Node, error) {
	return ParseDump(dump).Build()
}
