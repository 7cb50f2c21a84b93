package cdoexpr

import (
	"time"

	"github.com/kiteco/cdoexpr/binarytree"
	"github.com/kiteco/cdoexpr/conditiontree"
	"github.com/kiteco/cdoexpr/errors"
	"github.com/kiteco/cdoexpr/lineparser"
	"github.com/kiteco/cdoexpr/logging"
	"go.uber.org/zap"
)

// Conditions translates an if/elif/else block into a nested ternary expression.
//
// The block is read line by line: `if <cond>:` and `elif <cond>:` open
// branches, `else:` closes them and `<name> = <value>` lines are the leaves.
// Blocks must be consistently indented with every if closed by an else; the
// result for other input is unspecified. With verbose set the intermediate
// keyword stream, tree and stage timings are logged.
func Conditions(text string, verbose bool) (string, error) {
	_, expr, err := conditions(text, verbose)
	return expr, err
}

// Statement is Conditions rendered as an assignment, <name>=<expr>;, where
// name is the target assigned by every value line of the block.
func Statement(text string) (string, error) {
	block, expr, err := conditions(text, false)
	if err != nil {
		return "", err
	}
	target, err := blockTarget(block)
	if err != nil {
		return "", err
	}
	return Assign(target, expr), nil
}

func conditions(text string, verbose bool) (lineparser.Block, string, error) {
	var timings logging.Durations
	start := time.Now()

	block := lineparser.Parse(text)
	start = timings.Since("parse", start)

	root, err := conditiontree.FromBlock(block)
	if err != nil {
		return block, "", errors.Wrapf(err, "building condition tree")
	}
	start = timings.Since("build", start)

	expr := Construct(root)
	timings.Since("construct", start)

	if verbose {
		logBlock(block, root, expr, &timings)
	}
	return block, expr, nil
}

func blockTarget(b lineparser.Block) (string, error) {
	var target string
	for _, v := range b.Values {
		t := v.Target()
		switch {
		case target == "":
			target = t
		case t != target:
			return "", errors.Reasonf(errors.MixedTargets, "block assigns both %s and %s", target, t)
		}
	}
	if target == "" {
		return "", errors.Reasonf(errors.EmptyInput, "block assigns nothing")
	}
	return target, nil
}

func logBlock(b lineparser.Block, root *binarytree.Node, expr string, timings *logging.Durations) {
	keywords := make([]string, 0, len(b.Keywords))
	for _, k := range b.Keywords {
		keywords = append(keywords, k.String())
	}
	conds := make([]string, 0, len(b.Conditions))
	for _, c := range b.Conditions {
		conds = append(conds, c.Text)
	}
	values := make([]string, 0, len(b.Values))
	for _, v := range b.Values {
		values = append(values, v.Text)
	}

	l := logging.Logger()
	l.Info("parsed conditions",
		zap.Strings("keywords", keywords),
		zap.Strings("conditions", conds),
		zap.Strings("values", values))
	l.Info("condition tree",
		zap.Int("size", root.Size()),
		zap.Int("height", root.Height()),
		zap.String("tree", root.String()))
	timings.Flush(l, "expression", zap.Int("length", len(expr)))
}
