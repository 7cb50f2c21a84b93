package main

import (
	"github.com/kiteco/cdoexpr"
	"github.com/kiteco/cdoexpr/cmdline"
)

func conditionsCmd() cmdline.Command {
	return cmdline.Command{
		Name:     "conditions",
		Synopsis: "translate an if/elif/else block into a ternary expression",
		Args:     &conditionsArgs{},
	}
}

type conditionsArgs struct {
	Output
	Input  string `arg:"positional" help:"file holding the block, stdin if omitted or -"`
	Name   string `help:"assign the expression to this variable"`
	Assign bool   `help:"assign to the variable named by the block's value lines"`
}

func (a *conditionsArgs) Handle() error {
	a.setup()

	text, err := readInput(a.Input)
	if err != nil {
		return err
	}

	if a.Assign {
		stmt, err := cdoexpr.Statement(text)
		if err != nil {
			return err
		}
		return a.write(stmt)
	}

	expr, err := cdoexpr.Conditions(text, a.Verbose)
	if err != nil {
		return err
	}
	if a.Name != "" {
		expr = cdoexpr.Assign(a.Name, expr)
	}
	return a.write(expr)
}
