package main

import (
	"github.com/kiteco/cdoexpr"
	"github.com/kiteco/cdoexpr/cmdline"
	"github.com/kiteco/cdoexpr/errors"
)

func digitizeCmd() cmdline.Command {
	return cmdline.Command{
		Name:     "digitize",
		Synopsis: "map a variable to the index of the bin it falls into",
		Args:     &digitizeArgs{},
	}
}

type digitizeArgs struct {
	Output
	Var     string `arg:"positional,required" help:"variable to digitize"`
	Bins    string `arg:"required" help:"comma separated bin edges, e.g. --bins=-15,0,15"`
	Indices string `help:"comma separated values to map each bin index to"`
	Right   bool   `help:"edges belong to the bin below them"`
	Name    string `help:"assign the expression to this variable"`
}

func (a *digitizeArgs) Validate() error {
	if a.Indices != "" && len(splitList(a.Indices)) != len(splitList(a.Bins))+1 {
		return errors.Errorf("%d bins need %d indices", len(splitList(a.Bins)), len(splitList(a.Bins))+1)
	}
	return nil
}

func (a *digitizeArgs) Handle() error {
	a.setup()

	bins, err := cdoexpr.ParseBins(splitList(a.Bins))
	if err != nil {
		return err
	}
	var indices []string
	if a.Indices != "" {
		indices = splitList(a.Indices)
	}

	expr, err := cdoexpr.Digitize(a.Var, bins, indices, a.Right)
	if err != nil {
		return err
	}
	if a.Name != "" {
		expr = cdoexpr.Assign(a.Name, expr)
	}
	return a.write(expr)
}
