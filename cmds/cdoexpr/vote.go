package main

import (
	"github.com/kiteco/cdoexpr"
	"github.com/kiteco/cdoexpr/cmdline"
)

func voteCmd() cmdline.Command {
	return cmdline.Command{
		Name:     "vote",
		Synopsis: "emit a Boyer-Moore majority vote over variables",
		Args:     &voteArgs{Name: "MAJOR"},
	}
}

type voteArgs struct {
	Output
	Voters []string `arg:"positional,required" help:"variables taking part in the vote"`
	Name   string   `help:"variable receiving the winning value"`
}

func (a *voteArgs) Handle() error {
	a.setup()

	stmts, err := cdoexpr.MooreVoting(a.Voters, a.Name)
	if err != nil {
		return err
	}
	return a.write(stmts)
}
