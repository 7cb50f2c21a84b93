package main

import (
	"os"

	"github.com/kiteco/cdoexpr"
	"github.com/kiteco/cdoexpr/cmdline"
	"github.com/kiteco/cdoexpr/decisiontree"
	"github.com/kiteco/cdoexpr/errors"
	"github.com/kiteco/cdoexpr/logging"
	"go.uber.org/zap"
)

func ensembleCmd() cmdline.Command {
	return cmdline.Command{
		Name:     "ensemble",
		Synopsis: "translate a dumped tree ensemble into statements",
		Args:     &ensembleArgs{Name: "PRED"},
	}
}

type ensembleArgs struct {
	Output
	Dump string       `arg:"positional,required" help:"text or JSON tree dump"`
	Mode cdoexpr.Mode `help:"averaging, boosting or majority-vote"`
	Name string       `help:"variable receiving the ensemble output"`
}

func (a *ensembleArgs) Handle() (err error) {
	a.setup()

	f, err := os.Open(a.Dump)
	if err != nil {
		return errors.Wrapf(err, "opening dump")
	}
	defer errors.Defer(&err, f.Close)

	model, err := decisiontree.Load(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", a.Dump)
	}
	logging.Logger().Debug("loaded ensemble",
		zap.String("dump", a.Dump),
		zap.Int("trees", len(model.Trees)),
		zap.Stringer("mode", a.Mode))

	stmts, err := cdoexpr.Ensemble(model.Trees, a.Mode, a.Name)
	if err != nil {
		return err
	}
	return a.write(stmts)
}
