// Package recipe runs a batch of expression definitions read from a YAML file.
//
//	expressions:
//	  - name: WIND_LEVEL
//	    digitize: {var: WIND, bins: [0.3, 1.6, 3.4]}
//	  - name: WW
//	    conditions: |
//	      if PRE1H > 0.001:
//	          WW = 1
//	      else:
//	          WW = 0
//	  - name: PRED
//	    ensemble: {dump: model.dump, mode: averaging}
//	  - name: MAJOR
//	    vote: {voters: [a, b, c]}
package recipe

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/kiteco/cdoexpr"
	"github.com/kiteco/cdoexpr/decisiontree"
	"github.com/kiteco/cdoexpr/errors"
	"github.com/kiteco/cdoexpr/logging"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

// Recipe is an ordered list of expression definitions.
type Recipe struct {
	Expressions []Entry `yaml:"expressions"`

	// Dir resolves relative dump paths; it is the recipe file's directory when loaded with Load.
	Dir string `yaml:"-"`
}

// Entry defines one output variable. Exactly one of the generator fields must be set.
type Entry struct {
	Name       string        `yaml:"name"`
	Digitize   *DigitizeSpec `yaml:"digitize"`
	Conditions string        `yaml:"conditions"`
	Ensemble   *EnsembleSpec `yaml:"ensemble"`
	Vote       *VoteSpec     `yaml:"vote"`
}

// DigitizeSpec holds the arguments of cdoexpr.Digitize.
type DigitizeSpec struct {
	Var     string   `yaml:"var"`
	Bins    []string `yaml:"bins"`
	Indices []string `yaml:"indices"`
	Right   bool     `yaml:"right"`
}

// EnsembleSpec points at a tree dump file, or lists the per-tree dumps inline.
// An empty Mode means averaging, as on the command line.
type EnsembleSpec struct {
	Dump  string   `yaml:"dump"`
	Trees []string `yaml:"trees"`
	Mode  string   `yaml:"mode"`
}

// VoteSpec lists the variables voting for the entry's value.
type VoteSpec struct {
	Voters []string `yaml:"voters"`
}

// Result is the generated text of one entry.
type Result struct {
	Name string
	Expr string
}

// Load reads a recipe file.
func Load(path string) (r *Recipe, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening recipe")
	}
	defer errors.Defer(&err, f.Close)

	r, err = Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "recipe %s", path)
	}
	r.Dir = filepath.Dir(path)
	return r, nil
}

// Parse decodes a recipe and validates its entries.
func Parse(rd io.Reader) (*Recipe, error) {
	buf, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, errors.Wrapf(err, "reading recipe")
	}

	var r Recipe
	if err := yaml.UnmarshalStrict(buf, &r); err != nil {
		return nil, errors.Wrapf(err, "decoding recipe")
	}
	if len(r.Expressions) == 0 {
		return nil, errors.Reasonf(errors.EmptyInput, "recipe defines no expressions")
	}

	var errs errors.Errors
	for i, e := range r.Expressions {
		errs = errors.Append(errs, errors.WrapfOrNil(e.validate(), "entry %d (%s)", i, e.Name))
	}
	if errs != nil {
		return nil, errs
	}
	return &r, nil
}

func (e Entry) validate() error {
	if e.Name == "" {
		return errors.New("missing name")
	}
	var kinds int
	for _, set := range []bool{e.Digitize != nil, e.Conditions != "", e.Ensemble != nil, e.Vote != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return errors.Errorf("exactly one of digitize, conditions, ensemble, vote must be set, got %d", kinds)
	}
	if e.Ensemble != nil && (e.Ensemble.Dump == "") == (len(e.Ensemble.Trees) == 0) {
		return errors.New("ensemble needs either dump or trees")
	}
	return nil
}

// Run generates every entry in order, translating through cache when it is
// not nil. Entries that fail are reported together in the returned
// errors.Errors; the results of the other entries are still returned.
func (r *Recipe) Run(cache *cdoexpr.Cache) ([]Result, error) {
	var results []Result
	var errs errors.Errors
	for i, e := range r.Expressions {
		start := time.Now()
		expr, err := r.run(e, cache)
		if err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "entry %d (%s)", i, e.Name))
			continue
		}
		logging.Logger().Debug("generated expression",
			zap.String("name", e.Name),
			zap.Int("length", len(expr)),
			zap.Duration("took", time.Since(start)))
		results = append(results, Result{Name: e.Name, Expr: expr})
	}
	if errs != nil {
		return results, errs
	}
	return results, nil
}

func (r *Recipe) run(e Entry, cache *cdoexpr.Cache) (string, error) {
	switch {
	case e.Digitize != nil:
		bins, err := cdoexpr.ParseBins(e.Digitize.Bins)
		if err != nil {
			return "", err
		}
		expr, err := cdoexpr.Digitize(e.Digitize.Var, bins, e.Digitize.Indices, e.Digitize.Right)
		if err != nil {
			return "", err
		}
		return cdoexpr.Assign(e.Name, expr), nil

	case e.Conditions != "":
		var expr string
		var err error
		if cache != nil {
			expr, err = cache.Conditions(e.Conditions)
		} else {
			expr, err = cdoexpr.Conditions(e.Conditions, false)
		}
		if err != nil {
			return "", err
		}
		return cdoexpr.Assign(e.Name, expr), nil

	case e.Ensemble != nil:
		mode := cdoexpr.Averaging
		var err error
		if e.Ensemble.Mode != "" {
			if mode, err = cdoexpr.ParseMode(e.Ensemble.Mode); err != nil {
				return "", err
			}
		}
		trees := e.Ensemble.Trees
		if e.Ensemble.Dump != "" {
			if trees, err = r.loadDump(e.Ensemble.Dump); err != nil {
				return "", err
			}
		}
		if cache != nil {
			return cache.Ensemble(trees, mode, e.Name)
		}
		return cdoexpr.Ensemble(trees, mode, e.Name)

	case e.Vote != nil:
		return cdoexpr.MooreVoting(e.Vote.Voters, e.Name)
	}
	return "", errors.Errorf("entry %s has nothing to generate", e.Name)
}

func (r *Recipe) loadDump(path string) (trees []string, err error) {
	if !filepath.IsAbs(path) && r.Dir != "" {
		path = filepath.Join(r.Dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dump")
	}
	defer errors.Defer(&err, f.Close)

	ensemble, err := decisiontree.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return ensemble.Trees, nil
}

// Write prints one result per line.
func Write(w io.Writer, results []Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.Expr); err != nil {
			return errors.Wrapf(err, "writing %s", res.Name)
		}
	}
	return nil
}
