package main

import (
	"bytes"

	"github.com/kiteco/cdoexpr"
	"github.com/kiteco/cdoexpr/cmdline"
	"github.com/kiteco/cdoexpr/errors"
	"github.com/kiteco/cdoexpr/logging"
	"github.com/kiteco/cdoexpr/recipe"
	"go.uber.org/zap"
)

func batchCmd() cmdline.Command {
	return cmdline.Command{
		Name:     "batch",
		Synopsis: "generate every expression of a YAML recipe",
		Args:     &batchArgs{CacheSize: cdoexpr.DefaultCacheSize},
	}
}

type batchArgs struct {
	Output
	Recipe    string `arg:"positional,required" help:"recipe file"`
	CacheSize int    `help:"number of translations kept in memory"`
}

func (a *batchArgs) Validate() error {
	if a.CacheSize <= 0 {
		return errors.Errorf("cache size must be positive, got %d", a.CacheSize)
	}
	return nil
}

func (a *batchArgs) Handle() error {
	a.setup()

	r, err := recipe.Load(a.Recipe)
	if err != nil {
		return err
	}
	cache, err := cdoexpr.NewCache(a.CacheSize)
	if err != nil {
		return err
	}

	results, runErr := r.Run(cache)
	hits, misses := cache.Stats()
	logging.Logger().Debug("batch done",
		zap.Int("generated", len(results)),
		zap.Int64("cache_hits", hits),
		zap.Int64("cache_misses", misses))

	var buf bytes.Buffer
	if err := recipe.Write(&buf, results); err != nil {
		return err
	}
	if buf.Len() > 0 {
		if err := a.write(buf.String()); err != nil {
			return err
		}
	}
	return runErr
}
