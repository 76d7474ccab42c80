// Package parallel runs independent jobs on a bounded number of goroutines.
//
// Graphs are not safe for concurrent use, so each job is expected to own its
// graph (for example one training run per seed).
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum jobs in flight.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.GOMAXPROCS(0)
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// For runs f(ctx, i) for i in [0, n) and returns the first error.
// Once a job fails, ctx is canceled and jobs not yet started are skipped.
// Falls back to sequential execution if parallelism is disabled.
func For(ctx context.Context, n int, f func(ctx context.Context, i int) error, cfg Config) error {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n <= 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, inner := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)
	for i := range n {
		g.Go(func() error {
			if err := inner.Err(); err != nil {
				return err
			}
			return f(inner, i)
		})
	}
	return g.Wait()
}
