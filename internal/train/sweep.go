package train

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/born-ml/micrograd/internal/parallel"
)

// SeedResult is the outcome of one run of a sweep.
type SeedResult struct {
	Seed   int64
	Result *Result
}

// Sweep trains one independent model per seed, up to pcfg.NumWorkers at a
// time, and returns results in seed order. Each run owns its graph. The data
// and weight seed of run i is seeds[i]; all other fields come from cfg.
func Sweep(ctx context.Context, cfg Config, seeds []int64, pcfg parallel.Config, logger *slog.Logger) ([]SeedResult, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: sweep needs at least one seed", ErrInvalidConfig)
	}
	// Fail fast on a bad shared config before spawning anything.
	if err := cfg.withDefaults().Validate(); err != nil {
		return nil, err
	}

	results := make([]SeedResult, len(seeds))
	err := parallel.For(ctx, len(seeds), func(ctx context.Context, i int) error {
		run := cfg
		run.Seed = seeds[i]
		run.Trace = false

		var runLogger *slog.Logger
		if logger != nil {
			runLogger = logger.With("seed", seeds[i])
		}
		t, err := New(run, runLogger)
		if err != nil {
			return err
		}
		res, err := t.Run(ctx, nil)
		if err != nil {
			return fmt.Errorf("seed %d: %w", seeds[i], err)
		}
		results[i] = SeedResult{Seed: seeds[i], Result: res}
		return nil
	}, pcfg)
	if err != nil {
		return nil, err
	}
	return results, nil
}
