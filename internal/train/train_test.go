package train_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/data"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/born-ml/micrograd/internal/train"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, train.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*train.Config)
	}{
		{"samples", func(c *train.Config) { c.Samples = 1 }},
		{"epochs", func(c *train.Config) { c.Epochs = -1 }},
		{"noise", func(c *train.Config) { c.Noise = -0.1 }},
		{"lr", func(c *train.Config) { c.LREnd = -1 }},
		{"momentum", func(c *train.Config) { c.Momentum = 1 }},
		{"hidden", func(c *train.Config) { c.Hidden = []int{4, 0} }},
		{"activation", func(c *train.Config) { c.Activation = nn.Activation(9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := train.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, train.ErrInvalidConfig))

			_, err = train.New(cfg, nil)
			assert.ErrorIs(t, err, train.ErrInvalidConfig)
		})
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	tr, err := train.New(train.Config{Epochs: 3}, nil)
	require.NoError(t, err)

	cfg := tr.Config()
	assert.Equal(t, 200, cfg.Samples)
	assert.Equal(t, []int{16, 16}, cfg.Hidden)
	assert.Equal(t, 3, cfg.Epochs)
	assert.Len(t, tr.Model().Layers(), 3)

	// Zero is a valid seed, noise and test size, so it is kept.
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0.0, cfg.Noise)
	assert.Equal(t, 0, cfg.TestSize)
}

func TestRun_ReducesLoss(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tr, err := train.New(train.Config{
		Samples:  60,
		TestSize: 40,
		Epochs:   40,
		Hidden:   []int{8},
	}, logger)
	require.NoError(t, err)

	var reported []train.Step
	res, err := tr.Run(context.Background(), func(s train.Step) {
		reported = append(reported, s)
	})
	require.NoError(t, err)

	require.Len(t, res.Steps, 40)
	assert.Equal(t, res.Steps, reported)
	assert.Less(t, res.Final().Loss, res.Steps[0].Loss)
	assert.Equal(t, 1.0, res.Steps[0].LR)
	assert.Less(t, res.Final().LR, res.Steps[0].LR)
	// LREnd is reached at step Epochs, one past the last epoch.
	assert.InDelta(t, 1.0-0.9*39/40, res.Final().LR, 1e-12)
	assert.GreaterOrEqual(t, res.TestAccuracy, 0.0)
	assert.LessOrEqual(t, res.TestAccuracy, 100.0)

	assert.Contains(t, buf.String(), "training finished")

	// Parameters are the only nodes left once an epoch is done.
	g := tr.Model().Graph()
	assert.Equal(t, nn.NumParameters(tr.Model()), g.Len())
}

func TestRun_Canceled(t *testing.T) {
	tr, err := train.New(train.Config{Samples: 10, Epochs: 5, Hidden: []int{2}}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tr.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Steps)
}

func TestEvaluate(t *testing.T) {
	tr, err := train.New(train.Config{Samples: 10, Epochs: 1, Hidden: []int{2}}, nil)
	require.NoError(t, err)
	model := tr.Model()
	before := model.Graph().Len()

	ds, err := data.MakeMoons(30, 0.1, 3)
	require.NoError(t, err)

	preds := train.Predict(model, ds.Inputs)
	require.Len(t, preds, 30)

	acc := train.Evaluate(model, ds)
	hits := 0
	for i, p := range preds {
		if p*ds.Labels[i] > 0 {
			hits++
		}
	}
	assert.InDelta(t, float64(hits)*100/30, acc, 1e-9)
	assert.Equal(t, before, model.Graph().Len(), "prediction leaves no nodes behind")

	assert.Equal(t, 0.0, train.Evaluate(model, &data.Dataset{}))
}

func TestSaveLoadModel(t *testing.T) {
	tr, err := train.New(train.Config{Samples: 20, Epochs: 3, Hidden: []int{3}, Activation: nn.ReLU}, nil)
	require.NoError(t, err)
	_, err = tr.Run(context.Background(), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "moons.mgrd")
	require.NoError(t, train.SaveModel(path, tr.Model()))

	loaded, err := train.LoadModel(path, autodiff.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Inputs())
	require.Len(t, loaded.Layers(), 2)
	assert.Equal(t, nn.ReLU, loaded.Layers()[0].Activation())
	assert.Equal(t, nn.StateDict(tr.Model()), nn.StateDict(loaded))

	points := data.Grid(-1, 1, 3, -1, 1, 3)
	assert.Equal(t, train.Predict(tr.Model(), points), train.Predict(loaded, points))

	_, err = train.LoadModel(filepath.Join(t.TempDir(), "missing.mgrd"), autodiff.NewGraph())
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	cfg := train.Config{Samples: 20, TestSize: 10, Epochs: 3, Hidden: []int{2}}
	seeds := []int64{1, 2, 3}

	results, err := train.Sweep(context.Background(), cfg, seeds, parallel.Config{Enabled: true, NumWorkers: 2}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, seeds[i], r.Seed)
		assert.Len(t, r.Result.Steps, 3)
	}

	// Runs are independent of scheduling.
	seq, err := train.Sweep(context.Background(), cfg, seeds, parallel.Config{Enabled: false}, nil)
	require.NoError(t, err)
	assert.Equal(t, seq, results)

	_, err = train.Sweep(context.Background(), cfg, nil, parallel.DefaultConfig(), nil)
	assert.ErrorIs(t, err, train.ErrInvalidConfig)

	cfg.Momentum = 2
	_, err = train.Sweep(context.Background(), cfg, seeds, parallel.DefaultConfig(), nil)
	assert.ErrorIs(t, err, train.ErrInvalidConfig)
}

func TestSweep_SeedZero(t *testing.T) {
	cfg := train.Config{Samples: 20, TestSize: 10, Epochs: 2}

	results, err := train.Sweep(context.Background(), cfg, []int64{0, 42}, parallel.Config{}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, int64(0), results[0].Seed)
	assert.NotEqual(t, results[1].Result.Final().Loss, results[0].Result.Final().Loss,
		"seed 0 must not fall back to another seed")

	// The reported seed is the one that trained.
	cfg.Seed = 0
	tr, err := train.New(cfg, nil)
	require.NoError(t, err)
	res, err := tr.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, res.Final(), results[0].Result.Final())
}
