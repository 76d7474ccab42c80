// Package train runs full-batch binary classification of the moons dataset
// with an MLP, a max-margin loss and SGD with a linearly decaying learning rate.
package train

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/data"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// Step reports the state after one training epoch.
type Step struct {
	Epoch    int
	Loss     float64 // Loss before the update
	Accuracy float64 // Training accuracy in percent, before the update
	LR       float64 // Learning rate used for the update
}

// Result is the outcome of a training run.
type Result struct {
	Steps        []Step
	TestAccuracy float64 // Accuracy on the held-out set in percent, 0 without one
}

// Final returns the last recorded step.
func (r *Result) Final() Step {
	if len(r.Steps) == 0 {
		return Step{}
	}
	return r.Steps[len(r.Steps)-1]
}

// Trainer owns the graph, model, optimizer and datasets of one run.
type Trainer struct {
	cfg      Config
	logger   *slog.Logger
	g        *autodiff.Graph
	model    *nn.MLP
	opt      *optim.SGD
	schedule optim.LinearDecay
	train    *data.Dataset
	test     *data.Dataset
}

// New validates cfg (after filling defaults) and prepares a run.
// A nil logger discards output.
func New(cfg Config, logger *slog.Logger) (*Trainer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	trainSet, err := data.MakeMoons(cfg.Samples, cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("training set: %w", err)
	}
	testSet := &data.Dataset{}
	if cfg.TestSize > 0 {
		if testSet, err = data.MakeMoons(cfg.TestSize, cfg.TestNoise, cfg.TestSeed); err != nil {
			return nil, fmt.Errorf("test set: %w", err)
		}
	}

	var opts []autodiff.Option
	if cfg.Trace {
		opts = append(opts, autodiff.WithLogger(logger))
	}
	g := autodiff.NewGraph(opts...)
	outs := append(append([]int(nil), cfg.Hidden...), 1)
	model := nn.NewMLP(g, 2, outs, cfg.Activation, nn.NewRand(cfg.Seed))

	logger.Info("model initialized",
		"layers", outs,
		"activation", cfg.Activation.String(),
		"parameters", nn.NumParameters(model),
	)

	return &Trainer{
		cfg:    cfg,
		logger: logger,
		g:      g,
		model:  model,
		opt: optim.NewSGD(model.Parameters(), optim.SGDConfig{
			LR:       cfg.LRStart,
			Momentum: cfg.Momentum,
		}),
		schedule: optim.LinearDecay{Start: cfg.LRStart, End: cfg.LREnd, Steps: cfg.Epochs},
		train:    trainSet,
		test:     testSet,
	}, nil
}

// Model returns the network being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Config returns the effective configuration (defaults filled).
func (t *Trainer) Config() Config {
	return t.cfg
}

// Step runs one full-batch epoch: forward over every sample, max-margin loss,
// zero-grad, backward, SGD update. The per-epoch graph is dropped afterwards.
func (t *Trainer) Step(epoch int) Step {
	mark := t.g.Mark()
	defer t.g.Rewind(mark)

	preds := make([]autodiff.Value, t.train.Len())
	hits := make([]float64, t.train.Len())
	for i, x := range t.train.Inputs {
		preds[i] = t.model.ForwardScalars(x)[0]
		if preds[i].Get()*t.train.Labels[i] > 0 {
			hits[i] = 1
		}
	}
	loss := nn.MaxMarginLoss(preds, t.train.Labels)

	lr := optim.Apply(t.opt, t.schedule, epoch)
	t.g.ZeroGrad(loss)
	t.g.Backward(loss)
	t.opt.Step()

	return Step{
		Epoch:    epoch,
		Loss:     loss.Get(),
		Accuracy: stat.Mean(hits, nil) * 100,
		LR:       lr,
	}
}

// Run trains for cfg.Epochs epochs, calling report (if non-nil) after each,
// then measures accuracy on the held-out set. The context is checked between
// epochs.
func (t *Trainer) Run(ctx context.Context, report func(Step)) (*Result, error) {
	res := &Result{Steps: make([]Step, 0, t.cfg.Epochs)}

	for epoch := range t.cfg.Epochs {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("training interrupted at epoch %d: %w", epoch, err)
		}

		step := t.Step(epoch)
		res.Steps = append(res.Steps, step)
		t.logger.Debug("epoch", "step", step.Epoch, "loss", step.Loss, "accuracy", step.Accuracy, "lr", step.LR)
		if report != nil {
			report(step)
		}
	}

	res.TestAccuracy = Evaluate(t.model, t.test)
	t.logger.Info("training finished",
		"loss", res.Final().Loss,
		"train_accuracy", res.Final().Accuracy,
		"test_accuracy", res.TestAccuracy,
	)
	return res, nil
}

// Predict returns the model output for each point. No graph nodes outlive the call.
func Predict(model *nn.MLP, points [][]float64) []float64 {
	g := model.Graph()
	mark := g.Mark()
	defer g.Rewind(mark)

	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = model.ForwardScalars(p)[0].Get()
		g.Rewind(mark)
	}
	return out
}

// Evaluate returns the percentage of samples whose prediction has the sign of the label.
func Evaluate(model *nn.MLP, ds *data.Dataset) float64 {
	if ds.Len() == 0 {
		return 0
	}
	preds := Predict(model, ds.Inputs)
	hits := make([]float64, len(preds))
	for i, p := range preds {
		if p*ds.Labels[i] > 0 {
			hits[i] = 1
		}
	}
	return stat.Mean(hits, nil) * 100
}
