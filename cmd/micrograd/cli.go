package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/micrograd/internal/data"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/train"
)

func newRootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "micrograd",
		Short:         "Scalar reverse-mode autodiff and a tiny neural network trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
	rootCmd.AddCommand(newVersionCmd(), newMoonsCmd(), newSweepCmd(), newPredictCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "micrograd %s\n", version)
		},
	}
}

func newMoonsCmd() *cobra.Command {
	d := train.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "moons",
		Short: "Train an MLP on the two-moons dataset",
		Long: `Train a multi-layer perceptron to separate two interleaving half circles.

Each epoch is one full-batch step: forward over every sample, max-margin loss,
backward, SGD update with a linearly decaying learning rate.`,
		Args: cobra.NoArgs,
		RunE: MoonsHandler,
	}

	addTrainingFlags(cmd, d)
	flags := cmd.Flags()
	flags.Int("every", 10, "Report every N epochs (0 reports only the last)")
	flags.Int("grid", 0, "Print an NxN decision map after training (0 disables)")
	flags.Bool("trace", false, "Log every backward node (requires --verbose)")
	flags.String("save", "", "Write the trained parameters to this file")
	return cmd
}

func addTrainingFlags(cmd *cobra.Command, d train.Config) {
	flags := cmd.Flags()
	flags.Int("samples", d.Samples, "Training samples")
	flags.Int("test-size", d.TestSize, "Held-out samples (0 skips evaluation)")
	flags.Float64("noise", d.Noise, "Radial noise of the training set")
	flags.Float64("test-noise", d.TestNoise, "Radial noise of the held-out set")
	flags.Int64("seed", d.Seed, "Seed for training data and weights")
	flags.Int64("test-seed", d.TestSeed, "Seed for the held-out set")
	flags.Int("epochs", d.Epochs, "Number of full-batch steps")
	flags.IntSlice("hidden", d.Hidden, "Hidden layer widths")
	flags.String("activation", d.Activation.String(), "Neuron activation (tanh, relu, linear)")
	flags.Float64("lr-start", d.LRStart, "Learning rate at the first epoch")
	flags.Float64("lr-end", d.LREnd, "Learning rate the schedule decays toward over --epochs steps")
	flags.Float64("momentum", d.Momentum, "SGD momentum")
}

// MoonsHandler trains on the moons dataset and prints a progress table.
func MoonsHandler(cmd *cobra.Command, _ []string) error {
	cfg, err := moonsConfig(cmd)
	if err != nil {
		return err
	}
	every, _ := cmd.Flags().GetInt("every")
	grid, _ := cmd.Flags().GetInt("grid")
	if grid == 1 || grid < 0 {
		return fmt.Errorf("--grid must be 0 or at least 2, got %d", grid)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	trainer, err := train.New(cfg, logger)
	if err != nil {
		return err
	}

	var rows [][]string
	res, err := trainer.Run(cmd.Context(), func(s train.Step) {
		last := s.Epoch == cfg.Epochs-1
		if last || (every > 0 && s.Epoch%every == 0) {
			rows = append(rows, []string{
				strconv.Itoa(s.Epoch),
				strconv.FormatFloat(s.Loss, 'f', 6, 64),
				strconv.FormatFloat(s.Accuracy, 'f', 1, 64) + "%",
				strconv.FormatFloat(s.LR, 'f', 4, 64),
			})
		}
	})

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"EPOCH", "LOSS", "ACCURACY", "LR"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()

	if err != nil {
		return err
	}
	if cfg.TestSize > 0 {
		fmt.Fprintf(out, "\ntest accuracy: %.1f%%\n", res.TestAccuracy)
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := train.SaveModel(path, trainer.Model()); err != nil {
			return err
		}
		logger.Info("model saved", "path", path)
	}

	if grid > 0 {
		fmt.Fprintln(out)
		printDecisionMap(out, trainer.Model(), grid)
	}
	return nil
}

func moonsConfig(cmd *cobra.Command) (train.Config, error) {
	flags := cmd.Flags()
	var cfg train.Config
	var err error

	cfg.Samples, _ = flags.GetInt("samples")
	cfg.TestSize, _ = flags.GetInt("test-size")
	cfg.Noise, _ = flags.GetFloat64("noise")
	cfg.TestNoise, _ = flags.GetFloat64("test-noise")
	cfg.Seed, _ = flags.GetInt64("seed")
	cfg.TestSeed, _ = flags.GetInt64("test-seed")
	cfg.Epochs, _ = flags.GetInt("epochs")
	cfg.Hidden, _ = flags.GetIntSlice("hidden")
	cfg.LRStart, _ = flags.GetFloat64("lr-start")
	cfg.LREnd, _ = flags.GetFloat64("lr-end")
	cfg.Momentum, _ = flags.GetFloat64("momentum")
	if flags.Lookup("trace") != nil {
		cfg.Trace, _ = flags.GetBool("trace")
	}

	act, _ := flags.GetString("activation")
	if cfg.Activation, err = nn.ParseActivation(act); err != nil {
		return cfg, fmt.Errorf("%w: %w", train.ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printDecisionMap draws the sign of the model output over [-2, 2.5] × [-1.5, 2]
// as n rows of n characters, top row first.
func printDecisionMap(w io.Writer, model *nn.MLP, n int) {
	points := data.Grid(-2, 2.5, n, -1.5, 2, n)
	preds := train.Predict(model, points)

	var sb strings.Builder
	for row := n - 1; row >= 0; row-- {
		for col := range n {
			// Grid is laid out x-major.
			if preds[col*n+row] > 0 {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}
