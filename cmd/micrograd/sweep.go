package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/born-ml/micrograd/internal/train"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Train the moons model once per seed and compare the runs",
		Args:  cobra.NoArgs,
		RunE:  SweepHandler,
	}

	addTrainingFlags(cmd, train.DefaultConfig())
	cmd.Flags().Int("runs", 4, "Number of seeds, starting at --seed")
	cmd.Flags().Int("workers", parallel.DefaultConfig().NumWorkers, "Runs trained concurrently")
	return cmd
}

// SweepHandler trains one model per seed in parallel and prints a summary table.
func SweepHandler(cmd *cobra.Command, _ []string) error {
	cfg, err := moonsConfig(cmd)
	if err != nil {
		return err
	}
	runs, _ := cmd.Flags().GetInt("runs")
	workers, _ := cmd.Flags().GetInt("workers")
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}

	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	pcfg := parallel.Config{Enabled: workers > 1, NumWorkers: workers}

	results, err := train.Sweep(cmd.Context(), cfg, seeds, pcfg, logger)
	if err != nil {
		return err
	}

	var data [][]string
	accs := make([]float64, len(results))
	for i, r := range results {
		final := r.Result.Final()
		accs[i] = r.Result.TestAccuracy
		data = append(data, []string{
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatFloat(final.Loss, 'f', 6, 64),
			strconv.FormatFloat(final.Accuracy, 'f', 1, 64) + "%",
			strconv.FormatFloat(r.Result.TestAccuracy, 'f', 1, 64) + "%",
		})
	}

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"SEED", "LOSS", "TRAIN", "TEST"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	mean, std := stat.MeanStdDev(accs, nil)
	if len(accs) < 2 {
		std = 0
	}
	fmt.Fprintf(out, "\ntest accuracy: %.1f%% ± %.1f\n", mean, std)
	return nil
}
