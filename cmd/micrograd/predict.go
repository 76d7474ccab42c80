package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/train"
)

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict MODEL [X,Y...]",
		Short: "Classify points with a saved model",
		Example: `  micrograd moons --save moons.mgrd
  micrograd predict moons.mgrd 0,1 1.5,-0.5
  micrograd predict moons.mgrd --grid 40`,
		Args: cobra.MinimumNArgs(1),
		RunE: PredictHandler,
	}
	cmd.Flags().Int("grid", 0, "Print an NxN decision map instead of classifying points")
	return cmd
}

// PredictHandler loads a checkpoint and prints one line per point:
// the coordinates, the raw output and the predicted class (+1 or -1).
func PredictHandler(cmd *cobra.Command, args []string) error {
	grid, _ := cmd.Flags().GetInt("grid")
	switch {
	case grid == 1 || grid < 0:
		return fmt.Errorf("--grid must be 0 or at least 2, got %d", grid)
	case grid == 0 && len(args) < 2:
		return fmt.Errorf("no points given")
	}

	model, err := train.LoadModel(args[0], autodiff.NewGraph())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if grid > 0 {
		if model.Inputs() != 2 {
			return fmt.Errorf("decision map needs a model with 2 inputs, got %d", model.Inputs())
		}
		printDecisionMap(out, model, grid)
		return nil
	}

	points := make([][]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		p, err := parsePoint(arg, model.Inputs())
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	for i, y := range train.Predict(model, points) {
		class := -1
		if y > 0 {
			class = 1
		}
		fmt.Fprintf(out, "%s\t%+.6f\t%+d\n", args[i+1], y, class)
	}
	return nil
}

func parsePoint(s string, dims int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != dims {
		return nil, fmt.Errorf("point %q: want %d comma-separated values, got %d", s, dims, len(fields))
	}
	p := make([]float64, dims)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", s, err)
		}
		p[i] = v
	}
	return p, nil
}
