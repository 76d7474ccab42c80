// Package data generates small two-dimensional datasets for the demos.
package data

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Dataset holds points and ±1 labels.
type Dataset struct {
	Inputs [][]float64 // [num_samples, 2]
	Labels []float64   // [num_samples], 1 or -1
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// MakeMoons generates two interleaving half circles.
//
// The first n/2 points lie on the upper unit half circle and are labeled 1.
// The rest are mirrored and shifted by (+1, +0.5) and labeled -1. noise scales
// a uniform radial jitter in [0, noise). The same seed yields the same data.
func MakeMoons(n int, noise float64, seed int64) (*Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("make moons: sample count must be positive, got %d", n)
	}
	if noise < 0 || math.IsNaN(noise) {
		return nil, fmt.Errorf("make moons: noise must be non-negative, got %v", noise)
	}

	//nolint:gosec // Dataset generation is not security-critical
	rng := rand.New(rand.NewSource(seed))

	ds := &Dataset{
		Inputs: make([][]float64, n),
		Labels: make([]float64, n),
	}
	for i := range n {
		angle := rng.Float64() * math.Pi
		radius := 1.0 + noise*rng.Float64()

		x := radius * math.Cos(angle)
		y := radius * math.Sin(angle)

		if i < n/2 {
			ds.Inputs[i] = []float64{x, y}
			ds.Labels[i] = 1
		} else {
			ds.Inputs[i] = []float64{x + 1.0, -y + 0.5}
			ds.Labels[i] = -1
		}
	}
	return ds, nil
}

// Grid returns nx*ny evaluation points covering [xmin, xmax] × [ymin, ymax],
// row by row along x.
func Grid(xmin, xmax float64, nx int, ymin, ymax float64, ny int) [][]float64 {
	if nx < 2 || ny < 2 {
		panic(fmt.Sprintf("grid: need at least 2 points per axis, got %dx%d", nx, ny))
	}

	xs := floats.Span(make([]float64, nx), xmin, xmax)
	ys := floats.Span(make([]float64, ny), ymin, ymax)

	points := make([][]float64, 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			points = append(points, []float64{x, y})
		}
	}
	return points
}
