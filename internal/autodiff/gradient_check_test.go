package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// numericalGradient computes the derivative of f at x using central differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// TestNumericalGradient compares autodiff gradients against finite differences
// for every operator, including self-use of an operand.
func TestNumericalGradient(t *testing.T) {
	const epsilon = 1e-6

	tests := []struct {
		name  string
		point float64
		build func(x autodiff.Value) autodiff.Value
	}{
		{"square", 3, func(x autodiff.Value) autodiff.Value { return x.Mul(x) }},
		{"composite", 5, func(x autodiff.Value) autodiff.Value { return x.AddScalar(2).MulScalar(3) }},
		{"polynomial", 2, func(x autodiff.Value) autodiff.Value {
			// x³ - 2x² + x
			x2 := x.Mul(x)
			return x2.Mul(x).Sub(autodiff.ScalarMul(2, x2)).Add(x)
		}},
		{"reciprocal", 2, func(x autodiff.Value) autodiff.Value { return autodiff.ScalarDiv(1, x) }},
		{"quotient", 1.7, func(x autodiff.Value) autodiff.Value { return x.Tanh().Div(x.AddScalar(3)) }},
		{"tanh", 0.4, func(x autodiff.Value) autodiff.Value { return x.Tanh() }},
		{"relu", 0.9, func(x autodiff.Value) autodiff.Value { return x.MulScalar(2).ReLU() }},
		{"exp", -0.3, func(x autodiff.Value) autodiff.Value { return x.Exp().Mul(x) }},
		{"pow", 1.3, func(x autodiff.Value) autodiff.Value { return x.Pow(3.5) }},
		{"self-add", 0.8, func(x autodiff.Value) autodiff.Value { return x.Add(x).Tanh() }},
		{"self-sub", 0.8, func(x autodiff.Value) autodiff.Value { return x.Sub(x).Add(x) }},
		{"self-div", 0.8, func(x autodiff.Value) autodiff.Value { return x.Div(x).Mul(x) }},
		{"neuron", 0.25, func(x autodiff.Value) autodiff.Value {
			// tanh(w1*x + w2*x² + b) with shared x
			return x.MulScalar(-1.5).Add(x.Mul(x).MulScalar(0.7)).AddScalar(0.1).Tanh()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := autodiff.NewGraph()
			x := g.Leaf(tt.point)
			y := tt.build(x)
			g.Backward(y)
			autodiffGrad := x.Grad()

			f := func(v float64) float64 {
				fg := autodiff.NewGraph()
				return tt.build(fg.Leaf(v)).Get()
			}
			numericalGrad := numericalGradient(f, tt.point, epsilon)

			if math.Abs(autodiffGrad-numericalGrad) > 1e-5 {
				t.Errorf("Autodiff grad (%f) differs from numerical grad (%f) by %g",
					autodiffGrad, numericalGrad, autodiffGrad-numericalGrad)
			}
		})
	}
}
