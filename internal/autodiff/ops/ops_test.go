package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

func TestKind_Arity(t *testing.T) {
	tests := []struct {
		kind  ops.Kind
		arity int
	}{
		{ops.Leaf, 0},
		{ops.Add, 2},
		{ops.Sub, 2},
		{ops.Mul, 2},
		{ops.Div, 2},
		{ops.Tanh, 1},
		{ops.ReLU, 1},
		{ops.Exp, 1},
		{ops.Pow, 2},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.arity, tt.kind.Arity())
		})
	}
}

func TestKind_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { ops.Kind(200).Arity() })
	assert.Equal(t, "kind(200)", ops.Kind(200).String())
}

func TestForward(t *testing.T) {
	assert.Equal(t, 5.0, ops.Forward(ops.Add, 2, 3))
	assert.Equal(t, -1.0, ops.Forward(ops.Sub, 2, 3))
	assert.Equal(t, 6.0, ops.Forward(ops.Mul, 2, 3))
	assert.InDelta(t, 0.6667, ops.Forward(ops.Div, 2, 3), 1e-4)
	assert.Equal(t, 0.0, ops.Forward(ops.Tanh, 0))
	assert.Equal(t, 0.0, ops.Forward(ops.ReLU, -2))
	assert.Equal(t, 1.5, ops.Forward(ops.ReLU, 1.5))
	assert.InDelta(t, math.E, ops.Forward(ops.Exp, 1), 1e-12)
	assert.Equal(t, 8.0, ops.Forward(ops.Pow, 2, 3))
	assert.InDelta(t, 3.0, ops.Forward(ops.Pow, 9, 0.5), 1e-12)
}

// Division by zero is not an error: IEEE-754 results propagate.
func TestForward_IEEEDivision(t *testing.T) {
	assert.True(t, math.IsInf(ops.Forward(ops.Div, 1, 0), 1))
	assert.True(t, math.IsInf(ops.Forward(ops.Div, -1, 0), -1))
	assert.True(t, math.IsNaN(ops.Forward(ops.Div, 0, 0)))
}

func TestForward_ArityMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { ops.Forward(ops.Add, 1) })
	assert.Panics(t, func() { ops.Forward(ops.Tanh, 1, 2) })
	assert.Panics(t, func() { ops.Forward(ops.Leaf) })
}

func TestBackward_Rules(t *testing.T) {
	const o = 2.0

	tests := []struct {
		name   string
		kind   ops.Kind
		inputs []float64
		want   []float64
	}{
		{"add", ops.Add, []float64{2, 3}, []float64{o, o}},
		{"sub", ops.Sub, []float64{2, 3}, []float64{o, -o}},
		{"mul", ops.Mul, []float64{2, 3}, []float64{o * 3, o * 2}},
		{"div", ops.Div, []float64{2, 4}, []float64{o / 4, -o * 2 / 16}},
		{"pow", ops.Pow, []float64{3, 2}, []float64{o * 2 * 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ops.Forward(tt.kind, tt.inputs...)
			got := ops.Backward(tt.kind, o, out, tt.inputs)
			require.Len(t, got, len(tt.want))
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestBackward_Unary(t *testing.T) {
	// tanh: 1 - d²
	d := math.Tanh(0.5)
	assert.InDelta(t, 3*(1-d*d), ops.Backward(ops.Tanh, 3, d, []float64{0.5})[0], 1e-12)

	// relu masks on the output
	assert.Equal(t, []float64{3}, ops.Backward(ops.ReLU, 3, 0.5, []float64{0.5}))
	assert.Equal(t, []float64{0}, ops.Backward(ops.ReLU, 3, 0, []float64{-0.5}))

	// exp reuses the output
	e := math.Exp(1)
	assert.InDelta(t, 3*e, ops.Backward(ops.Exp, 3, e, []float64{1})[0], 1e-12)
}

func TestBackward_Leaf(t *testing.T) {
	assert.Nil(t, ops.Backward(ops.Leaf, 1, 5, nil))
}

func TestBackwardAliased(t *testing.T) {
	assert.Equal(t, 2.0, ops.BackwardAliased(ops.Add, 1, 7))
	assert.Equal(t, 0.0, ops.BackwardAliased(ops.Sub, 1, 7))
	assert.Equal(t, 6.0, ops.BackwardAliased(ops.Mul, 1, 3))
	assert.Equal(t, 0.0, ops.BackwardAliased(ops.Div, 1, 3))
	assert.Panics(t, func() { ops.BackwardAliased(ops.Tanh, 1, 3) })
}

func TestKind_Symbol(t *testing.T) {
	assert.Equal(t, "+", ops.Add.Symbol())
	assert.Equal(t, "^", ops.Pow.Symbol())
	assert.Equal(t, "tanh", ops.Tanh.Symbol())
	assert.True(t, ops.Mul.Binary())
	assert.False(t, ops.Pow.Binary())
}
