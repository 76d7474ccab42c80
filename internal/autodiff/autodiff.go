package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// apply computes the forward value of op eagerly and records a new node.
// Operands are never mutated.
func (g *Graph) apply(op ops.Kind, operands ...Value) Value {
	inputs := make([]float64, len(operands))
	for i, o := range operands {
		inputs[i] = g.node(o).value
	}
	return g.push(op, ops.Forward(op, inputs...), "", operands...)
}

// binary records a two-operand node after checking both operands live in v's graph.
func (v Value) binary(op ops.Kind, other Value) Value {
	return v.g.apply(op, v, other)
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	return v.binary(ops.Add, other)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.binary(ops.Sub, other)
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	return v.binary(ops.Mul, other)
}

// Div returns v / other.
//
// Division by zero is not an error: the result is ±Inf or NaN per IEEE-754
// and propagates through backward the same way.
func (v Value) Div(other Value) Value {
	return v.binary(ops.Div, other)
}

// constant coerces a raw scalar into a fresh leaf in v's graph.
func (v Value) constant(s float64) Value {
	v.g.check(v)
	return v.g.Leaf(s)
}

// AddScalar returns v + s. The scalar becomes a new leaf in operand slot 1.
func (v Value) AddScalar(s float64) Value {
	return v.binary(ops.Add, v.constant(s))
}

// SubScalar returns v - s.
func (v Value) SubScalar(s float64) Value {
	return v.binary(ops.Sub, v.constant(s))
}

// MulScalar returns v * s.
func (v Value) MulScalar(s float64) Value {
	return v.binary(ops.Mul, v.constant(s))
}

// DivScalar returns v / s.
func (v Value) DivScalar(s float64) Value {
	return v.binary(ops.Div, v.constant(s))
}

// ScalarAdd returns s + v. The scalar becomes a new leaf in operand slot 0.
func ScalarAdd(s float64, v Value) Value {
	return v.constant(s).binary(ops.Add, v)
}

// ScalarSub returns s - v.
func ScalarSub(s float64, v Value) Value {
	return v.constant(s).binary(ops.Sub, v)
}

// ScalarMul returns s * v.
func ScalarMul(s float64, v Value) Value {
	return v.constant(s).binary(ops.Mul, v)
}

// ScalarDiv returns s / v.
func ScalarDiv(s float64, v Value) Value {
	return v.constant(s).binary(ops.Div, v)
}

// Neg returns -v, recorded as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Tanh applies the hyperbolic tangent.
func (v Value) Tanh() Value {
	return v.g.apply(ops.Tanh, v)
}

// ReLU applies max(0, v).
func (v Value) ReLU() Value {
	return v.g.apply(ops.ReLU, v)
}

// Exp returns e^v.
func (v Value) Exp() Value {
	return v.g.apply(ops.Exp, v)
}

// Pow returns v^exponent.
//
// The exponent is stored as a leaf in operand slot 1 and treated as a
// constant: backward never pushes gradient into it.
func (v Value) Pow(exponent float64) Value {
	return v.g.apply(ops.Pow, v, v.constant(exponent))
}

// Sum folds values left to right with Add. It panics on an empty list.
func Sum(values ...Value) Value {
	if len(values) == 0 {
		panic("autodiff: Sum of no values")
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = acc.Add(v)
	}
	return acc
}
