// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// A Graph records every arithmetic or activation operation applied to its
// Values, computing each result eagerly. Backward then walks the recorded
// graph once in reverse topological order and accumulates d(root)/d(node)
// into every node that contributed, including nodes used several times.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.LeafLabeled(3, "x")
//	    y := x.Mul(x).Add(x) // y = x² + x
//
//	    g.ZeroGrad(y)
//	    g.Backward(y)
//	    fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 7
//	}
package autodiff

import (
	"log/slog"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Graph is an arena of scalar nodes.
type Graph = autodiff.Graph

// Value is an identity-compared handle to a node of a Graph.
type Value = autodiff.Value

// Mark is a position in a Graph arena, see Graph.Mark and Graph.Rewind.
type Mark = autodiff.Mark

// Option configures a Graph.
type Option = autodiff.Option

// Op identifies the operator that produced a node.
type Op = ops.Kind

// Operator kinds.
const (
	Leaf = ops.Leaf
	Add  = ops.Add
	Sub  = ops.Sub
	Mul  = ops.Mul
	Div  = ops.Div
	Tanh = ops.Tanh
	ReLU = ops.ReLU
	Exp  = ops.Exp
	Pow  = ops.Pow
)

// NewGraph creates an empty graph.
func NewGraph(opts ...Option) *Graph {
	return autodiff.NewGraph(opts...)
}

// WithLogger sets the logger used for per-node backward tracing (debug level).
func WithLogger(logger *slog.Logger) Option {
	return autodiff.WithLogger(logger)
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return autodiff.WithCapacity(n)
}

// ScalarAdd returns s + v.
func ScalarAdd(s float64, v Value) Value {
	return autodiff.ScalarAdd(s, v)
}

// ScalarSub returns s - v.
func ScalarSub(s float64, v Value) Value {
	return autodiff.ScalarSub(s, v)
}

// ScalarMul returns s * v.
func ScalarMul(s float64, v Value) Value {
	return autodiff.ScalarMul(s, v)
}

// ScalarDiv returns s / v.
func ScalarDiv(s float64, v Value) Value {
	return autodiff.ScalarDiv(s, v)
}

// Sum folds values left to right with Add.
func Sum(values ...Value) Value {
	return autodiff.Sum(values...)
}
