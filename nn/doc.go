// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks on top of autodiff.
//
// # Overview
//
// This package contains:
//   - Neuron: weighted sum plus bias, followed by an activation
//   - Layer: independent neurons sharing the same inputs
//   - MLP: layers chained output to input
//   - Losses: MaxMarginLoss, MSELoss
//   - Parameter: a named trainable leaf
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.Tanh, nn.NewRand(1))
//
//	    out := model.ForwardScalars([]float64{2, 3, -1})[0]
//	    g.ZeroGrad(out)
//	    g.Backward(out)
//	}
//
// # Initialization
//
// Weights and biases are drawn uniformly from [-1, 1]. Passing the same
// seeded source to NewMLP reproduces the same network.
package nn
