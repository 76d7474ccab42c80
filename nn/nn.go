// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is the interface implemented by every trainable component.
type Module = nn.Module

// Parameter is a named trainable leaf.
type Parameter = nn.Parameter

// Activation selects a neuron's non-linearity.
type Activation = nn.Activation

// Supported activations.
const (
	Tanh   = nn.Tanh
	ReLU   = nn.ReLU
	Linear = nn.Linear
)

// ParseActivation parses "tanh", "relu" or "linear".
func ParseActivation(s string) (Activation, error) {
	return nn.ParseActivation(s)
}

// Neuron computes act(b + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights.
func NewNeuron(g *autodiff.Graph, name string, nin int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, name, nin, act, rng)
}

// Layer is a set of neurons applied to the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, name, nin, nout, act, rng)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of outs.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 2, []int{16, 16, 1}, nn.Tanh, nn.NewRand(42))
func NewMLP(g *autodiff.Graph, nin int, outs []int, act Activation, rng *rand.Rand) *MLP {
	return nn.NewMLP(g, nin, outs, act, rng)
}

// NewRand returns a deterministic source for weight initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}

// MaxMarginLoss returns mean(relu(1 - yᵢpᵢ)) for ±1 labels.
func MaxMarginLoss(preds []autodiff.Value, labels []float64) autodiff.Value {
	return nn.MaxMarginLoss(preds, labels)
}

// MSELoss returns the mean squared error between preds and targets.
func MSELoss(preds []autodiff.Value, targets []float64) autodiff.Value {
	return nn.MSELoss(preds, targets)
}
