// Package nn implements small neural network modules on top of the scalar
// autodiff graph.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable leaf values with gradient access
//   - Neuron: act(b + Σ wᵢxᵢ)
//   - Layer: Neurons sharing one input
//   - MLP: Layers chained so each layer feeds the next
//   - Losses: max-margin (hinge) and mean squared error
//
// Every weight and bias is a leaf in the graph passed to the constructor, so
// a single Backward call on a loss reaches all of them.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
type Module interface {
	// Forward computes the outputs of the module for one input instance.
	Forward(inputs []autodiff.Value) []autodiff.Value

	// Parameters returns all trainable parameters of this module, including
	// those of nested modules.
	Parameters() []*Parameter
}

// ZeroGrad clears the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of scalar parameters of m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
