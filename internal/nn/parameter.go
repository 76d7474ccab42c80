package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// It wraps a leaf Value so optimizers can update it in place without
// reallocating the node; any graph built later from the parameter sees the new
// value.
//
// Example:
//
//	w := nn.NewParameter("neuron0.w0", g.Leaf(0.5))
//	// ... build loss, backward ...
//	w.Set(w.Get() - lr*w.Grad())
type Parameter struct {
	name  string         // Parameter name (e.g., "layer0.neuron3.w1")
	value autodiff.Value // Leaf node holding the parameter
}

// NewParameter creates a new trainable parameter backed by a leaf value.
func NewParameter(name string, value autodiff.Value) *Parameter {
	if value.Valid() && value.Label() == "" {
		value.SetLabel(name)
	}
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the underlying graph value.
func (p *Parameter) Value() autodiff.Value {
	return p.value
}

// Get returns the current parameter value.
func (p *Parameter) Get() float64 {
	return p.value.Get()
}

// Set overwrites the parameter value in place.
func (p *Parameter) Set(v float64) {
	p.value.Set(v)
}

// Grad returns the gradient accumulated by the last backward pass.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.value.SetGrad(0)
}
