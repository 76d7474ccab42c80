package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a set of neurons that all receive the same input instance.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("nn: layer needs at least one neuron, got %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, fmt.Sprintf("%s.n%d", name, i), nin, act, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward passes the same inputs to every neuron and returns one output per neuron.
func (l *Layer) Forward(inputs []autodiff.Value) []autodiff.Value {
	outs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(inputs)
	}
	return outs
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// Activation returns the activation shared by the layer's neurons.
func (l *Layer) Activation() Activation {
	return l.neurons[0].Activation()
}
