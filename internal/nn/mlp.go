package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: layers chained so that the outputs of
// layer i are the inputs of layer i+1.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 2, []int{16, 16, 1}, nn.Tanh, nn.NewRand(42))
//	out := model.ForwardScalars([]float64{0.5, -1.2})[0]
type MLP struct {
	g      *autodiff.Graph
	nin    int
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of outs.
// Every neuron uses the same activation.
func NewMLP(g *autodiff.Graph, nin int, outs []int, act Activation, rng *rand.Rand) *MLP {
	if len(outs) == 0 {
		panic("nn: MLP needs at least one layer")
	}

	layers := make([]*Layer, len(outs))
	in := nin
	for i, out := range outs {
		layers[i] = NewLayer(g, fmt.Sprintf("layer%d", i), in, out, act, rng)
		// The next layer takes this layer's outputs.
		in = out
	}

	return &MLP{g: g, nin: nin, layers: layers}
}

// Forward applies all layers in sequence.
func (m *MLP) Forward(inputs []autodiff.Value) []autodiff.Value {
	output := inputs
	for _, layer := range m.layers {
		output = layer.Forward(output)
	}
	return output
}

// ForwardScalars wraps raw inputs as leaves and runs Forward.
func (m *MLP) ForwardScalars(inputs []float64) []autodiff.Value {
	leaves := make([]autodiff.Value, len(inputs))
	for i, x := range inputs {
		leaves[i] = m.g.Leaf(x)
	}
	return m.Forward(leaves)
}

// Parameters returns all weights and biases, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Inputs returns the number of inputs of the first layer.
func (m *MLP) Inputs() int {
	return m.nin
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Graph returns the graph the parameters live in.
func (m *MLP) Graph() *autodiff.Graph {
	return m.g
}
