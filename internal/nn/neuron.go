package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(b + w₁x₁ + … + wₖxₖ).
//
// Weights and bias are initialized from U(-1, 1).
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	act     Activation
}

// NewNeuron creates a neuron with nin weights in graph g.
//
// Parameters:
//   - g: Graph the parameters live in
//   - name: Prefix for parameter names
//   - nin: Number of inputs (and weights)
//   - act: Activation applied to the weighted sum
//   - rng: Random source for initialization
func NewNeuron(g *autodiff.Graph, name string, nin int, act Activation, rng *rand.Rand) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("nn: neuron needs at least one input, got %d", nin))
	}

	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), g.Leaf(Uniform(rng, 1)))
	}

	return &Neuron{
		weights: weights,
		bias:    NewParameter(name+".b", g.Leaf(Uniform(rng, 1))),
		act:     act,
	}
}

// Forward computes the neuron output for one input instance.
//
// Inputs beyond the number of weights are ignored; missing inputs contribute
// nothing (as if they were zero).
func (n *Neuron) Forward(inputs []autodiff.Value) autodiff.Value {
	sum := n.bias.Value()
	for i, w := range n.weights {
		if i >= len(inputs) {
			break
		}
		sum = sum.Add(w.Value().Mul(inputs[i]))
	}
	return n.act.Apply(sum)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}
