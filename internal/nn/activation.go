package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation selects the non-linearity applied to a neuron's weighted sum.
type Activation int

// Supported activations.
const (
	Tanh Activation = iota // default
	ReLU
	Linear
)

// Apply applies the activation to v.
func (a Activation) Apply(v autodiff.Value) autodiff.Value {
	switch a {
	case Tanh:
		return v.Tanh()
	case ReLU:
		return v.ReLU()
	case Linear:
		return v
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("activation(%d)", int(a))
	}
}

// ParseActivation parses an activation name (case-insensitive).
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tanh", "":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	case "linear", "none":
		return Linear, nil
	default:
		return 0, fmt.Errorf("unknown activation %q (want tanh, relu or linear)", s)
	}
}
