package ops

import (
	"fmt"
	"math"
)

// Forward computes the value of an operator applied to the given operand values.
//
// Division and overflow follow IEEE-754: x/0 yields ±Inf or NaN, never an error.
// For Pow, inputs[1] is the exponent.
func Forward(k Kind, inputs ...float64) float64 {
	checkArity("forward", k, len(inputs))

	switch k {
	case Add:
		return inputs[0] + inputs[1]
	case Sub:
		return inputs[0] - inputs[1]
	case Mul:
		return inputs[0] * inputs[1]
	case Div:
		return inputs[0] / inputs[1]
	case Tanh:
		return math.Tanh(inputs[0])
	case ReLU:
		if inputs[0] > 0 {
			return inputs[0]
		}
		return 0
	case Exp:
		return math.Exp(inputs[0])
	case Pow:
		return math.Pow(inputs[0], inputs[1])
	default:
		panic(fmt.Sprintf("forward: %s has no forward formula", k))
	}
}
