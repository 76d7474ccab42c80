package ops

import (
	"fmt"
	"math"
)

// Backward computes the gradient contributions of an output node to its operands.
//
// Parameters:
//   - k: operator that produced the output
//   - outGrad: fully accumulated gradient of the output node
//   - out: forward value of the output node
//   - inputs: forward values of the operands, in slot order
//
// The returned slice is aligned with the operand slots. It may be shorter than
// inputs: slots past its end receive nothing (the Pow exponent is a constant).
// Callers add each contribution into the matching operand gradient.
//
// Backward assumes distinct operands. When both slots of a binary operator hold
// the same node, use BackwardAliased instead.
func Backward(k Kind, outGrad, out float64, inputs []float64) []float64 {
	checkArity("backward", k, len(inputs))

	switch k {
	case Leaf:
		return nil
	case Add:
		return []float64{outGrad, outGrad}
	case Sub:
		return []float64{outGrad, -outGrad}
	case Mul:
		return []float64{outGrad * inputs[1], outGrad * inputs[0]}
	case Div:
		num, den := inputs[0], inputs[1]
		return []float64{outGrad / den, -outGrad * num / (den * den)}
	case Tanh:
		// out already holds tanh(x).
		return []float64{outGrad * (1 - out*out)}
	case ReLU:
		if out > 0 {
			return []float64{outGrad}
		}
		return []float64{0}
	case Exp:
		return []float64{outGrad * out}
	case Pow:
		base, exp := inputs[0], inputs[1]
		return []float64{outGrad * exp * math.Pow(base, exp-1)}
	default:
		panic(fmt.Sprintf("backward: unknown operator %s", k))
	}
}

// BackwardAliased computes the single contribution for a binary operator whose
// two operand slots reference the same node x, i.e. the derivative of f(x, x).
//
//	x + x = 2x   -> 2 * outGrad
//	x - x = 0    -> 0
//	x * x = x²   -> 2 * x * outGrad
//	x / x = 1    -> 0
func BackwardAliased(k Kind, outGrad, x float64) float64 {
	switch k {
	case Add:
		return outGrad * 2
	case Sub, Div:
		return 0
	case Mul:
		return outGrad * 2 * x
	default:
		panic(fmt.Sprintf("backward: %s has no aliased rule", k))
	}
}
