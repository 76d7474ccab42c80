// Package ops defines the closed set of scalar operators understood by the
// autodiff graph, together with their forward formulas and local gradient rules.
//
// Each operator provides:
//   - Forward pass: computed eagerly from operand values when a node is built
//   - Backward pass: contributions pushed into each operand's gradient
//
// Supported operators:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Sub: d(a-b)/da = 1, d(a-b)/db = -1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Div: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - Tanh: d(tanh(x))/dx = 1 - tanh²(x)
//   - ReLU: d(ReLU(x))/dx = 1 if x > 0, else 0
//   - Exp: d(exp(x))/dx = exp(x)
//   - Pow: d(x^e)/dx = e * x^(e-1), exponent is a constant
package ops

import "fmt"

// Kind identifies the operator that produced a node.
type Kind uint8

// Operator kinds.
const (
	Leaf Kind = iota
	Add
	Sub
	Mul
	Div
	Tanh
	ReLU
	Exp
	Pow
)

// Arity returns the number of operands a node of this kind must carry.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Tanh, ReLU, Exp:
		return 1
	case Add, Sub, Mul, Div, Pow:
		return 2
	default:
		panic(fmt.Sprintf("ops: unknown operator kind %d", uint8(k)))
	}
}

// Binary reports whether both operand slots hold differentiable inputs.
// Pow is excluded: its second slot is a constant exponent.
func (k Kind) Binary() bool {
	switch k {
	case Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

// String returns the operator name.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Exp:
		return "exp"
	case Pow:
		return "pow"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Symbol returns the infix symbol for binary kinds and the function name otherwise.
func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	default:
		return k.String()
	}
}

// checkArity panics if the number of inputs does not match the operator.
func checkArity(name string, k Kind, n int) {
	if want := k.Arity(); n != want {
		panic(fmt.Sprintf("%s: %s expects %d operand(s), got %d", name, k, want, n))
	}
}
