package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a handle to a node in a Graph.
//
// Values are small and meant to be passed by value. Equality is identity:
// two Values compare equal iff they refer to the same node, regardless of the
// numbers they hold. This makes Value usable as a map key.
//
// The zero Value refers to no node; using it panics.
type Value struct {
	g   *Graph
	id  int32
	gen uint32
}

// Graph returns the graph owning the node.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the arena index of the node.
func (v Value) ID() int {
	return int(v.id)
}

// Valid reports whether v refers to a live node.
func (v Value) Valid() bool {
	return v.g != nil && int(v.id) < len(v.g.nodes) && v.g.nodes[v.id].gen == v.gen
}

// Get returns the forward value.
func (v Value) Get() float64 {
	return v.g.node(v).value
}

// Set overwrites the forward value in place. The gradient is untouched.
//
// This is meant for parameter updates on leaves:
//
//	p.Set(p.Get() - lr*p.Grad())
//
// Nodes derived from v are not recomputed.
func (v Value) Set(value float64) {
	v.g.node(v).value = value
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.g.node(v).grad
}

// SetGrad overwrites the accumulated gradient.
func (v Value) SetGrad(grad float64) {
	v.g.node(v).grad = grad
}

// Label returns the debug label (empty if none).
func (v Value) Label() string {
	return v.g.node(v).label
}

// SetLabel sets the debug label.
func (v Value) SetLabel(label string) Value {
	v.g.node(v).label = label
	return v
}

// Op returns the operator that produced the node.
func (v Value) Op() ops.Kind {
	return v.g.node(v).op
}

// Operands returns handles to the node's operands in slot order.
// Leaves return nil.
func (v Value) Operands() []Value {
	v.g.check(v)
	ids := v.g.operandsOf(v.id)
	if len(ids) == 0 {
		return nil
	}
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = v.g.handle(id)
	}
	return out
}

// Backward computes gradients of v with respect to every node it depends on.
// See Graph.Backward.
func (v Value) Backward() {
	v.g.Backward(v)
}

// ZeroGrad resets the gradient of v and everything it depends on.
// See Graph.ZeroGrad.
func (v Value) ZeroGrad() {
	v.g.ZeroGrad(v)
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if !v.Valid() {
		return "Value(<invalid>)"
	}
	return fmt.Sprintf("Value(%g)", v.Get())
}

// GoString implements fmt.GoStringer and includes the gradient and label.
func (v Value) GoString() string {
	if !v.Valid() {
		return "Value(<invalid>)"
	}
	n := v.g.nodes[v.id]
	if n.label == "" {
		return fmt.Sprintf("Value(data:%g, grad:%g)", n.value, n.grad)
	}
	return fmt.Sprintf("Value(data:%g, grad:%g, %s)", n.value, n.grad, n.label)
}
