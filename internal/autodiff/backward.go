package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Backward computes the gradient of root with respect to every node it
// depends on and accumulates it into each node's grad field.
//
// Algorithm:
//  1. Collect the topological order of the subgraph (operands first)
//  2. Seed root's gradient with 1 (d root / d root)
//  3. Walk the order in reverse, applying each node's local gradient rule
//
// Because the walk is strictly reverse-topological, a node's gradient has
// received contributions from all of its consumers before its own rule runs.
//
// Gradients are accumulated with +=, never reset. Calling Backward twice on
// the same root without ZeroGrad in between double counts; clearing them is
// the caller's job.
func (g *Graph) Backward(root Value) {
	order := g.order(root)

	g.nodes[root.id].grad = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		g.propagate(id)
		g.trace("backward", id)
	}
}

// propagate pushes the gradient of node id into its operands.
func (g *Graph) propagate(id int32) {
	n := &g.nodes[id]
	if n.op == ops.Leaf {
		return
	}

	operands := g.operandsOf(id)

	// Both slots referencing one node: d/dx f(x, x) has its own formula.
	if n.op.Binary() && operands[0] == operands[1] {
		x := &g.nodes[operands[0]]
		x.grad += ops.BackwardAliased(n.op, n.grad, x.value)
		return
	}

	var inputs [2]float64
	for i, o := range operands {
		inputs[i] = g.nodes[o].value
	}

	grads := ops.Backward(n.op, n.grad, n.value, inputs[:len(operands)])
	for i, o := range operands {
		if i >= len(grads) {
			break
		}
		g.nodes[o].grad += grads[i]
	}
}
