package autodiff

// Order returns every node reachable from root exactly once, in topological
// order: each node appears after all of its operands, and root is last.
//
// The traversal is an iterative depth-first post-order walk. Its visited set is
// allocated per call and sized to the arena, so repeated calls on a long-lived
// graph always see the whole subgraph.
func (g *Graph) Order(root Value) []Value {
	ids := g.order(root)
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = g.handle(id)
	}
	return out
}

// frame is a pending node on the traversal stack.
type frame struct {
	id   int32
	next int // index of the next operand slot to descend into
}

// order is Order on raw arena ids.
func (g *Graph) order(root Value) []int32 {
	g.check(root)

	visited := make([]bool, len(g.nodes))
	order := make([]int32, 0, 16)
	stack := []frame{{id: root.id}}
	visited[root.id] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := g.operandsOf(top.id)

		if top.next < len(operands) {
			child := operands[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}

		// All operands emitted: the node itself can follow them.
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}

// ZeroGrad sets the gradient of root and every node it depends on to zero.
//
// Call it before reusing a graph for another backward pass (for example when
// parameters persist across training steps); otherwise contributions from the
// previous pass are added into the new one.
func (g *Graph) ZeroGrad(root Value) {
	for _, id := range g.order(root) {
		g.nodes[id].grad = 0
	}
}
