// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// A Graph is an arena of nodes. Every node holds a forward value computed
// eagerly at construction, an accumulated gradient, the operator that produced
// it and the ids of its operands. A Value is a cheap, comparable handle to one
// node of one graph; two Values are equal iff they refer to the same node.
//
// Architecture:
//   - Graph: owns the node arena, addressed by integer ids
//   - Value: (graph, id, generation) handle with identity equality
//   - ops: closed operator set with forward formulas and local gradient rules
//   - Order/Backward: topological traversal and reverse accumulation
//
// Usage:
//
//	g := autodiff.NewGraph()
//	a := g.Leaf(2)
//	b := g.Leaf(3)
//	f := a.Add(b).Add(a.Mul(b)) // f = (a+b) + a*b
//
//	g.Backward(f)
//	fmt.Println(a.Grad()) // df/da = 1 + b = 4
//	fmt.Println(b.Grad()) // df/db = 1 + a = 5
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// node is a single vertex of the computation graph.
type node struct {
	value    float64
	grad     float64
	op       ops.Kind
	operands [2]int32 // only the first op.Arity() slots are meaningful
	gen      uint32   // graph generation the node was created in
	label    string
}

// Graph is an arena of scalar nodes.
type Graph struct {
	nodes  []node
	gen    uint32
	logger *slog.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for backward tracing.
// Per-node trace lines are emitted at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > cap(g.nodes) {
			g.nodes = make([]node, 0, n)
		}
	}
}

// NewGraph creates an empty graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		nodes:  make([]node, 0, 64), // Pre-allocate for common case
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Len returns the number of live nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Leaf creates an input or constant node.
func (g *Graph) Leaf(value float64) Value {
	return g.push(ops.Leaf, value, "")
}

// LeafLabeled creates a leaf node carrying a debug label.
func (g *Graph) LeafLabeled(value float64, label string) Value {
	return g.push(ops.Leaf, value, label)
}

// Mark is a position in the arena returned by Graph.Mark.
type Mark struct {
	n   int
	gen uint32
}

// Mark returns the current end of the arena.
//
// Nodes created after the mark can be dropped in one go with Rewind, which is
// how training loops reclaim the per-step loss graph while keeping the
// parameters alive.
func (g *Graph) Mark() Mark {
	return Mark{n: len(g.nodes), gen: g.gen}
}

// Rewind drops every node created after m.
//
// Values that referred to the dropped nodes become stale: using them panics
// instead of silently aliasing nodes created later. Values created before the
// mark stay valid. Rewind panics if m is from the future (the arena is already
// shorter than m).
func (g *Graph) Rewind(m Mark) {
	if m.n > len(g.nodes) {
		panic(fmt.Sprintf("rewind: mark %d is past the end of the arena (%d nodes)", m.n, len(g.nodes)))
	}
	if m.n > 0 && g.nodes[m.n-1].gen > m.gen {
		panic("rewind: mark is stale (arena was rewound past it)")
	}
	if m.n == len(g.nodes) {
		return
	}
	g.nodes = g.nodes[:m.n]
	g.gen++
}

// push appends a node and returns its handle.
func (g *Graph) push(op ops.Kind, value float64, label string, operands ...Value) Value {
	if len(operands) != op.Arity() {
		panic(fmt.Sprintf("autodiff: %s expects %d operand(s), got %d", op, op.Arity(), len(operands)))
	}

	n := node{
		value: value,
		op:    op,
		gen:   g.gen,
		label: label,
	}
	for i, o := range operands {
		g.check(o)
		n.operands[i] = o.id
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: int32(id), gen: g.gen}
}

// check panics if v does not refer to a live node of g.
func (g *Graph) check(v Value) {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	if v.g != g {
		panic("autodiff: Value belongs to a different graph")
	}
	if int(v.id) >= len(g.nodes) || g.nodes[v.id].gen != v.gen {
		panic(fmt.Sprintf("autodiff: stale Value #%d (graph was rewound)", v.id))
	}
}

// node returns the arena entry for v.
func (g *Graph) node(v Value) *node {
	g.check(v)
	return &g.nodes[v.id]
}

// operandsOf returns the operand ids of node id.
func (g *Graph) operandsOf(id int32) []int32 {
	n := &g.nodes[id]
	return n.operands[:n.op.Arity()]
}

// handle wraps an arena id into a Value.
func (g *Graph) handle(id int32) Value {
	return Value{g: g, id: id, gen: g.nodes[id].gen}
}

// trace logs one node at debug level.
func (g *Graph) trace(msg string, id int32) {
	if !g.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	n := &g.nodes[id]
	g.logger.Debug(msg,
		"id", id,
		"op", n.op.String(),
		"label", n.label,
		"value", n.value,
		"grad", n.grad,
	)
}
