package graph

import "fmt"

// Node is one value in a computational graph: the recorded result of an input
// or an operation, the local partial derivative with respect to each parent,
// and the adjoint accumulated by the most recent backward pass.
type Node struct {
	b        *Builder
	id       int
	value    float64
	parents  []int     // arena indices, each strictly smaller than id
	partials []float64 // local derivative with respect to each parent
	adjoint  float64
}

// Value returns the recorded numeric value.
func (n *Node) Value() float64 { return n.value }

// Float returns the recorded numeric value.
func (n *Node) Float() float64 { return n.value }

// Adjoint returns the derivative of the last differentiated root with respect
// to this node, as accumulated by the most recent Backward. Zero before any
// backward pass and for nodes the root does not depend on.
func (n *Node) Adjoint() float64 { return n.adjoint }

// ID returns the node's index in its session arena, which is also its
// creation order.
func (n *Node) ID() int { return n.id }

// IsLeaf reports whether the node is an input with no parents.
func (n *Node) IsLeaf() bool { return len(n.parents) == 0 }

// Parents returns the operand nodes this node was computed from, in operand
// order.
func (n *Node) Parents() []*Node {
	if len(n.parents) == 0 {
		return nil
	}
	parents := make([]*Node, len(n.parents))
	for i, id := range n.parents {
		parents[i] = n.b.nodes[id]
	}
	return parents
}

// Partials returns the local partial derivatives, aligned with Parents.
func (n *Node) Partials() []float64 { return n.partials }

func (n *Node) String() string {
	return fmt.Sprintf("Node(%g)", n.value)
}
