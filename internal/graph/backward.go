package graph

// Backward runs one reverse pass from root and returns the adjoint of every
// reachable node: the derivative of root's value with respect to that node.
//
// The pass resets all adjoints in the session, seeds root's adjoint with 1,
// and sweeps the topological order from root outward, accumulating into each
// parent:
//
//	parent.adjoint += node.adjoint · ∂node/∂parent
//
// A node used through several paths receives one contribution per use, which
// is exactly the sum rule: d(x·x)/dx accumulates x + x. Leaves the root does
// not depend on keep adjoint 0. The result is independent of which valid
// topological order the sweep uses.
//
// Backward may run repeatedly on one session, once per output root; each run
// starts from cleared adjoints.
func Backward(root *Node) (map[*Node]float64, error) {
	order, err := TopoSort(root)
	if err != nil {
		return nil, err
	}

	b := root.b
	for _, n := range b.nodes {
		n.adjoint = 0
	}
	root.adjoint = 1

	// order holds parents before children, so walk it backwards to process
	// every node before any of its parents.
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		for j, pid := range n.parents {
			b.nodes[pid].adjoint += n.adjoint * n.partials[j]
		}
	}

	adjoints := make(map[*Node]float64, len(order))
	for _, n := range order {
		adjoints[n] = n.adjoint
	}
	return adjoints, nil
}
