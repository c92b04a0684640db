package graph

import "fmt"

// Depth-first visit states.
const (
	white uint8 = iota // not yet visited
	gray               // on the stack, parents in progress
	black              // finished, placed in the order
)

// TopoSort returns the nodes reachable from root ordered so that every node
// appears after all of its parents; root is therefore last. The walk is an
// iterative depth-first search over parent edges with the finished nodes
// collected in post-order.
//
// Returns ErrCycleDetected if a parent edge reaches a node whose own parents
// are still in progress. Construction order makes that impossible, so a
// cycle means the arena was corrupted.
func TopoSort(root *Node) ([]*Node, error) {
	b := root.b
	state := make([]uint8, len(b.nodes))
	order := make([]*Node, 0, len(b.nodes))

	type frame struct {
		id   int
		next int // index of the next parent edge to follow
	}
	stack := make([]frame, 0, 16)
	stack = append(stack, frame{id: root.id})
	state[root.id] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := b.nodes[top.id]
		if top.next < len(n.parents) {
			pid := n.parents[top.next]
			top.next++
			switch state[pid] {
			case white:
				state[pid] = gray
				stack = append(stack, frame{id: pid})
			case gray:
				return nil, fmt.Errorf("%w: node %d reached while its parents are in progress", ErrCycleDetected, pid)
			}
			continue
		}
		state[top.id] = black
		order = append(order, n)
		stack = stack[:len(stack)-1]
	}
	return order, nil
}
