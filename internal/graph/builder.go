// Package graph implements reverse-mode differentiation over an explicit
// computational graph.
//
// A Builder owns every node of one evaluation session in an arena indexed by
// creation order. Operations on nodes append to the arena and are interned in
// a dedup cache keyed by operator and operand identity, so repeating an
// operation on the same operands returns the identical node and shared
// subexpressions are stored once. Because an operation can only reference
// nodes that already exist, parent indices are always smaller than a node's
// own index and the graph is acyclic by construction.
//
// Builders are not safe for concurrent use; a session builds its graph and
// runs its backward passes sequentially.
package graph

import "errors"

var (
	// ErrCycleDetected reports a cycle found during the topological sort.
	// Construction order makes cycles impossible, so this is an internal
	// invariant violation, not a user error.
	ErrCycleDetected = errors.New("graph: cycle detected")

	// ErrSessionMismatch reports an operation over nodes owned by two
	// different Builders. Each evaluation session must stay within the
	// arena that created its leaves.
	ErrSessionMismatch = errors.New("graph: operands belong to different evaluation sessions")
)

// opKind identifies the operation that produced a node, for dedup keying.
type opKind uint8

const (
	opAdd opKind = iota
	opAddConst
	opSub
	opSubConst
	opConstSub
	opMul
	opMulConst
	opDiv
	opDivConst
	opConstDiv
	opPow
	opPowConst
	opConstPow
	opNeg
	opSin
	opCos
	opTan
	opExp
	opExpBase
	opLog
	opLogBase
	opSqrt
	opSinh
	opCosh
	opTanh
	opAsin
	opAcos
	opAtan
	opLogistic
)

// opKey identifies one operation application within a session: the operator,
// the arena indices of its node operands (y is -1 for single-operand forms),
// and the constant operand for node-with-constant forms.
type opKey struct {
	kind opKind
	x, y int
	c    float64
}

// Builder owns the nodes of one evaluation session.
type Builder struct {
	nodes []*Node
	cache map[opKey]*Node
}

// NewBuilder returns an empty evaluation session.
func NewBuilder() *Builder {
	return &Builder{
		nodes: make([]*Node, 0, 64),
		cache: make(map[opKey]*Node),
	}
}

// Leaf appends an input node with no parents. Leaves are never deduplicated:
// two independent variables with equal values stay distinct nodes.
func (b *Builder) Leaf(value float64) *Node {
	n := &Node{b: b, id: len(b.nodes), value: value}
	b.nodes = append(b.nodes, n)
	return n
}

// Len reports the number of nodes in the arena, leaves included.
func (b *Builder) Len() int { return len(b.nodes) }

// NumOps reports the number of interned operation nodes.
func (b *Builder) NumOps() int { return len(b.cache) }

// intern returns the cached node for key, or appends and caches a new one.
func (b *Builder) intern(key opKey, value float64, parents []int, partials []float64) *Node {
	if n, ok := b.cache[key]; ok {
		return n
	}
	n := &Node{
		b:        b,
		id:       len(b.nodes),
		value:    value,
		parents:  parents,
		partials: partials,
	}
	b.nodes = append(b.nodes, n)
	b.cache[key] = n
	return n
}
