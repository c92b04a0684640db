// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides reverse-mode computational graphs.
//
// A Builder owns one evaluation session: every node created through it is
// stored in the builder's arena, and identical operations on identical
// operands are interned to a single node. Build expressions over leaves
// with the ops package, then call Backward on the result to collect the
// partial derivatives of every reachable leaf.
//
// Example:
//
//	import (
//	    "github.com/tangent-ml/tangent/graph"
//	    "github.com/tangent-ml/tangent/ops"
//	)
//
//	b := graph.NewBuilder()
//	x := b.Leaf(2)
//	f := ops.Add(ops.Mul(x, x), ops.Mul(scalar.Real(2), x))
//	adjoints, err := graph.Backward(f.(*graph.Node))
//	// adjoints[x] == 6
package graph

import "github.com/tangent-ml/tangent/internal/graph"

// Builder owns the nodes of one evaluation session. It is not safe for
// concurrent use.
type Builder = graph.Builder

// Node is a value recorded in a builder's arena.
type Node = graph.Node

var (
	// ErrCycleDetected reports a cycle in a session's arena. Builders only
	// create edges to existing nodes, so a cycle means the arena was
	// corrupted; treat it as a defect.
	ErrCycleDetected = graph.ErrCycleDetected

	// ErrSessionMismatch reports an operation over nodes of two different
	// builders.
	ErrSessionMismatch = graph.ErrSessionMismatch
)

// NewBuilder returns an empty session.
func NewBuilder() *Builder {
	return graph.NewBuilder()
}

// TopoSort returns the nodes reachable from root ordered so that every
// node appears after all of its parents, root last.
func TopoSort(root *Node) ([]*Node, error) {
	return graph.TopoSort(root)
}

// Backward runs the reverse pass from root and returns the adjoint of
// every reachable node. The adjoint of a leaf is the partial derivative
// of root with respect to that leaf.
func Backward(root *Node) (map[*Node]float64, error) {
	return graph.Backward(root)
}
