// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar defines the value representations the tangent engine
// differentiates over.
//
// Every differentiable function is written against the Value interface.
// Concrete values are plain reals (Real), forward-mode dual numbers
// (dual.Number), and reverse-mode graph nodes (*graph.Node); the ops
// package dispatches on the representation at run time.
//
// Example:
//
//	import (
//	    "github.com/tangent-ml/tangent/ops"
//	    "github.com/tangent-ml/tangent/scalar"
//	)
//
//	f := func(x []scalar.Value) scalar.Value {
//	    return ops.Add(ops.Mul(x[0], x[0]), scalar.Real(2))
//	}
package scalar

import "github.com/tangent-ml/tangent/internal/scalar"

// Value is a scalar the engine can evaluate: a plain real, a dual number,
// or a graph node.
type Value = scalar.Value

// Real is a plain floating-point scalar with no derivative information.
type Real = scalar.Real

// EvalError wraps a violation raised while evaluating a user function.
type EvalError = scalar.EvalError

var (
	// ErrTypeMismatch reports an operand outside the supported
	// representations.
	ErrTypeMismatch = scalar.ErrTypeMismatch

	// ErrDomain reports an argument outside a function's mathematical
	// domain.
	ErrDomain = scalar.ErrDomain

	// ErrDivisionByZero reports a zero denominator or an undefined power.
	ErrDivisionByZero = scalar.ErrDivisionByZero
)

// Lift converts any Go numeric value into a Value.
//
// Example:
//
//	v, err := scalar.Lift(3)      // Real(3)
//	v, err = scalar.Lift(2.5)     // Real(2.5)
func Lift(v any) (Value, error) {
	return scalar.Lift(v)
}

// LiftSlice converts a slice of floats into a slice of Values.
func LiftSlice(xs []float64) []Value {
	return scalar.LiftSlice(xs)
}
