// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode dual numbers.
//
// A dual number carries a value and its derivative with respect to an
// implicit seed; arithmetic propagates both exactly. Construct inputs with
// New (unit seed) or Const (zero seed) and combine them with the ops
// package or the Number methods.
//
// Example:
//
//	import (
//	    "github.com/tangent-ml/tangent/dual"
//	    "github.com/tangent-ml/tangent/ops"
//	)
//
//	x := dual.New(2)                               // seed dx = 1
//	y := ops.Add(ops.Mul(x, x), ops.Mul(scalar.Real(2), x))
//	// y.(dual.Number) is Dual(8, 6): value 8, derivative 6
package dual

import "github.com/tangent-ml/tangent/internal/dual"

// Number is a dual number: a real part and the derivative of that value
// with respect to the seed.
type Number = dual.Number

// New returns a Number seeded as an independent variable (derivative 1).
func New(real float64) Number {
	return dual.New(real)
}

// Const returns a Number with no seed dependence (derivative 0).
func Const(real float64) Number {
	return dual.Const(real)
}
