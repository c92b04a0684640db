// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff computes exact derivatives of Go functions.
//
// # Overview
//
// Write the function once against the scalar and ops packages, then ask an
// AutoDiff for values, partial derivatives, Jacobians, or directional
// derivatives at any point:
//   - Forward mode evaluates the function on dual numbers, one pass per
//     variable.
//   - Reverse mode records one computational graph and runs one backward
//     pass per function.
//
// Both modes return identical matrices; they differ only in cost.
//
// # Basic Usage
//
//	import (
//	    "github.com/tangent-ml/tangent/autodiff"
//	    "github.com/tangent-ml/tangent/ops"
//	    "github.com/tangent-ml/tangent/scalar"
//	)
//
//	func main() {
//	    f := func(x []scalar.Value) scalar.Value {
//	        return ops.Add(ops.Pow(x[0], scalar.Real(2)), ops.Mul(scalar.Real(2), x[0]))
//	    }
//
//	    ad := autodiff.New(f)
//	    jac, err := ad.Jacobian([]float64{2})
//	    // jac is the 1x1 matrix [[6]]
//	}
//
// # Modes
//
// The mode is chosen per computation:
//
//	jac, err := ad.Jacobian(point)                                  // forward (default)
//	jac, err = ad.Jacobian(point, autodiff.WithMode(autodiff.Reverse))
//
// Mode names parse from strings with ParseMode ("f", "forward", "r",
// "reverse", any casing).
//
// # Caching
//
// An AutoDiff remembers the last point it differentiated. Repeating a query
// at that point returns the cached Jacobian, and a new seed vector at that
// point costs only a matrix-vector product.
//
// # Errors
//
// Mathematical violations inside the user function (log of a nonpositive
// number, division by zero, out-of-domain powers) surface as errors
// matching the scalar package sentinels:
//
//	_, err := ad.Jacobian([]float64{0})
//	if errors.Is(err, scalar.ErrDomain) {
//	    // handle the violation
//	}
package autodiff
