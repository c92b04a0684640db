// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optimize provides numerical routines driven by exact derivatives.
//
// This package contains:
//   - Newton: root finding on single-variable functions
//   - GradientDescent: unconstrained minimization with optional momentum
//
// Example:
//
//	import (
//	    "github.com/tangent-ml/tangent/optimize"
//	    "github.com/tangent-ml/tangent/ops"
//	    "github.com/tangent-ml/tangent/scalar"
//	)
//
//	f := func(x []scalar.Value) scalar.Value {
//	    return ops.Sub(ops.Mul(x[0], x[0]), scalar.Real(4))
//	}
//	root, steps, err := optimize.Newton(f, 3, optimize.NewtonConfig{})
package optimize

import (
	"github.com/tangent-ml/tangent/internal/autodiff"
	"github.com/tangent-ml/tangent/internal/optimize"
)

// NewtonConfig holds configuration for Newton root finding.
type NewtonConfig = optimize.NewtonConfig

// GradientDescentConfig holds configuration for gradient descent.
type GradientDescentConfig = optimize.GradientDescentConfig

// ErrNoConvergence reports that an iteration budget ran out before the
// stopping criterion was met, or that the iteration cannot make progress.
var ErrNoConvergence = optimize.ErrNoConvergence

// Newton finds a root of a single-variable function by Newton's method,
// returning the final iterate and the number of updates performed.
func Newton(f autodiff.Func, x0 float64, config NewtonConfig) (root float64, steps int, err error) {
	return optimize.Newton(f, x0, config)
}

// GradientDescent minimizes a scalar function of several variables,
// returning the final iterate and the number of updates performed.
func GradientDescent(f autodiff.Func, start []float64, config GradientDescentConfig) (minimum []float64, steps int, err error) {
	return optimize.GradientDescent(f, start, config)
}
