// Package optimize implements numerical routines driven by the autodiff
// engine.
//
// This package provides:
//   - Newton: root finding on single-variable functions
//   - GradientDescent: unconstrained minimization with optional momentum
//
// Both routines obtain exact derivatives from autodiff.AutoDiff rather than
// finite differences.
//
// Example usage:
//
//	f := func(x []scalar.Value) scalar.Value {
//	    return ops.Sub(ops.Mul(x[0], x[0]), scalar.Real(4))
//	}
//	root, steps, err := optimize.Newton(f, 3, optimize.NewtonConfig{})
//	// root -> 2
package optimize

import "errors"

// ErrNoConvergence reports that an iteration budget ran out before the
// stopping criterion was met, or that the iteration cannot make progress.
var ErrNoConvergence = errors.New("optimize: no convergence")
