// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops implements the differentiable operations of the tangent
// engine.
//
// Every operation accepts any scalar.Value representation and dispatches on
// it: plain reals compute plain values, dual numbers propagate forward-mode
// derivatives, and graph nodes record reverse-mode graph structure. Mixing
// dual numbers and graph nodes in one expression is a type mismatch.
//
// Operations fail fast on mathematical violations (domain errors, division
// by zero) by raising a scalar.EvalError panic; the autodiff driver converts
// it into an ordinary error. Call sites that use ops directly can do the
// same with scalar.FromPanic.
//
// Example:
//
//	f := func(x []scalar.Value) scalar.Value {
//	    return ops.Sub(ops.Exp(x[0]), ops.Mul(scalar.Real(5), x[0]))
//	}
package ops

import (
	"github.com/tangent-ml/tangent/internal/ops"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// Arithmetic

// Add returns a + b.
func Add(a, b scalar.Value) scalar.Value { return ops.Add(a, b) }

// Sub returns a - b.
func Sub(a, b scalar.Value) scalar.Value { return ops.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b scalar.Value) scalar.Value { return ops.Mul(a, b) }

// Div returns a / b. A zero denominator raises DivisionByZero.
func Div(a, b scalar.Value) scalar.Value { return ops.Div(a, b) }

// Pow returns a raised to b. Negative bases require a constant integer
// exponent; zero bases require a nonnegative exponent.
func Pow(a, b scalar.Value) scalar.Value { return ops.Pow(a, b) }

// Neg returns -a.
func Neg(a scalar.Value) scalar.Value { return ops.Neg(a) }

// Elementary functions

// Sin returns sin(a).
func Sin(a scalar.Value) scalar.Value { return ops.Sin(a) }

// Cos returns cos(a).
func Cos(a scalar.Value) scalar.Value { return ops.Cos(a) }

// Tan returns tan(a).
func Tan(a scalar.Value) scalar.Value { return ops.Tan(a) }

// Exp returns e**a.
func Exp(a scalar.Value) scalar.Value { return ops.Exp(a) }

// ExpBase returns base**a for a positive constant base.
func ExpBase(a scalar.Value, base float64) scalar.Value { return ops.ExpBase(a, base) }

// Log returns the natural logarithm of a, defined for positive a.
func Log(a scalar.Value) scalar.Value { return ops.Log(a) }

// LogBase returns the base-b logarithm of a, for positive a and positive
// base other than 1.
func LogBase(a scalar.Value, base float64) scalar.Value { return ops.LogBase(a, base) }

// Sqrt returns the square root of a, defined for nonnegative a; the
// derivative additionally requires a > 0.
func Sqrt(a scalar.Value) scalar.Value { return ops.Sqrt(a) }

// Sinh returns the hyperbolic sine of a.
func Sinh(a scalar.Value) scalar.Value { return ops.Sinh(a) }

// Cosh returns the hyperbolic cosine of a.
func Cosh(a scalar.Value) scalar.Value { return ops.Cosh(a) }

// Tanh returns the hyperbolic tangent of a.
func Tanh(a scalar.Value) scalar.Value { return ops.Tanh(a) }

// Asin returns the inverse sine of a, defined on [-1, 1]; the derivative
// additionally requires |a| < 1.
func Asin(a scalar.Value) scalar.Value { return ops.Asin(a) }

// Acos returns the inverse cosine of a, defined on [-1, 1]; the derivative
// additionally requires |a| < 1.
func Acos(a scalar.Value) scalar.Value { return ops.Acos(a) }

// Atan returns the inverse tangent of a.
func Atan(a scalar.Value) scalar.Value { return ops.Atan(a) }

// Logistic returns the standard logistic function 1/(1+e**-a).
func Logistic(a scalar.Value) scalar.Value { return ops.Logistic(a) }
