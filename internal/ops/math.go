package ops

import (
	"math"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// Elementary functions over any representation. Domain violations on the
// value (log of zero, sqrt of a negative, inverse trig outside [-1, 1]) fail
// under every representation; singularities of the derivative alone (sqrt at
// zero, inverse trig at the endpoints) fail only under the representations
// that carry derivatives.

// Sin returns sin(v).
func Sin(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Sin(float64(x)))
	case dual.Number:
		return dual.Sin(x)
	case *graph.Node:
		return graph.Sin(x)
	}
	return unknown("sin", v)
}

// Cos returns cos(v).
func Cos(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Cos(float64(x)))
	case dual.Number:
		return dual.Cos(x)
	case *graph.Node:
		return graph.Cos(x)
	}
	return unknown("cos", v)
}

// Tan returns tan(v).
func Tan(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Tan(float64(x)))
	case dual.Number:
		return dual.Tan(x)
	case *graph.Node:
		return graph.Tan(x)
	}
	return unknown("tan", v)
}

// Exp returns e^v.
func Exp(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Exp(float64(x)))
	case dual.Number:
		return dual.Exp(x)
	case *graph.Node:
		return graph.Exp(x)
	}
	return unknown("exp", v)
}

// ExpBase returns base^v. Fails with scalar.ErrDomain for a non-positive
// base.
func ExpBase(v scalar.Value, base float64) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		if base <= 0 {
			scalar.Failf(scalar.ErrDomain, "exponential with non-positive base %g", base)
		}
		return scalar.Real(math.Pow(base, float64(x)))
	case dual.Number:
		return dual.ExpBase(x, base)
	case *graph.Node:
		return graph.ExpBase(x, base)
	}
	return unknown("exp", v)
}

// Log returns the natural logarithm of v. Fails with scalar.ErrDomain for a
// non-positive value.
func Log(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		if x <= 0 {
			scalar.Failf(scalar.ErrDomain, "log of non-positive value %g", float64(x))
		}
		return scalar.Real(math.Log(float64(x)))
	case dual.Number:
		return dual.Log(x)
	case *graph.Node:
		return graph.Log(x)
	}
	return unknown("log", v)
}

// LogBase returns log_base(v). Fails with scalar.ErrDomain for a
// non-positive value or base, and with scalar.ErrDivisionByZero for base 1.
func LogBase(v scalar.Value, base float64) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		if x <= 0 {
			scalar.Failf(scalar.ErrDomain, "log of non-positive value %g", float64(x))
		}
		if base <= 0 {
			scalar.Failf(scalar.ErrDomain, "log with non-positive base %g", base)
		}
		if base == 1 {
			scalar.Failf(scalar.ErrDivisionByZero, "log base 1 divides by ln(1)")
		}
		return scalar.Real(math.Log(float64(x)) / math.Log(base))
	case dual.Number:
		return dual.LogBase(x, base)
	case *graph.Node:
		return graph.LogBase(x, base)
	}
	return unknown("log", v)
}

// Sqrt returns the square root of v. Fails with scalar.ErrDomain for a
// negative value; at zero only the derivative is singular, so plain reals
// return 0 while the differentiable representations fail with
// scalar.ErrDivisionByZero.
func Sqrt(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		if x < 0 {
			scalar.Failf(scalar.ErrDomain, "sqrt of negative value %g", float64(x))
		}
		return scalar.Real(math.Sqrt(float64(x)))
	case dual.Number:
		return dual.Sqrt(x)
	case *graph.Node:
		return graph.Sqrt(x)
	}
	return unknown("sqrt", v)
}

// Sinh returns sinh(v).
func Sinh(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Sinh(float64(x)))
	case dual.Number:
		return dual.Sinh(x)
	case *graph.Node:
		return graph.Sinh(x)
	}
	return unknown("sinh", v)
}

// Cosh returns cosh(v).
func Cosh(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Cosh(float64(x)))
	case dual.Number:
		return dual.Cosh(x)
	case *graph.Node:
		return graph.Cosh(x)
	}
	return unknown("cosh", v)
}

// Tanh returns tanh(v).
func Tanh(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Tanh(float64(x)))
	case dual.Number:
		return dual.Tanh(x)
	case *graph.Node:
		return graph.Tanh(x)
	}
	return unknown("tanh", v)
}

// Asin returns the inverse sine of v. Fails with scalar.ErrDomain outside
// [-1, 1]; the endpoints fail only under derivative-carrying
// representations.
func Asin(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		if x < -1 || x > 1 {
			scalar.Failf(scalar.ErrDomain, "inverse trig argument %g outside [-1, 1]", float64(x))
		}
		return scalar.Real(math.Asin(float64(x)))
	case dual.Number:
		return dual.Asin(x)
	case *graph.Node:
		return graph.Asin(x)
	}
	return unknown("asin", v)
}

// Acos returns the inverse cosine of v. Fails with scalar.ErrDomain outside
// [-1, 1]; the endpoints fail only under derivative-carrying
// representations.
func Acos(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		if x < -1 || x > 1 {
			scalar.Failf(scalar.ErrDomain, "inverse trig argument %g outside [-1, 1]", float64(x))
		}
		return scalar.Real(math.Acos(float64(x)))
	case dual.Number:
		return dual.Acos(x)
	case *graph.Node:
		return graph.Acos(x)
	}
	return unknown("acos", v)
}

// Atan returns the inverse tangent of v.
func Atan(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(math.Atan(float64(x)))
	case dual.Number:
		return dual.Atan(x)
	case *graph.Node:
		return graph.Atan(x)
	}
	return unknown("atan", v)
}

// Logistic returns the standard logistic function 1/(1+e^-v).
func Logistic(v scalar.Value) scalar.Value {
	switch x := v.(type) {
	case scalar.Real:
		return scalar.Real(1 / (1 + math.Exp(-float64(x))))
	case dual.Number:
		return dual.Logistic(x)
	case *graph.Node:
		return graph.Logistic(x)
	}
	return unknown("logistic", v)
}
