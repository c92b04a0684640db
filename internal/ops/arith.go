// Package ops dispatches arithmetic and the elementary functions over the
// closed set of scalar representations.
//
// Every operation accepts any mix of scalar.Real with one differentiable
// representation: a Real operand is promoted to a constant of the other
// operand's representation. Combining the two differentiable representations
// (a dual number with a graph node) in one expression has no meaning and
// fails with scalar.ErrTypeMismatch, as does any Value implementation
// outside the closed set.
//
// The numeric routine behind each operation is shared across
// representations, so the value a computation produces is bit-for-bit
// identical whether it runs on Real, dual.Number, or *graph.Node operands.
package ops

import (
	"math"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// Add returns a + b.
func Add(a, b scalar.Value) scalar.Value {
	switch x := a.(type) {
	case scalar.Real:
		switch y := b.(type) {
		case scalar.Real:
			return x + y
		case dual.Number:
			return dual.Const(float64(x)).Add(y)
		case *graph.Node:
			return graph.AddConst(y, float64(x))
		}
	case dual.Number:
		switch y := b.(type) {
		case scalar.Real:
			return x.Add(dual.Const(float64(y)))
		case dual.Number:
			return x.Add(y)
		}
	case *graph.Node:
		switch y := b.(type) {
		case scalar.Real:
			return graph.AddConst(x, float64(y))
		case *graph.Node:
			return graph.Add(x, y)
		}
	}
	return mixed("+", a, b)
}

// Sub returns a - b.
func Sub(a, b scalar.Value) scalar.Value {
	switch x := a.(type) {
	case scalar.Real:
		switch y := b.(type) {
		case scalar.Real:
			return x - y
		case dual.Number:
			return dual.Const(float64(x)).Sub(y)
		case *graph.Node:
			return graph.ConstSub(float64(x), y)
		}
	case dual.Number:
		switch y := b.(type) {
		case scalar.Real:
			return x.Sub(dual.Const(float64(y)))
		case dual.Number:
			return x.Sub(y)
		}
	case *graph.Node:
		switch y := b.(type) {
		case scalar.Real:
			return graph.SubConst(x, float64(y))
		case *graph.Node:
			return graph.Sub(x, y)
		}
	}
	return mixed("-", a, b)
}

// Mul returns a · b.
func Mul(a, b scalar.Value) scalar.Value {
	switch x := a.(type) {
	case scalar.Real:
		switch y := b.(type) {
		case scalar.Real:
			return x * y
		case dual.Number:
			return dual.Const(float64(x)).Mul(y)
		case *graph.Node:
			return graph.MulConst(y, float64(x))
		}
	case dual.Number:
		switch y := b.(type) {
		case scalar.Real:
			return x.Mul(dual.Const(float64(y)))
		case dual.Number:
			return x.Mul(y)
		}
	case *graph.Node:
		switch y := b.(type) {
		case scalar.Real:
			return graph.MulConst(x, float64(y))
		case *graph.Node:
			return graph.Mul(x, y)
		}
	}
	return mixed("*", a, b)
}

// Div returns a / b. A zero-valued denominator fails with
// scalar.ErrDivisionByZero under every representation.
func Div(a, b scalar.Value) scalar.Value {
	switch x := a.(type) {
	case scalar.Real:
		switch y := b.(type) {
		case scalar.Real:
			if y == 0 {
				scalar.Failf(scalar.ErrDivisionByZero, "real denominator is zero")
			}
			return x / y
		case dual.Number:
			return dual.Const(float64(x)).Div(y)
		case *graph.Node:
			return graph.ConstDiv(float64(x), y)
		}
	case dual.Number:
		switch y := b.(type) {
		case scalar.Real:
			return x.Div(dual.Const(float64(y)))
		case dual.Number:
			return x.Div(y)
		}
	case *graph.Node:
		switch y := b.(type) {
		case scalar.Real:
			return graph.DivConst(x, float64(y))
		case *graph.Node:
			return graph.Div(x, y)
		}
	}
	return mixed("/", a, b)
}

// Pow returns a^b. Constant exponents follow the real-exponent rule, which
// admits negative bases with integer exponents; an exponent that actually
// varies requires a positive base.
func Pow(a, b scalar.Value) scalar.Value {
	switch x := a.(type) {
	case scalar.Real:
		switch y := b.(type) {
		case scalar.Real:
			return scalar.Real(powReal(float64(x), float64(y)))
		case dual.Number:
			return dual.Const(float64(x)).Pow(y)
		case *graph.Node:
			return graph.ConstPow(float64(x), y)
		}
	case dual.Number:
		switch y := b.(type) {
		case scalar.Real:
			return x.PowReal(float64(y))
		case dual.Number:
			return x.Pow(y)
		}
	case *graph.Node:
		switch y := b.(type) {
		case scalar.Real:
			return graph.PowConst(x, float64(y))
		case *graph.Node:
			return graph.Pow(x, y)
		}
	}
	return mixed("^", a, b)
}

// Neg returns -a.
func Neg(a scalar.Value) scalar.Value {
	switch x := a.(type) {
	case scalar.Real:
		return -x
	case dual.Number:
		return x.Neg()
	case *graph.Node:
		return graph.Neg(x)
	}
	return unknown("negation", a)
}

// powReal is the value-only power rule for plain reals, with the same
// fail-fast edge cases as the differentiable representations minus the
// derivative singularities.
func powReal(a, b float64) float64 {
	switch {
	case b == 0:
		return 1
	case a == 0:
		if b < 0 {
			scalar.Failf(scalar.ErrDivisionByZero, "zero base raised to negative exponent %g", b)
		}
		return 0
	case a < 0 && b != math.Trunc(b):
		scalar.Failf(scalar.ErrDomain, "negative base %g raised to non-integer exponent %g", a, b)
	}
	return math.Pow(a, b)
}

func mixed(op string, a, b scalar.Value) scalar.Value {
	scalar.Failf(scalar.ErrTypeMismatch, "unsupported operand types for %s: %T and %T", op, a, b)
	return nil
}

func unknown(op string, a scalar.Value) scalar.Value {
	scalar.Failf(scalar.ErrTypeMismatch, "unsupported operand type for %s: %T", op, a)
	return nil
}
