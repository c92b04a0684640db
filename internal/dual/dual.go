// Package dual implements forward-mode differentiation with dual numbers.
//
// A dual number a + b·ε carries a value (Real) and a directional derivative
// (Dual) through every operation by the Taylor expansion rules, so evaluating
// f on Number{x, 1} yields Number{f(x), f'(x)} in a single pass.
package dual

import (
	"fmt"
	"math"

	"github.com/tangent-ml/tangent/internal/scalar"
)

// Number is a dual number. The zero value is the constant 0.
//
// Numbers are immutable values; every operation returns a new Number and
// never modifies its operands.
type Number struct {
	Real float64 // the value
	Dual float64 // the derivative carried alongside it
}

// New returns real + 1·ε, the seeding for "differentiate with respect to
// this variable".
func New(real float64) Number {
	return Number{Real: real, Dual: 1}
}

// Const returns real + 0·ε, a quantity that does not vary.
func Const(real float64) Number {
	return Number{Real: real}
}

// Float returns the real part.
func (a Number) Float() float64 { return a.Real }

func (a Number) String() string {
	return fmt.Sprintf("Dual(%g, %g)", a.Real, a.Dual)
}

// Add returns a + b.
func (a Number) Add(b Number) Number {
	return Number{Real: a.Real + b.Real, Dual: a.Dual + b.Dual}
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number {
	return Number{Real: a.Real - b.Real, Dual: a.Dual - b.Dual}
}

// Mul returns a · b with the product rule on the dual part.
func (a Number) Mul(b Number) Number {
	return Number{
		Real: a.Real * b.Real,
		Dual: a.Real*b.Dual + a.Dual*b.Real,
	}
}

// Div returns a / b with the quotient rule on the dual part.
// Fails with ErrDivisionByZero when the real part of b is zero.
func (a Number) Div(b Number) Number {
	if b.Real == 0 {
		scalar.Failf(scalar.ErrDivisionByZero, "dual number with zero real part as denominator")
	}
	return Number{
		Real: a.Real / b.Real,
		Dual: (a.Dual*b.Real - a.Real*b.Dual) / (b.Real * b.Real),
	}
}

// Neg returns -a.
func (a Number) Neg() Number {
	return Number{Real: -a.Real, Dual: -a.Dual}
}

// PowReal returns a^n for a real exponent, dual part n·a^(n-1)·a'.
//
// Edge cases at a zero or negative base fail rather than produce NaN or Inf:
// a negative base with a non-integer exponent has no real value (ErrDomain),
// and a zero base fails with ErrDivisionByZero when either the value (n < 0)
// or the derivative (0 < n < 1) divides by the base.
func (a Number) PowReal(n float64) Number {
	switch {
	case n == 0:
		return Number{Real: 1}
	case a.Real == 0:
		if n < 0 {
			scalar.Failf(scalar.ErrDivisionByZero, "zero base raised to negative exponent %g", n)
		}
		if n < 1 {
			scalar.Failf(scalar.ErrDivisionByZero, "derivative of zero base raised to exponent %g", n)
		}
		return Number{Real: 0, Dual: n * math.Pow(0, n-1) * a.Dual}
	case a.Real < 0 && n != math.Trunc(n):
		scalar.Failf(scalar.ErrDomain, "negative base %g raised to non-integer exponent %g", a.Real, n)
	}
	return Number{
		Real: math.Pow(a.Real, n),
		Dual: n * math.Pow(a.Real, n-1) * a.Dual,
	}
}

// Pow returns a^b for a dual exponent:
//
//	value = a.Real^b.Real
//	dual  = a.Real^b.Real · (b.Dual·ln(a.Real) + b.Real·a.Dual/a.Real)
//
// The general rule needs ln of the base, so a non-positive base fails with
// ErrDomain when the exponent actually varies. When b.Dual == 0 the exponent
// is a constant and Pow falls back to the PowReal rule, which keeps integer
// powers of negative bases working.
func (a Number) Pow(b Number) Number {
	if b.Dual == 0 {
		return a.PowReal(b.Real)
	}
	if a.Real <= 0 {
		scalar.Failf(scalar.ErrDomain, "base %g requires a positive value for a varying exponent", a.Real)
	}
	value := math.Pow(a.Real, b.Real)
	return Number{
		Real: value,
		Dual: value * (b.Dual*math.Log(a.Real) + b.Real*a.Dual/a.Real),
	}
}

// Equal reports whether a and b have the same real part. Dual parts are
// derivative metadata, not part of value identity, and are ignored.
func (a Number) Equal(b Number) bool { return a.Real == b.Real }

// Less orders dual numbers by real part.
func (a Number) Less(b Number) bool { return a.Real < b.Real }

// Cmp returns -1, 0, or +1 comparing real parts.
func (a Number) Cmp(b Number) int {
	switch {
	case a.Real < b.Real:
		return -1
	case a.Real > b.Real:
		return 1
	default:
		return 0
	}
}
