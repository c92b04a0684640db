package dual

import (
	"math"

	"github.com/tangent-ml/tangent/internal/scalar"
)

// Elementary functions over dual numbers. Each applies the chain rule:
// f(a + b·ε) = f(a) + f'(a)·b·ε. Domain checks fail before any part of the
// result is produced.

// Sin returns sin(a).
func Sin(a Number) Number {
	return Number{Real: math.Sin(a.Real), Dual: math.Cos(a.Real) * a.Dual}
}

// Cos returns cos(a).
func Cos(a Number) Number {
	return Number{Real: math.Cos(a.Real), Dual: -math.Sin(a.Real) * a.Dual}
}

// Tan returns tan(a), derivative 1/cos²(a).
func Tan(a Number) Number {
	c := math.Cos(a.Real)
	return Number{Real: math.Tan(a.Real), Dual: a.Dual / (c * c)}
}

// Exp returns e^a.
func Exp(a Number) Number {
	e := math.Exp(a.Real)
	return Number{Real: e, Dual: e * a.Dual}
}

// ExpBase returns base^a, derivative ln(base)·base^a.
// Fails with ErrDomain for a non-positive base.
func ExpBase(a Number, base float64) Number {
	if base <= 0 {
		scalar.Failf(scalar.ErrDomain, "exponential with non-positive base %g", base)
	}
	p := math.Pow(base, a.Real)
	return Number{Real: p, Dual: math.Log(base) * p * a.Dual}
}

// Log returns the natural logarithm of a.
// Fails with ErrDomain when the real part is not positive.
func Log(a Number) Number {
	if a.Real <= 0 {
		scalar.Failf(scalar.ErrDomain, "log of non-positive value %g", a.Real)
	}
	return Number{Real: math.Log(a.Real), Dual: a.Dual / a.Real}
}

// LogBase returns log_base(a), derivative 1/(a·ln(base)).
// Fails with ErrDomain for a non-positive argument or base, and with
// ErrDivisionByZero for base 1, whose logarithm is zero.
func LogBase(a Number, base float64) Number {
	if a.Real <= 0 {
		scalar.Failf(scalar.ErrDomain, "log of non-positive value %g", a.Real)
	}
	if base <= 0 {
		scalar.Failf(scalar.ErrDomain, "log with non-positive base %g", base)
	}
	if base == 1 {
		scalar.Failf(scalar.ErrDivisionByZero, "log base 1 divides by ln(1)")
	}
	return Number{
		Real: math.Log(a.Real) / math.Log(base),
		Dual: a.Dual / (a.Real * math.Log(base)),
	}
}

// Sqrt returns the square root of a, derivative 1/(2·sqrt(a)).
// Fails with ErrDomain for a negative argument and with ErrDivisionByZero
// at zero, where the derivative is unbounded.
func Sqrt(a Number) Number {
	if a.Real < 0 {
		scalar.Failf(scalar.ErrDomain, "sqrt of negative value %g", a.Real)
	}
	if a.Real == 0 {
		scalar.Failf(scalar.ErrDivisionByZero, "derivative of sqrt at zero")
	}
	s := math.Sqrt(a.Real)
	return Number{Real: s, Dual: 0.5 / s * a.Dual}
}

// Sinh returns sinh(a).
func Sinh(a Number) Number {
	return Number{Real: math.Sinh(a.Real), Dual: math.Cosh(a.Real) * a.Dual}
}

// Cosh returns cosh(a).
func Cosh(a Number) Number {
	return Number{Real: math.Cosh(a.Real), Dual: math.Sinh(a.Real) * a.Dual}
}

// Tanh returns tanh(a), derivative 1/cosh²(a).
func Tanh(a Number) Number {
	c := math.Cosh(a.Real)
	return Number{Real: math.Tanh(a.Real), Dual: a.Dual / (c * c)}
}

// Asin returns the inverse sine of a, derivative 1/sqrt(1-a²).
// Fails with ErrDomain outside [-1, 1] and with ErrDivisionByZero at the
// endpoints, where the derivative is unbounded.
func Asin(a Number) Number {
	checkInverseTrig(a.Real)
	return Number{
		Real: math.Asin(a.Real),
		Dual: a.Dual / math.Sqrt(1-a.Real*a.Real),
	}
}

// Acos returns the inverse cosine of a, derivative -1/sqrt(1-a²).
// Fails with ErrDomain outside [-1, 1] and with ErrDivisionByZero at the
// endpoints, where the derivative is unbounded.
func Acos(a Number) Number {
	checkInverseTrig(a.Real)
	return Number{
		Real: math.Acos(a.Real),
		Dual: -a.Dual / math.Sqrt(1-a.Real*a.Real),
	}
}

// Atan returns the inverse tangent of a, derivative 1/(1+a²).
func Atan(a Number) Number {
	return Number{Real: math.Atan(a.Real), Dual: a.Dual / (1 + a.Real*a.Real)}
}

// Logistic returns the standard logistic function 1/(1+e^-a), derivative
// e^a/(e^a+1)².
func Logistic(a Number) Number {
	e := math.Exp(a.Real)
	return Number{
		Real: 1 / (1 + math.Exp(-a.Real)),
		Dual: e / ((e + 1) * (e + 1)) * a.Dual,
	}
}

func checkInverseTrig(x float64) {
	if x < -1 || x > 1 {
		scalar.Failf(scalar.ErrDomain, "inverse trig argument %g outside [-1, 1]", x)
	}
	if x == -1 || x == 1 {
		scalar.Failf(scalar.ErrDivisionByZero, "derivative of inverse trig at %g", x)
	}
}
