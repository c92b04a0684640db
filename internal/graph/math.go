package graph

import (
	"math"

	"github.com/tangent-ml/tangent/internal/scalar"
)

// Elementary functions over nodes. Each produces a single-parent node whose
// partial is the function's derivative at the operand's value, interned like
// every other operation. Value routines are the same math package calls the
// other representations use, so recorded values agree bit for bit.

// Sin returns sin(x), partial [cos(x)].
func Sin(x *Node) *Node {
	return x.b.intern(opKey{kind: opSin, x: x.id, y: -1},
		math.Sin(x.value), []int{x.id}, []float64{math.Cos(x.value)})
}

// Cos returns cos(x), partial [-sin(x)].
func Cos(x *Node) *Node {
	return x.b.intern(opKey{kind: opCos, x: x.id, y: -1},
		math.Cos(x.value), []int{x.id}, []float64{-math.Sin(x.value)})
}

// Tan returns tan(x), partial [1/cos²(x)].
func Tan(x *Node) *Node {
	c := math.Cos(x.value)
	return x.b.intern(opKey{kind: opTan, x: x.id, y: -1},
		math.Tan(x.value), []int{x.id}, []float64{1 / (c * c)})
}

// Exp returns e^x, partial [e^x].
func Exp(x *Node) *Node {
	e := math.Exp(x.value)
	return x.b.intern(opKey{kind: opExp, x: x.id, y: -1},
		e, []int{x.id}, []float64{e})
}

// ExpBase returns base^x, partial [ln(base)·base^x].
// Fails with ErrDomain for a non-positive base.
func ExpBase(x *Node, base float64) *Node {
	if base <= 0 {
		scalar.Failf(scalar.ErrDomain, "exponential with non-positive base %g", base)
	}
	p := math.Pow(base, x.value)
	return x.b.intern(opKey{kind: opExpBase, x: x.id, y: -1, c: base},
		p, []int{x.id}, []float64{math.Log(base) * p})
}

// Log returns the natural logarithm of x, partial [1/x].
// Fails with ErrDomain when x's value is not positive.
func Log(x *Node) *Node {
	if x.value <= 0 {
		scalar.Failf(scalar.ErrDomain, "log of non-positive value %g", x.value)
	}
	return x.b.intern(opKey{kind: opLog, x: x.id, y: -1},
		math.Log(x.value), []int{x.id}, []float64{1 / x.value})
}

// LogBase returns log_base(x), partial [1/(x·ln(base))].
// Fails with ErrDomain for a non-positive argument or base, and with
// ErrDivisionByZero for base 1.
func LogBase(x *Node, base float64) *Node {
	if x.value <= 0 {
		scalar.Failf(scalar.ErrDomain, "log of non-positive value %g", x.value)
	}
	if base <= 0 {
		scalar.Failf(scalar.ErrDomain, "log with non-positive base %g", base)
	}
	if base == 1 {
		scalar.Failf(scalar.ErrDivisionByZero, "log base 1 divides by ln(1)")
	}
	return x.b.intern(opKey{kind: opLogBase, x: x.id, y: -1, c: base},
		math.Log(x.value)/math.Log(base), []int{x.id},
		[]float64{1 / (x.value * math.Log(base))})
}

// Sqrt returns the square root of x, partial [1/(2·sqrt(x))].
// Fails with ErrDomain for a negative value and with ErrDivisionByZero at
// zero, where the partial is unbounded.
func Sqrt(x *Node) *Node {
	if x.value < 0 {
		scalar.Failf(scalar.ErrDomain, "sqrt of negative value %g", x.value)
	}
	if x.value == 0 {
		scalar.Failf(scalar.ErrDivisionByZero, "partial of sqrt at zero")
	}
	s := math.Sqrt(x.value)
	return x.b.intern(opKey{kind: opSqrt, x: x.id, y: -1},
		s, []int{x.id}, []float64{0.5 / s})
}

// Sinh returns sinh(x), partial [cosh(x)].
func Sinh(x *Node) *Node {
	return x.b.intern(opKey{kind: opSinh, x: x.id, y: -1},
		math.Sinh(x.value), []int{x.id}, []float64{math.Cosh(x.value)})
}

// Cosh returns cosh(x), partial [sinh(x)].
func Cosh(x *Node) *Node {
	return x.b.intern(opKey{kind: opCosh, x: x.id, y: -1},
		math.Cosh(x.value), []int{x.id}, []float64{math.Sinh(x.value)})
}

// Tanh returns tanh(x), partial [1/cosh²(x)].
func Tanh(x *Node) *Node {
	c := math.Cosh(x.value)
	return x.b.intern(opKey{kind: opTanh, x: x.id, y: -1},
		math.Tanh(x.value), []int{x.id}, []float64{1 / (c * c)})
}

// Asin returns the inverse sine of x, partial [1/sqrt(1-x²)].
// Fails with ErrDomain outside [-1, 1] and with ErrDivisionByZero at the
// endpoints.
func Asin(x *Node) *Node {
	checkInverseTrig(x.value)
	return x.b.intern(opKey{kind: opAsin, x: x.id, y: -1},
		math.Asin(x.value), []int{x.id},
		[]float64{1 / math.Sqrt(1-x.value*x.value)})
}

// Acos returns the inverse cosine of x, partial [-1/sqrt(1-x²)].
// Fails with ErrDomain outside [-1, 1] and with ErrDivisionByZero at the
// endpoints.
func Acos(x *Node) *Node {
	checkInverseTrig(x.value)
	return x.b.intern(opKey{kind: opAcos, x: x.id, y: -1},
		math.Acos(x.value), []int{x.id},
		[]float64{-1 / math.Sqrt(1-x.value*x.value)})
}

// Atan returns the inverse tangent of x, partial [1/(1+x²)].
func Atan(x *Node) *Node {
	return x.b.intern(opKey{kind: opAtan, x: x.id, y: -1},
		math.Atan(x.value), []int{x.id},
		[]float64{1 / (1 + x.value*x.value)})
}

// Logistic returns 1/(1+e^-x), partial [e^x/(e^x+1)²].
func Logistic(x *Node) *Node {
	e := math.Exp(x.value)
	return x.b.intern(opKey{kind: opLogistic, x: x.id, y: -1},
		1/(1+math.Exp(-x.value)), []int{x.id},
		[]float64{e / ((e + 1) * (e + 1))})
}

func checkInverseTrig(x float64) {
	if x < -1 || x > 1 {
		scalar.Failf(scalar.ErrDomain, "inverse trig argument %g outside [-1, 1]", x)
	}
	if x == -1 || x == 1 {
		scalar.Failf(scalar.ErrDivisionByZero, "partial of inverse trig at %g", x)
	}
}
