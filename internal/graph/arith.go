package graph

import (
	"math"

	"github.com/tangent-ml/tangent/internal/scalar"
)

// Arithmetic over nodes. Each operation appends (or returns the interned
// instance of) a node whose partials encode the local derivative with respect
// to each operand. Constant operands do not become nodes; the node-with-
// constant forms fold them into a single-parent node, and the Const-prefixed
// forms place the constant on the left of the non-commutative operators.

// Add returns x + y, partials [1, 1].
func Add(x, y *Node) *Node {
	b := sameSession(x, y)
	return b.intern(opKey{kind: opAdd, x: x.id, y: y.id},
		x.value+y.value, []int{x.id, y.id}, []float64{1, 1})
}

// AddConst returns x + c, partial [1].
func AddConst(x *Node, c float64) *Node {
	return x.b.intern(opKey{kind: opAddConst, x: x.id, y: -1, c: c},
		x.value+c, []int{x.id}, []float64{1})
}

// Sub returns x - y, partials [1, -1].
func Sub(x, y *Node) *Node {
	b := sameSession(x, y)
	return b.intern(opKey{kind: opSub, x: x.id, y: y.id},
		x.value-y.value, []int{x.id, y.id}, []float64{1, -1})
}

// SubConst returns x - c, partial [1].
func SubConst(x *Node, c float64) *Node {
	return x.b.intern(opKey{kind: opSubConst, x: x.id, y: -1, c: c},
		x.value-c, []int{x.id}, []float64{1})
}

// ConstSub returns c - x, partial [-1].
func ConstSub(c float64, x *Node) *Node {
	return x.b.intern(opKey{kind: opConstSub, x: x.id, y: -1, c: c},
		c-x.value, []int{x.id}, []float64{-1})
}

// Mul returns x · y, partials [y, x].
func Mul(x, y *Node) *Node {
	b := sameSession(x, y)
	return b.intern(opKey{kind: opMul, x: x.id, y: y.id},
		x.value*y.value, []int{x.id, y.id}, []float64{y.value, x.value})
}

// MulConst returns x · c, partial [c].
func MulConst(x *Node, c float64) *Node {
	return x.b.intern(opKey{kind: opMulConst, x: x.id, y: -1, c: c},
		x.value*c, []int{x.id}, []float64{c})
}

// Div returns x / y, partials [1/y, -x/y²].
// Fails with ErrDivisionByZero when y's value is zero.
func Div(x, y *Node) *Node {
	b := sameSession(x, y)
	if y.value == 0 {
		scalar.Failf(scalar.ErrDivisionByZero, "graph node with zero value as denominator")
	}
	return b.intern(opKey{kind: opDiv, x: x.id, y: y.id},
		x.value/y.value, []int{x.id, y.id},
		[]float64{1 / y.value, -x.value / (y.value * y.value)})
}

// DivConst returns x / c, partial [1/c].
// Fails with ErrDivisionByZero when c is zero.
func DivConst(x *Node, c float64) *Node {
	if c == 0 {
		scalar.Failf(scalar.ErrDivisionByZero, "division of graph node by constant zero")
	}
	return x.b.intern(opKey{kind: opDivConst, x: x.id, y: -1, c: c},
		x.value/c, []int{x.id}, []float64{1 / c})
}

// ConstDiv returns c / x, partial [-c/x²].
// Fails with ErrDivisionByZero when x's value is zero.
func ConstDiv(c float64, x *Node) *Node {
	if x.value == 0 {
		scalar.Failf(scalar.ErrDivisionByZero, "graph node with zero value as denominator")
	}
	return x.b.intern(opKey{kind: opConstDiv, x: x.id, y: -1, c: c},
		c/x.value, []int{x.id}, []float64{-c / (x.value * x.value)})
}

// Pow returns x^y for node operands, partials [y·x^(y-1), x^y·ln(x)].
// The second partial needs ln of the base, so a non-positive base fails with
// ErrDomain. Constant exponents take PowConst, which allows negative bases
// with integer exponents.
func Pow(x, y *Node) *Node {
	b := sameSession(x, y)
	if x.value <= 0 {
		scalar.Failf(scalar.ErrDomain, "base %g requires a positive value for a varying exponent", x.value)
	}
	value := math.Pow(x.value, y.value)
	return b.intern(opKey{kind: opPow, x: x.id, y: y.id},
		value, []int{x.id, y.id},
		[]float64{y.value * math.Pow(x.value, y.value-1), value * math.Log(x.value)})
}

// PowConst returns x^n for a constant real exponent, partial [n·x^(n-1)].
// Edge cases mirror the forward-mode rule: a negative base with a
// non-integer exponent fails with ErrDomain, and a zero base fails with
// ErrDivisionByZero when the value (n < 0) or the partial (0 < n < 1)
// divides by the base.
func PowConst(x *Node, n float64) *Node {
	key := opKey{kind: opPowConst, x: x.id, y: -1, c: n}
	switch {
	case n == 0:
		return x.b.intern(key, 1, []int{x.id}, []float64{0})
	case x.value == 0:
		if n < 0 {
			scalar.Failf(scalar.ErrDivisionByZero, "zero base raised to negative exponent %g", n)
		}
		if n < 1 {
			scalar.Failf(scalar.ErrDivisionByZero, "partial of zero base raised to exponent %g", n)
		}
		return x.b.intern(key, 0, []int{x.id}, []float64{n * math.Pow(0, n-1)})
	case x.value < 0 && n != math.Trunc(n):
		scalar.Failf(scalar.ErrDomain, "negative base %g raised to non-integer exponent %g", x.value, n)
	}
	return x.b.intern(key, math.Pow(x.value, n),
		[]int{x.id}, []float64{n * math.Pow(x.value, n-1)})
}

// ConstPow returns c^x for a constant base, partial [c^x·ln(c)].
// Fails with ErrDomain for a non-positive base.
func ConstPow(c float64, x *Node) *Node {
	if c <= 0 {
		scalar.Failf(scalar.ErrDomain, "exponential with non-positive base %g", c)
	}
	value := math.Pow(c, x.value)
	return x.b.intern(opKey{kind: opConstPow, x: x.id, y: -1, c: c},
		value, []int{x.id}, []float64{value * math.Log(c)})
}

// Neg returns -x, partial [-1].
func Neg(x *Node) *Node {
	return x.b.intern(opKey{kind: opNeg, x: x.id, y: -1},
		-x.value, []int{x.id}, []float64{-1})
}

// sameSession checks that both operands belong to one Builder.
func sameSession(x, y *Node) *Builder {
	if x.b != y.b {
		scalar.Failf(ErrSessionMismatch, "node %s and node %s", x, y)
	}
	return x.b
}
