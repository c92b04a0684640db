// Package autodiff evaluates user functions and extracts their derivatives.
//
// Functions are ordinary Go callables written against the scalar.Value
// interface and the ops package:
//
//	f := func(x []scalar.Value) scalar.Value {
//	    return ops.Add(ops.Pow(x[0], scalar.Real(2)), ops.Mul(scalar.Real(2), x[0]))
//	}
//	ad := autodiff.New(f)
//	jac, err := ad.Jacobian([]float64{2})  // (([6]), nil)
//
// The same callable runs unchanged under both differentiation modes: forward
// mode evaluates it on dual numbers, once per variable; reverse mode
// evaluates it once on graph nodes and runs a backward pass per output. The
// Jacobian of n functions over m variables is n×m, rows in declaration
// order, columns in point order.
package autodiff

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/internal/scalar"
)

var (
	// ErrShapeMismatch reports a point, seed, or index whose size does not
	// match the variables of the system.
	ErrShapeMismatch = errors.New("autodiff: shape mismatch")

	// ErrInvalidMode reports a differentiation mode this package does not
	// know.
	ErrInvalidMode = errors.New("autodiff: invalid differentiation mode")
)

// Func is a differentiable scalar function of several variables. It receives
// one Value per variable and returns a single Value built from them with the
// ops package. Returning scalar.Real is allowed and differentiates to zero.
type Func func(x []scalar.Value) scalar.Value

// AutoDiff differentiates a system of functions over a common set of
// variables.
//
// The last computed Jacobian and directional derivative are cached per
// point (and seed): repeating a query at the same point reuses them, and a
// new seed at a cached point costs only the matrix-vector product. An
// AutoDiff is not safe for concurrent use.
type AutoDiff struct {
	funcs []Func

	point      []float64
	jacobian   *mat.Dense
	seed       []float64
	derivative *mat.VecDense
}

// New returns an AutoDiff over the given functions. Rows of every Jacobian
// follow the declaration order. New panics when called without functions or
// with a nil function; both are programmer errors.
func New(funcs ...Func) *AutoDiff {
	if len(funcs) == 0 {
		panic("autodiff: New requires at least one function")
	}
	for i, f := range funcs {
		if f == nil {
			panic(fmt.Sprintf("autodiff: function %d is nil", i))
		}
	}
	return &AutoDiff{funcs: slices.Clone(funcs)}
}

// NumOutputs reports the number of functions in the system.
func (a *AutoDiff) NumOutputs() int { return len(a.funcs) }

// Value evaluates every function at point and returns their values in
// declaration order.
func (a *AutoDiff) Value(point []float64) (values []float64, err error) {
	if err := a.checkPoint(point); err != nil {
		return nil, err
	}
	defer recoverViolation(&err)

	inputs := scalar.LiftSlice(point)
	values = make([]float64, len(a.funcs))
	for i, f := range a.funcs {
		values[i] = resultFloat(f(inputs))
	}
	return values, nil
}

// Partial returns the partial derivative of every function with respect to
// variable index at point, using one forward pass seeded at that variable.
func (a *AutoDiff) Partial(point []float64, index int) (partials []float64, err error) {
	if err := a.checkPoint(point); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(point) {
		return nil, fmt.Errorf("%w: variable index %d outside point of %d variables",
			ErrShapeMismatch, index, len(point))
	}
	defer recoverViolation(&err)

	partials = make([]float64, len(a.funcs))
	a.forwardColumn(point, index, func(row int, d float64) {
		partials[row] = d
	})
	return partials, nil
}

// Jacobian returns the n×m matrix of first partial derivatives at point:
// row i holds ∂f_i/∂x_j for every variable j.
//
// The default forward mode runs one dual pass per variable and fans the
// passes out over goroutines; reverse mode (WithMode(Reverse)) builds one
// computational graph shared by all functions and runs one backward pass
// per row. Both modes produce the same matrix, so a result cached at this
// point is returned no matter which mode the call asks for.
func (a *AutoDiff) Jacobian(point []float64, opts ...Option) (*mat.Dense, error) {
	if err := a.checkPoint(point); err != nil {
		return nil, err
	}
	if a.jacobian != nil && floats.Equal(a.point, point) {
		return mat.DenseCopyOf(a.jacobian), nil
	}

	cfg := newConfig(opts)
	jac, err := a.computeJacobian(point, cfg)
	if err != nil {
		return nil, err
	}

	a.point = slices.Clone(point)
	a.jacobian = jac
	a.seed = nil
	a.derivative = nil
	return mat.DenseCopyOf(jac), nil
}

// Derivative returns the directional derivative J·seed at point: one entry
// per function. A nil seed defaults to the unit seed for single-variable
// systems; systems of several variables require an explicit seed of matching
// length.
//
// The Jacobian behind the product is cached exactly like Jacobian's, so a
// fresh seed at an already-differentiated point costs only the product.
func (a *AutoDiff) Derivative(point, seed []float64, opts ...Option) (*mat.VecDense, error) {
	if err := a.checkPoint(point); err != nil {
		return nil, err
	}
	seed, err := a.checkSeed(point, seed)
	if err != nil {
		return nil, err
	}

	samePoint := a.jacobian != nil && floats.Equal(a.point, point)
	if samePoint && a.derivative != nil && floats.Equal(a.seed, seed) {
		return mat.VecDenseCopyOf(a.derivative), nil
	}

	if !samePoint {
		if _, err := a.Jacobian(point, opts...); err != nil {
			return nil, err
		}
	}

	derivative := mat.NewVecDense(len(a.funcs), nil)
	derivative.MulVec(a.jacobian, mat.NewVecDense(len(seed), seed))

	a.seed = slices.Clone(seed)
	a.derivative = derivative
	return mat.VecDenseCopyOf(derivative), nil
}

func (a *AutoDiff) computeJacobian(point []float64, cfg config) (*mat.Dense, error) {
	switch cfg.mode {
	case Forward:
		return a.jacobianForward(point, cfg.par)
	case Reverse:
		return a.jacobianReverse(point)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, cfg.mode)
	}
}

func (a *AutoDiff) checkPoint(point []float64) error {
	if len(point) == 0 {
		return fmt.Errorf("%w: point has no coordinates", ErrShapeMismatch)
	}
	return nil
}

// checkSeed applies the default unit seed and validates the length.
func (a *AutoDiff) checkSeed(point, seed []float64) ([]float64, error) {
	if seed == nil {
		if len(point) != 1 {
			return nil, fmt.Errorf("%w: a system of %d variables needs an explicit seed",
				ErrShapeMismatch, len(point))
		}
		return []float64{1}, nil
	}
	if len(seed) != len(point) {
		return nil, fmt.Errorf("%w: seed has %d components for %d variables",
			ErrShapeMismatch, len(seed), len(point))
	}
	return seed, nil
}

// resultFloat reads the numeric value of a function result.
func resultFloat(v scalar.Value) float64 {
	if v == nil {
		scalar.Failf(scalar.ErrTypeMismatch, "function returned no value")
	}
	return v.Float()
}

// recoverViolation converts a violation panicked inside a user callable
// into the returned error. Foreign panics keep unwinding.
func recoverViolation(err *error) {
	if r := recover(); r != nil {
		e, ok := scalar.FromPanic(r)
		if !ok {
			panic(r)
		}
		*err = e
	}
}
