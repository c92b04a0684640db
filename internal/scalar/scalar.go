// Package scalar defines the value representations that flow through
// differentiable computations.
//
// A computation is written once against the Value interface and evaluated
// under any of exactly three representations:
//   - Real: a plain float64, values only, no derivative tracking
//   - dual.Number: forward-mode, carries value and directional derivative
//   - *graph.Node: reverse-mode, records the computation for a backward pass
//
// The set is closed. Operations in the ops package dispatch over these three
// types; any other Value implementation fails with ErrTypeMismatch.
package scalar

import "strconv"

// Value is a scalar flowing through a differentiable computation.
//
// Float reports the plain numeric value of the scalar: the number itself for
// Real, the real part for dual numbers, the recorded value for graph nodes.
type Value interface {
	Float() float64
	String() string
}

// Real is a plain float64 scalar. It participates in arithmetic and the
// elementary functions like any other Value but carries no derivative
// information, so differentiating a computation that returns Real yields
// zero in every direction.
type Real float64

// Float returns the value as a float64.
func (r Real) Float() float64 { return float64(r) }

func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

// Lift converts a Go number to a Value. Values pass through unchanged.
// Non-numeric arguments fail with ErrTypeMismatch.
func Lift(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case float64:
		return Real(x), nil
	case float32:
		return Real(x), nil
	case int:
		return Real(x), nil
	case int8:
		return Real(x), nil
	case int16:
		return Real(x), nil
	case int32:
		return Real(x), nil
	case int64:
		return Real(x), nil
	case uint:
		return Real(x), nil
	case uint8:
		return Real(x), nil
	case uint16:
		return Real(x), nil
	case uint32:
		return Real(x), nil
	case uint64:
		return Real(x), nil
	default:
		return nil, errLiftf("cannot use %T as a scalar value", v)
	}
}

// LiftSlice converts a point to plain Real values, one per coordinate.
func LiftSlice(point []float64) []Value {
	values := make([]Value, len(point))
	for i, p := range point {
		values[i] = Real(p)
	}
	return values
}
