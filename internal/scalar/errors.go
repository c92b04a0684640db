package scalar

import (
	"errors"
	"fmt"
)

// Violations shared by every representation. Operations detect them at the
// point of violation and fail immediately rather than letting NaN or Inf
// propagate through the rest of the computation.
var (
	// ErrTypeMismatch reports an operand that is neither a real number nor
	// the differentiable representation the operation expects, including
	// mixing forward-mode and reverse-mode values in one expression.
	ErrTypeMismatch = errors.New("scalar: unsupported operand type")

	// ErrDomain reports an argument outside the mathematical domain of a
	// function, such as log of a non-positive number or asin outside [-1, 1].
	ErrDomain = errors.New("scalar: argument outside function domain")

	// ErrDivisionByZero reports a zero denominator, or a zero base raised to
	// an exponent whose value or derivative divides by that base.
	ErrDivisionByZero = errors.New("scalar: division by zero")
)

// EvalError carries a violation out of arithmetic deep inside a user
// callable. Operations panic with *EvalError; the differentiation driver
// recovers it at its API boundary and returns the wrapped error. Any other
// panic value is not ours and keeps unwinding.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string { return e.Err.Error() }

func (e *EvalError) Unwrap() error { return e.Err }

// Failf panics with an *EvalError wrapping sentinel and a formatted detail
// message, so errors.Is(err, sentinel) holds on the recovered error.
func Failf(sentinel error, format string, args ...any) {
	panic(&EvalError{Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)})
}

// FromPanic extracts the evaluation error from a recovered panic value.
// The second result is false for foreign panics, which the caller must
// re-panic.
func FromPanic(r any) (error, bool) {
	if e, ok := r.(*EvalError); ok {
		return e, true
	}
	return nil, false
}

func errLiftf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrTypeMismatch}, args...)...)
}
