// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/tangent-ml/tangent/internal/autodiff"
	"github.com/tangent-ml/tangent/internal/parallel"
)

// AutoDiff differentiates a system of functions over a common set of
// variables.
type AutoDiff = autodiff.AutoDiff

// Func is a differentiable scalar function of several variables.
type Func = autodiff.Func

// Mode selects how derivatives are computed.
type Mode = autodiff.Mode

const (
	// Forward differentiates with dual numbers, one pass per variable.
	Forward = autodiff.Forward
	// Reverse records a computational graph and differentiates with one
	// backward pass per function.
	Reverse = autodiff.Reverse
)

// Option configures one derivative computation.
type Option = autodiff.Option

// ParallelConfig controls the goroutine fan-out of forward-mode passes.
type ParallelConfig = parallel.Config

var (
	// ErrShapeMismatch reports a point, seed, or index whose size does not
	// match the variables of the system.
	ErrShapeMismatch = autodiff.ErrShapeMismatch

	// ErrInvalidMode reports an unknown differentiation mode name.
	ErrInvalidMode = autodiff.ErrInvalidMode
)

// New returns an AutoDiff over the given functions. Rows of every Jacobian
// follow the declaration order.
//
// Example:
//
//	ad := autodiff.New(f1, f2)
//	jac, err := ad.Jacobian([]float64{2, 5})
func New(funcs ...Func) *AutoDiff {
	return autodiff.New(funcs...)
}

// ParseMode reads a mode name such as "forward" or "r".
func ParseMode(s string) (Mode, error) {
	return autodiff.ParseMode(s)
}

// WithMode selects the differentiation mode. The default is Forward.
func WithMode(m Mode) Option {
	return autodiff.WithMode(m)
}

// WithParallel controls the goroutine fan-out of forward-mode passes.
func WithParallel(cfg ParallelConfig) Option {
	return autodiff.WithParallel(cfg)
}

// DefaultParallel fans forward-mode passes out over the available CPUs.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential keeps every pass on the calling goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}
