package autodiff

import (
	"fmt"
	"strings"

	"github.com/tangent-ml/tangent/internal/parallel"
)

// Mode selects how derivatives are computed. Both modes produce the same
// values; they differ in cost. Forward runs one pass per variable and wins
// for few inputs; Reverse runs one pass per function and wins for few
// outputs over many inputs.
type Mode uint8

const (
	// Forward differentiates with dual numbers, one pass per variable.
	Forward Mode = iota
	// Reverse records a computational graph and differentiates with one
	// backward pass per function.
	Reverse
)

func (m Mode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode reads a mode name. The spellings "f", "forward", "r", and
// "reverse" are accepted in any casing; anything else fails with
// ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "f", "forward":
		return Forward, nil
	case "r", "reverse":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Option configures one derivative computation.
type Option func(*config)

type config struct {
	mode Mode
	par  parallel.Config
}

func newConfig(opts []Option) config {
	cfg := config{mode: Forward, par: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMode selects the differentiation mode. The default is Forward.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithParallel controls the goroutine fan-out of forward-mode passes.
// parallel.Sequential() keeps everything on the calling goroutine.
func WithParallel(par parallel.Config) Option {
	return func(c *config) { c.par = par }
}
