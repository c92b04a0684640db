package optimize

import (
	"fmt"
	"math"

	"github.com/tangent-ml/tangent/internal/autodiff"
)

// NewtonConfig holds configuration for Newton root finding.
type NewtonConfig struct {
	Tolerance float64       // |f(x)| below which x counts as a root (default: 1e-4)
	MaxSteps  int           // iteration cap (default: 100)
	Mode      autodiff.Mode // differentiation mode (default: forward)
}

// Newton finds a root of a single-variable function by Newton's method.
//
// Update rule:
//
//	x = x - f(x)/f'(x)
//
// starting from x0, where f' comes from the autodiff engine. Newton returns
// the final iterate and the number of updates performed. When the iteration
// budget runs out, or the derivative vanishes away from a root, it returns
// the last iterate together with ErrNoConvergence. Evaluation failures
// (domain violations and the like) are returned as they occur.
//
// Example:
//
//	// f(x) = x^2 - 5x + 2e^x - sin(x) - 4, roots near -0.42 and 1.662
//	root, steps, err := optimize.Newton(f, 0.5, optimize.NewtonConfig{})
func Newton(f autodiff.Func, x0 float64, config NewtonConfig) (root float64, steps int, err error) {
	if config.Tolerance == 0 {
		config.Tolerance = 1e-4
	}
	if config.MaxSteps == 0 {
		config.MaxSteps = 100
	}

	ad := autodiff.New(f)
	x := x0
	for steps = 0; ; steps++ {
		values, err := ad.Value([]float64{x})
		if err != nil {
			return x, steps, err
		}
		if math.Abs(values[0]) <= config.Tolerance {
			return x, steps, nil
		}
		if steps >= config.MaxSteps {
			return x, steps, fmt.Errorf("%w: |f| = %g after %d steps",
				ErrNoConvergence, math.Abs(values[0]), steps)
		}

		derivative, err := ad.Derivative([]float64{x}, nil, autodiff.WithMode(config.Mode))
		if err != nil {
			return x, steps, err
		}
		slope := derivative.AtVec(0)
		if slope == 0 {
			return x, steps, fmt.Errorf("%w: zero derivative at x = %g", ErrNoConvergence, x)
		}
		x -= values[0] / slope
	}
}
