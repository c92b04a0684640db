package optimize

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/internal/autodiff"
)

// GradientDescentConfig holds configuration for gradient descent.
type GradientDescentConfig struct {
	LearningRate float64       // step size (default: 0.01)
	Momentum     float64       // momentum factor (default: 0.0, range: [0, 1))
	Tolerance    float64       // gradient norm below which the point counts as a minimum (default: 1e-6)
	MaxSteps     int           // iteration cap (default: 1000)
	Mode         autodiff.Mode // differentiation mode (default: forward)
}

// GradientDescent minimizes a scalar function of several variables.
//
// Update rule without momentum:
//
//	x = x - lr * grad(x)
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad(x)
//	x = x - lr * velocity
//
// The gradient is the function's Jacobian row from the autodiff engine;
// reverse mode pays off once the variable count grows. GradientDescent
// returns the final iterate and the number of updates performed. When the
// iteration budget runs out first it returns the last iterate together
// with ErrNoConvergence; evaluation failures are returned as they occur.
//
// Example:
//
//	bowl := func(x []scalar.Value) scalar.Value {
//	    a := ops.Sub(x[0], scalar.Real(3))
//	    b := ops.Add(x[1], scalar.Real(1))
//	    return ops.Add(ops.Mul(a, a), ops.Mul(b, b))
//	}
//	minimum, steps, err := optimize.GradientDescent(bowl, []float64{0, 0},
//	    optimize.GradientDescentConfig{LearningRate: 0.1})
//	// minimum -> (3, -1)
func GradientDescent(f autodiff.Func, start []float64, config GradientDescentConfig) (minimum []float64, steps int, err error) {
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-6
	}
	if config.MaxSteps == 0 {
		config.MaxSteps = 1000
	}

	ad := autodiff.New(f)
	x := slices.Clone(start)
	velocity := make([]float64, len(x))

	for steps = 0; ; steps++ {
		jac, err := ad.Jacobian(x, autodiff.WithMode(config.Mode))
		if err != nil {
			return x, steps, err
		}
		grad := mat.Row(nil, 0, jac)

		if floats.Norm(grad, 2) <= config.Tolerance {
			return x, steps, nil
		}
		if steps >= config.MaxSteps {
			return x, steps, fmt.Errorf("%w: gradient norm %g after %d steps",
				ErrNoConvergence, floats.Norm(grad, 2), steps)
		}

		for j := range x {
			velocity[j] = config.Momentum*velocity[j] + grad[j]
			x[j] -= config.LearningRate * velocity[j]
		}
	}
}
