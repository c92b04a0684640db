package autodiff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/parallel"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// jacobianForward fills the matrix one variable at a time. Each column is an
// independent dual pass over an isolated set of inputs, so the columns fan
// out across goroutines; column j only ever writes cells (i, j).
func (a *AutoDiff) jacobianForward(point []float64, par parallel.Config) (*mat.Dense, error) {
	jac := mat.NewDense(len(a.funcs), len(point), nil)
	errs := make([]error, len(point))

	parallel.For(len(point), func(j int) {
		errs[j] = a.forwardColumnInto(jac, point, j)
	}, par)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return jac, nil
}

func (a *AutoDiff) forwardColumnInto(jac *mat.Dense, point []float64, j int) (err error) {
	defer recoverViolation(&err)
	a.forwardColumn(point, j, func(row int, derivative float64) {
		jac.Set(row, j, derivative)
	})
	return nil
}

// forwardColumn seeds variable j with a unit dual part, evaluates every
// function, and hands each derivative to set.
func (a *AutoDiff) forwardColumn(point []float64, j int, set func(row int, derivative float64)) {
	inputs := make([]scalar.Value, len(point))
	for k, p := range point {
		if k == j {
			inputs[k] = dual.New(p)
		} else {
			inputs[k] = dual.Const(p)
		}
	}
	for i, f := range a.funcs {
		set(i, dualPart(f(inputs)))
	}
}

// dualPart reads the derivative off a forward-mode result. Constant results
// differentiate to zero; anything outside the forward representations is a
// misuse of the callable contract.
func dualPart(v scalar.Value) float64 {
	switch r := v.(type) {
	case dual.Number:
		return r.Dual
	case scalar.Real:
		return 0
	}
	scalar.Failf(scalar.ErrTypeMismatch, "function returned %T under forward mode", v)
	return 0
}
