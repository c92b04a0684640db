package autodiff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// jacobianReverse evaluates the whole system once over a single graph
// session, so subexpressions shared between functions are recorded once,
// then runs one backward pass per function. Row i is the adjoints of the
// leaves under root i; each pass starts from cleared adjoints, keeping the
// rows independent. The passes stay on the calling goroutine: they share
// the arena's adjoint state and must run one after the other.
func (a *AutoDiff) jacobianReverse(point []float64) (jac *mat.Dense, err error) {
	defer recoverViolation(&err)

	builder := graph.NewBuilder()
	leaves := make([]*graph.Node, len(point))
	inputs := make([]scalar.Value, len(point))
	for j, p := range point {
		leaves[j] = builder.Leaf(p)
		inputs[j] = leaves[j]
	}

	jac = mat.NewDense(len(a.funcs), len(point), nil)
	for i, f := range a.funcs {
		switch root := f(inputs).(type) {
		case *graph.Node:
			adjoints, err := graph.Backward(root)
			if err != nil {
				return nil, err
			}
			for j, leaf := range leaves {
				jac.Set(i, j, adjoints[leaf])
			}
		case scalar.Real:
			// A constant function: the row stays zero.
		default:
			scalar.Failf(scalar.ErrTypeMismatch, "function returned %T under reverse mode", root)
		}
	}
	return jac, nil
}
