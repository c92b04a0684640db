package autodiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/ops"
	"github.com/tangent-ml/tangent/internal/parallel"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// polynomial is f(x) = x^2 + 2x, so f(2) = 8 and f'(2) = 6.
func polynomial(x []scalar.Value) scalar.Value {
	return ops.Add(ops.Pow(x[0], scalar.Real(2)), ops.Mul(scalar.Real(2), x[0]))
}

// paraboloid is f(x1, x2) = x1^2 + 2*x2.
func paraboloid(x []scalar.Value) scalar.Value {
	return ops.Add(ops.Pow(x[0], scalar.Real(2)), ops.Mul(scalar.Real(2), x[1]))
}

// counting wraps f so the test can observe how often the driver evaluates it.
func counting(f Func, calls *int) Func {
	return func(x []scalar.Value) scalar.Value {
		*calls++
		return f(x)
	}
}

// assertMatrix checks dimensions and cell values within tol. tol 0 requires
// exact equality.
func assertMatrix(t *testing.T, want [][]float64, got *mat.Dense, tol float64) {
	t.Helper()
	r, c := got.Dims()
	require.Equal(t, len(want), r, "rows")
	require.Equal(t, len(want[0]), c, "columns")
	for i := range want {
		for j, w := range want[i] {
			if tol == 0 {
				assert.Equal(t, w, got.At(i, j), "cell (%d,%d)", i, j)
			} else {
				assert.InDelta(t, w, got.At(i, j), tol, "cell (%d,%d)", i, j)
			}
		}
	}
}

func TestNew(t *testing.T) {
	ad := New(polynomial, paraboloid)
	assert.Equal(t, 2, ad.NumOutputs())

	assert.Panics(t, func() { New() })
	assert.Panics(t, func() { New(polynomial, nil) })
}

func TestValue(t *testing.T) {
	ad := New(polynomial, func(x []scalar.Value) scalar.Value { return ops.Sin(x[0]) })

	values, err := ad.Value([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{8, math.Sin(2)}, values)
}

func TestValue_ConstantFunction(t *testing.T) {
	ad := New(func(x []scalar.Value) scalar.Value { return scalar.Real(7) }, polynomial)

	values, err := ad.Value([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, values)

	// A constant function differentiates to a zero row in both modes.
	jac, err := ad.Jacobian([]float64{2})
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{0}, {6}}, jac, 0)

	jac, err = New(func(x []scalar.Value) scalar.Value { return scalar.Real(7) }, polynomial).
		Jacobian([]float64{2}, WithMode(Reverse))
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{0}, {6}}, jac, 0)
}

func TestValue_NilResult(t *testing.T) {
	ad := New(func(x []scalar.Value) scalar.Value { return nil })

	_, err := ad.Value([]float64{1})
	assert.ErrorIs(t, err, scalar.ErrTypeMismatch)
}

func TestEmptyPoint(t *testing.T) {
	ad := New(polynomial)

	_, err := ad.Value(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ad.Partial(nil, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ad.Jacobian(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ad.Derivative(nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestPartial(t *testing.T) {
	ad := New(paraboloid)

	partials, err := ad.Partial([]float64{2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, partials)

	partials, err = ad.Partial([]float64{2, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, partials)
}

func TestPartial_IndexOutOfRange(t *testing.T) {
	ad := New(paraboloid)

	for _, index := range []int{-1, 2} {
		_, err := ad.Partial([]float64{2, 3}, index)
		assert.ErrorIs(t, err, ErrShapeMismatch, "index %d", index)
	}
}

func TestJacobian_SingleVariable(t *testing.T) {
	jac, err := New(polynomial).Jacobian([]float64{2})
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{6}}, jac, 0)

	jac, err = New(polynomial).Jacobian([]float64{2}, WithMode(Reverse))
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{6}}, jac, 0)
}

func TestJacobian_TwoVariables(t *testing.T) {
	jac, err := New(paraboloid).Jacobian([]float64{2, 3})
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{4, 2}}, jac, 0)

	jac, err = New(paraboloid).Jacobian([]float64{2, 3}, WithMode(Reverse))
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{4, 2}}, jac, 0)
}

func TestJacobian_TwoFunctions(t *testing.T) {
	sine := func(x []scalar.Value) scalar.Value { return ops.Sin(x[0]) }
	want := [][]float64{{6}, {math.Cos(2)}}

	jac, err := New(polynomial, sine).Jacobian([]float64{2})
	require.NoError(t, err)
	assertMatrix(t, want, jac, 0)

	jac, err = New(polynomial, sine).Jacobian([]float64{2}, WithMode(Reverse))
	require.NoError(t, err)
	assertMatrix(t, want, jac, 0)
}

func TestJacobian_ModesAgree(t *testing.T) {
	f := func(x []scalar.Value) scalar.Value {
		return ops.Add(
			ops.Mul(ops.Exp(ops.Sin(x[0])), x[1]),
			ops.Logistic(ops.Mul(x[0], x[1])),
		)
	}
	point := []float64{0.7, -1.3}

	forward, err := New(f).Jacobian(point)
	require.NoError(t, err)
	reverse, err := New(f).Jacobian(point, WithMode(Reverse))
	require.NoError(t, err)

	for j := range point {
		assert.InDelta(t, forward.At(0, j), reverse.At(0, j), 1e-12, "column %d", j)
	}
}

func TestJacobian_Caching(t *testing.T) {
	calls := 0
	ad := New(counting(paraboloid, &calls))

	jac, err := ad.Jacobian([]float64{2, 3})
	require.NoError(t, err)
	evaluated := calls
	assert.Equal(t, 2, evaluated, "one forward pass per variable")

	// Same point: served from cache, no re-evaluation, and the cached
	// matrix survives mutation of the returned copy.
	jac.Set(0, 0, 999)
	jac, err = ad.Jacobian([]float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, evaluated, calls)
	assertMatrix(t, [][]float64{{4, 2}}, jac, 0)

	// A new point recomputes, and moving back recomputes again: only the
	// last point is remembered.
	_, err = ad.Jacobian([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, evaluated+2, calls)

	_, err = ad.Jacobian([]float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, evaluated+4, calls)
}

func TestJacobian_CacheIgnoresMode(t *testing.T) {
	calls := 0
	ad := New(counting(polynomial, &calls))

	_, err := ad.Jacobian([]float64{2})
	require.NoError(t, err)
	evaluated := calls

	jac, err := ad.Jacobian([]float64{2}, WithMode(Reverse))
	require.NoError(t, err)
	assert.Equal(t, evaluated, calls, "cached point must not re-evaluate")
	assertMatrix(t, [][]float64{{6}}, jac, 0)
}

func TestJacobian_Parallel(t *testing.T) {
	sum := func(x []scalar.Value) scalar.Value {
		acc := scalar.Value(scalar.Real(0))
		for _, v := range x {
			acc = ops.Add(acc, ops.Sin(v))
		}
		return acc
	}
	point := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	jac, err := New(sum).Jacobian(point,
		WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinPerWorker: 1}))
	require.NoError(t, err)
	for j, p := range point {
		assert.Equal(t, math.Cos(p), jac.At(0, j), "column %d", j)
	}

	jac, err = New(sum).Jacobian(point, WithParallel(parallel.Sequential()))
	require.NoError(t, err)
	for j, p := range point {
		assert.Equal(t, math.Cos(p), jac.At(0, j), "column %d", j)
	}
}

func TestJacobian_DomainError(t *testing.T) {
	logf := func(x []scalar.Value) scalar.Value { return ops.Log(x[0]) }

	for _, opts := range [][]Option{nil, {WithMode(Reverse)}} {
		_, err := New(logf).Jacobian([]float64{0}, opts...)
		require.Error(t, err)
		assert.ErrorIs(t, err, scalar.ErrDomain)

		var evalErr *scalar.EvalError
		assert.ErrorAs(t, err, &evalErr)
	}
}

func TestJacobian_DivisionByZero(t *testing.T) {
	inverse := func(x []scalar.Value) scalar.Value { return ops.Div(scalar.Real(1), x[0]) }

	for _, opts := range [][]Option{nil, {WithMode(Reverse)}} {
		_, err := New(inverse).Jacobian([]float64{0}, opts...)
		assert.ErrorIs(t, err, scalar.ErrDivisionByZero)
	}
}

func TestJacobian_ForeignRepresentation(t *testing.T) {
	// A callable must build its result from the inputs it was handed.
	// Returning a forward value under reverse mode (or the other way
	// around) is a contract violation, not a crash.
	rogueDual := func(x []scalar.Value) scalar.Value { return dual.New(1) }
	_, err := New(rogueDual).Jacobian([]float64{1}, WithMode(Reverse))
	assert.ErrorIs(t, err, scalar.ErrTypeMismatch)

	b := graph.NewBuilder()
	node := b.Leaf(3)
	rogueNode := func(x []scalar.Value) scalar.Value { return node }
	_, err = New(rogueNode).Jacobian([]float64{1})
	assert.ErrorIs(t, err, scalar.ErrTypeMismatch)
}

func TestDerivative_DefaultSeed(t *testing.T) {
	// One variable: nil seed means the unit seed.
	got, err := New(polynomial).Derivative([]float64{2}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, 6.0, got.AtVec(0))
}

func TestDerivative_SeedRequired(t *testing.T) {
	ad := New(paraboloid)

	_, err := ad.Derivative([]float64{2, 3}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = ad.Derivative([]float64{2, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDerivative_Directional(t *testing.T) {
	f1 := func(x []scalar.Value) scalar.Value {
		return ops.Add(ops.Pow(x[0], scalar.Real(2)), ops.Mul(scalar.Real(2), x[1]))
	}
	f2 := func(x []scalar.Value) scalar.Value {
		return ops.Add(ops.Sin(x[0]), ops.Mul(scalar.Real(3), x[1]))
	}
	point := []float64{2, 5}
	seed := []float64{-2, 1}

	for _, opts := range [][]Option{nil, {WithMode(Reverse)}} {
		got, err := New(f1, f2).Derivative(point, seed, opts...)
		require.NoError(t, err)
		require.Equal(t, 2, got.Len())
		assert.InDelta(t, -6, got.AtVec(0), 1e-12)
		assert.InDelta(t, -2*math.Cos(2)+3, got.AtVec(1), 1e-12)
	}
}

func TestDerivative_SeedCaching(t *testing.T) {
	calls := 0
	ad := New(counting(paraboloid, &calls))
	point := []float64{2, 3}

	got, err := ad.Derivative(point, []float64{1, 0})
	require.NoError(t, err)
	evaluated := calls
	assert.Equal(t, 4.0, got.AtVec(0))

	// A new seed at the same point reuses the Jacobian: only the product
	// is recomputed.
	got, err = ad.Derivative(point, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, evaluated, calls)
	assert.Equal(t, 2.0, got.AtVec(0))

	// Repeating the previous seed recomputes only the product as well,
	// and mutating a returned vector leaves the cache intact.
	got.SetVec(0, 999)
	got, err = ad.Derivative(point, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, evaluated, calls)
	assert.Equal(t, 2.0, got.AtVec(0))
}

func TestDerivative_ReusesJacobianCache(t *testing.T) {
	calls := 0
	ad := New(counting(paraboloid, &calls))
	point := []float64{2, 3}

	_, err := ad.Jacobian(point)
	require.NoError(t, err)
	evaluated := calls

	got, err := ad.Derivative(point, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, evaluated, calls, "derivative must reuse the cached Jacobian")
	assert.Equal(t, 6.0, got.AtVec(0))
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"f", Forward},
		{"forward", Forward},
		{"F", Forward},
		{"FORWARD", Forward},
		{"r", Reverse},
		{"reverse", Reverse},
		{"R", Reverse},
		{"Reverse", Reverse},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "central", "backward"} {
		_, err := ParseMode(in)
		assert.ErrorIs(t, err, ErrInvalidMode, in)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "reverse", Reverse.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
