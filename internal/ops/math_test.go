package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/scalar"
)

// elementary lists every function with a sample point inside its domain.
var elementary = []struct {
	name string
	f    func(scalar.Value) scalar.Value
	x    float64
}{
	{"sin", Sin, 0.7},
	{"sin negative", Sin, -1.2},
	{"cos", Cos, 0.7},
	{"tan", Tan, 0.7},
	{"exp", Exp, 0.7},
	{"exp base 2", func(v scalar.Value) scalar.Value { return ExpBase(v, 2) }, 0.7},
	{"log", Log, 0.7},
	{"log base 10", func(v scalar.Value) scalar.Value { return LogBase(v, 10) }, 0.7},
	{"sqrt", Sqrt, 0.7},
	{"sinh", Sinh, 0.7},
	{"cosh", Cosh, 0.7},
	{"tanh", Tanh, 0.7},
	{"asin", Asin, 0.7},
	{"acos", Acos, 0.7},
	{"atan", Atan, 0.7},
	{"atan large", Atan, -31.5},
	{"logistic", Logistic, 0.7},
}

func TestElementary_ValuesAgreeAcrossRepresentations(t *testing.T) {
	for _, tt := range elementary {
		t.Run(tt.name, func(t *testing.T) {
			plain := tt.f(scalar.Real(tt.x))
			d := tt.f(dual.New(tt.x))
			b := graph.NewBuilder()
			n := tt.f(b.Leaf(tt.x))

			// Bit-for-bit: the same value routine runs under every
			// representation.
			assert.Equal(t, plain.Float(), d.Float(), "dual value diverges from real")
			assert.Equal(t, plain.Float(), n.Float(), "node value diverges from real")
		})
	}
}

func TestElementary_DerivativesAgreeAcrossRepresentations(t *testing.T) {
	for _, tt := range elementary {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.f(dual.New(tt.x)).(dual.Number)
			b := graph.NewBuilder()
			n := tt.f(b.Leaf(tt.x)).(*graph.Node)

			require.Len(t, n.Partials(), 1)
			assert.Equal(t, d.Dual, n.Partials()[0], "node partial diverges from dual derivative")
		})
	}
}

func TestElementary_KnownValues(t *testing.T) {
	assert.Equal(t, scalar.Real(math.Sin(2)), Sin(scalar.Real(2)))
	assert.Equal(t, scalar.Real(1), Exp(scalar.Real(0)))
	assert.Equal(t, scalar.Real(0), Log(scalar.Real(1)))
	assert.Equal(t, scalar.Real(3), Sqrt(scalar.Real(9)))
	assert.Equal(t, scalar.Real(math.Pi/2), Asin(scalar.Real(1)))
	assert.Equal(t, scalar.Real(0.5), Logistic(scalar.Real(0)))
	assert.Equal(t, scalar.Real(3), LogBase(scalar.Real(1000), 10))
	assert.Equal(t, scalar.Real(8), ExpBase(scalar.Real(3), 2))
}

func TestElementary_ValueDomainErrorsEveryRepresentation(t *testing.T) {
	b := graph.NewBuilder()
	values := []scalar.Value{scalar.Real(0), dual.New(0), b.Leaf(0)}
	for _, v := range values {
		requireViolation(t, scalar.ErrDomain, func() { Log(v) })
	}

	negatives := []scalar.Value{scalar.Real(-1), dual.New(-1), b.Leaf(-1)}
	for _, v := range negatives {
		requireViolation(t, scalar.ErrDomain, func() { Sqrt(v) })
	}

	outside := []scalar.Value{scalar.Real(2), dual.New(2), b.Leaf(2)}
	for _, v := range outside {
		requireViolation(t, scalar.ErrDomain, func() { Asin(v) })
		requireViolation(t, scalar.ErrDomain, func() { Acos(v) })
	}
}

func TestElementary_DerivativeSingularitiesSpareRealValues(t *testing.T) {
	// sqrt(0) and asin(1) have values but unbounded derivatives: plain
	// reals evaluate, derivative-carrying representations fail.
	assert.Equal(t, scalar.Real(0), Sqrt(scalar.Real(0)))
	assert.Equal(t, scalar.Real(math.Pi/2), Asin(scalar.Real(1)))

	b := graph.NewBuilder()
	requireViolation(t, scalar.ErrDivisionByZero, func() { Sqrt(dual.New(0)) })
	requireViolation(t, scalar.ErrDivisionByZero, func() { Sqrt(b.Leaf(0)) })
	requireViolation(t, scalar.ErrDivisionByZero, func() { Asin(dual.New(1)) })
	requireViolation(t, scalar.ErrDivisionByZero, func() { Acos(b.Leaf(-1)) })
}

func TestElementary_NodeDispatchInterns(t *testing.T) {
	b := graph.NewBuilder()
	x := b.Leaf(0.7)

	first := Sin(x).(*graph.Node)
	second := Sin(x).(*graph.Node)
	assert.Same(t, first, second, "dispatch must reuse the interned node")

	withBase2 := ExpBase(x, 2).(*graph.Node)
	withBase3 := ExpBase(x, 3).(*graph.Node)
	assert.NotSame(t, withBase2, withBase3, "different bases are different operations")
}

func TestElementary_CompositionAcrossDispatch(t *testing.T) {
	// tanh(x)² + logistic(x) under dual and graph agree exactly.
	f := func(x scalar.Value) scalar.Value {
		return Add(Pow(Tanh(x), scalar.Real(2)), Logistic(x))
	}

	const at = 0.9
	d := f(dual.New(at)).(dual.Number)

	b := graph.NewBuilder()
	x := b.Leaf(at)
	root := f(x).(*graph.Node)

	assert.Equal(t, d.Real, root.Value())

	adjoints, err := graph.Backward(root)
	require.NoError(t, err)
	assert.InDelta(t, d.Dual, adjoints[x], 1e-12)
}
