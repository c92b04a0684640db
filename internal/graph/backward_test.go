package graph

import (
	"math"
	"testing"
)

func TestBackward_Polynomial(t *testing.T) {
	// f(x) = x² + 2x at x = 2: f = 8, df/dx = 6.
	b := NewBuilder()
	x := b.Leaf(2)
	f := Add(PowConst(x, 2), MulConst(x, 2))

	if f.Value() != 8 {
		t.Errorf("value = %v, want 8", f.Value())
	}
	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}
	if adjoints[x] != 6 {
		t.Errorf("df/dx = %v, want 6", adjoints[x])
	}
	if adjoints[f] != 1 {
		t.Errorf("root adjoint = %v, want 1", adjoints[f])
	}
}

func TestBackward_SumRuleOverRepeatedUse(t *testing.T) {
	// d(x·x)/dx = 2x: the leaf collects one contribution per use.
	b := NewBuilder()
	x := b.Leaf(3)
	f := Mul(x, x)

	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}
	if adjoints[x] != 6 {
		t.Errorf("d(x·x)/dx = %v, want 6", adjoints[x])
	}
}

func TestBackward_SharedSubexpression(t *testing.T) {
	// f = sin(x) + sin(x) dedups to one sin node used twice: df/dx = 2cos(x).
	b := NewBuilder()
	x := b.Leaf(0.5)
	f := Add(Sin(x), Sin(x))

	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}
	if want := 2 * math.Cos(0.5); adjoints[x] != want {
		t.Errorf("df/dx = %v, want %v", adjoints[x], want)
	}
}

func TestBackward_TwoVariables(t *testing.T) {
	// f(x1, x2) = x1² + 2·x2 at (2, 3): ∂f/∂x1 = 4, ∂f/∂x2 = 2.
	b := NewBuilder()
	x1 := b.Leaf(2)
	x2 := b.Leaf(3)
	f := Add(PowConst(x1, 2), MulConst(x2, 2))

	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}
	if adjoints[x1] != 4 {
		t.Errorf("∂f/∂x1 = %v, want 4", adjoints[x1])
	}
	if adjoints[x2] != 2 {
		t.Errorf("∂f/∂x2 = %v, want 2", adjoints[x2])
	}
}

func TestBackward_UnreferencedLeafZero(t *testing.T) {
	b := NewBuilder()
	x := b.Leaf(2)
	unused := b.Leaf(9)
	f := PowConst(x, 3)

	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}
	if _, ok := adjoints[unused]; ok {
		t.Error("unreachable leaf reported in the adjoint map")
	}
	if unused.Adjoint() != 0 {
		t.Errorf("unreachable leaf adjoint = %v, want 0", unused.Adjoint())
	}
}

func TestBackward_RepeatedPassesOneSession(t *testing.T) {
	// Two roots over one arena, differentiated one after the other. Each
	// pass starts from cleared adjoints, so the first result must not leak
	// into the second.
	b := NewBuilder()
	x := b.Leaf(2)
	f1 := Add(PowConst(x, 2), MulConst(x, 2))
	f2 := Sin(x)

	first, err := Backward(f1)
	if err != nil {
		t.Fatalf("Backward(f1) returned error: %v", err)
	}
	if first[x] != 6 {
		t.Errorf("df1/dx = %v, want 6", first[x])
	}

	second, err := Backward(f2)
	if err != nil {
		t.Fatalf("Backward(f2) returned error: %v", err)
	}
	if want := math.Cos(2); second[x] != want {
		t.Errorf("df2/dx = %v, want %v", second[x], want)
	}

	// The second pass must also have cleared f1's internal adjoints.
	if f1.Adjoint() != 0 {
		t.Errorf("stale adjoint %v on the first root", f1.Adjoint())
	}
}

func TestBackward_ChainThroughElementaryFunctions(t *testing.T) {
	// f(x) = exp(sin(x)) at x = 1.3: df/dx = exp(sin(x))·cos(x).
	b := NewBuilder()
	x := b.Leaf(1.3)
	f := Exp(Sin(x))

	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}
	if want := math.Exp(math.Sin(1.3)) * math.Cos(1.3); adjoints[x] != want {
		t.Errorf("df/dx = %v, want %v", adjoints[x], want)
	}
}

func TestBackward_OrderIndependence(t *testing.T) {
	// Sweeping the arena in reverse creation order is also a valid
	// topological order; the accumulated adjoints must come out the same.
	build := func() (*Builder, *Node, *Node, *Node) {
		b := NewBuilder()
		x := b.Leaf(2)
		y := b.Leaf(0.5)
		u := Mul(x, y)
		f := Add(Mul(u, u), Add(u, PowConst(x, 2)))
		return b, x, y, f
	}

	_, x, y, f := build()
	adjoints, err := Backward(f)
	if err != nil {
		t.Fatalf("Backward returned error: %v", err)
	}

	b2, x2, y2, f2 := build()
	for _, n := range b2.nodes {
		n.adjoint = 0
	}
	f2.adjoint = 1
	for i := len(b2.nodes) - 1; i >= 0; i-- {
		n := b2.nodes[i]
		for j, pid := range n.parents {
			b2.nodes[pid].adjoint += n.adjoint * n.partials[j]
		}
	}

	if adjoints[x] != x2.adjoint {
		t.Errorf("x adjoint %v differs from creation-order sweep %v", adjoints[x], x2.adjoint)
	}
	if adjoints[y] != y2.adjoint {
		t.Errorf("y adjoint %v differs from creation-order sweep %v", adjoints[y], y2.adjoint)
	}
}

func BenchmarkBuildAndBackward(b *testing.B) {
	for i := 0; i < b.N; i++ {
		builder := NewBuilder()
		f := builder.Leaf(0.7)
		for depth := 0; depth < 32; depth++ {
			f = Logistic(Add(Mul(f, f), Sin(f)))
		}
		if _, err := Backward(f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInternHit(b *testing.B) {
	builder := NewBuilder()
	x := builder.Leaf(0.7)
	Sin(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sin(x)
	}
}
