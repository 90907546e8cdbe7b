package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGradient tests the per-coordinate seeding against closed-form
// partial derivatives.
func TestGradient(t *testing.T) {
	// f(x, y) = x*y + sin(x); df/dx = y + cos(x), df/dy = x
	f := func(xs []Number[float64]) Number[float64] {
		return xs[0].Mul(xs[1]).Add(xs[0].Sin())
	}

	x, y := 1.2, -0.7
	grad := Gradient(f, []float64{x, y})

	assert.InDelta(t, y+math.Cos(x), grad[0], 1e-12)
	assert.InDelta(t, x, grad[1], 1e-12)
}

// TestJacobian tests a vector-valued function against its closed-form
// jacobian.
func TestJacobian(t *testing.T) {
	// f(x, y) = (x*y, x+y, e^x)
	f := func(xs []Number[float64]) []Number[float64] {
		return []Number[float64]{
			xs[0].Mul(xs[1]),
			xs[0].Add(xs[1]),
			xs[0].Exp(),
		}
	}

	x, y := 0.8, 2.5
	j := Jacobian(f, []float64{x, y})

	r, c := j.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("jacobian dims = %dx%d, want 3x2", r, c)
	}

	assert.InDelta(t, y, j.At(0, 0), 1e-12)
	assert.InDelta(t, x, j.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, j.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, j.At(1, 1), 1e-12)
	assert.InDelta(t, math.Exp(x), j.At(2, 0), 1e-12)
	assert.InDelta(t, 0.0, j.At(2, 1), 1e-12)
}

// TestJacobianShapePanics tests the misuse guards.
func TestJacobianShapePanics(t *testing.T) {
	assert.Panics(t, func() {
		Jacobian(func([]Number[float64]) []Number[float64] { return nil }, nil)
	})
	assert.Panics(t, func() {
		Jacobian(func([]Number[float64]) []Number[float64] { return nil }, []float64{1})
	})
}

// TestConstsValues tests the vector lifting helpers round-trip.
func TestConstsValues(t *testing.T) {
	xs := []float64{1, 2, 3}
	ds := Consts(xs)
	for i, d := range ds {
		if d.Dot != 0 {
			t.Errorf("Consts derivative at %d = %v, want 0", i, d.Dot)
		}
	}
	assert.Equal(t, xs, Values(ds))
}
