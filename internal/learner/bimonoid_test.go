package learner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func addF(x, y float64) float64 { return x + y }
func subF(x, y float64) float64 { return x - y }

// TestMult tests the merge of two untrained endolearners: outputs sum,
// and the residual against the second input is handed to both sides.
func TestMult(t *testing.T) {
	double := Learner[Unit, float64, float64]{
		Implement: func(_ Unit, a float64) float64 { return 2 * a },
		Update:    func(u Unit, _, _ float64) Unit { return u },
		Request:   func(_ Unit, a, _ float64) float64 { return a },
	}
	m := Mult(addF, subF, Identity[float64](), double)

	in := MkPair(3.0, 4.0)
	if got := m.Implement(Unit{}, in); got != 3+8 {
		t.Errorf("mult.i = %v, want 11", got)
	}

	req := m.Request(Unit{}, in, 10)
	assert.Equal(t, MkPair(6.0, 6.0), req, "residual c-a2 goes to both inputs")

	// Nothing to train.
	assert.Equal(t, Unit{}, m.Update(Unit{}, in, 10))
}

// TestComultForward tests the diagonal forward rule.
func TestComultForward(t *testing.T) {
	c := Comult[float64]()
	assert.Equal(t, MkPair(1.5, 1.5), c.Implement(Unit{}, 1.5))
}

// TestComultUnsupported tests that the undefined training rules fail
// loudly instead of returning a silently wrong result.
func TestComultUnsupported(t *testing.T) {
	c := Comult[float64]()

	assertPanicsUnsupported(t, func() {
		c.Update(Unit{}, 1, MkPair(1.0, 2.0))
	})
	assertPanicsUnsupported(t, func() {
		c.Request(Unit{}, 1, MkPair(1.0, 2.0))
	})
}

func assertPanicsUnsupported(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnsupported) {
			t.Fatalf("panic value = %v, want ErrUnsupported", r)
		}
	}()
	fn()
}
