package loss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuadratic tests eval, gradient and gradient inversion.
func TestQuadratic(t *testing.T) {
	q := Quadratic{}

	assert.InDelta(t, 0.5, q.Eval(3, 2), 1e-12)
	assert.InDelta(t, 1.0, q.Grad(3, 2), 1e-12)

	target, err := q.Invert(3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, target, 1e-12)
}

// TestInvertRoundTrip tests that Invert is the functional inverse of
// Grad in the target argument.
func TestInvertRoundTrip(t *testing.T) {
	losses := []Loss{Quadratic{}, NewScaled(0.3), NewScaled(4)}
	points := []struct{ y, g float64 }{
		{0, 0}, {1, -2}, {-3.5, 0.25}, {10, 10},
	}

	for _, e := range losses {
		for _, pt := range points {
			target, err := e.Invert(pt.y, pt.g)
			require.NoError(t, err)
			assert.InDelta(t, pt.g, e.Grad(pt.y, target), 1e-12)
		}
	}
}

// TestScaledSingular tests that a degenerate scale reports a singular
// inversion instead of clamping.
func TestScaledSingular(t *testing.T) {
	_, err := NewScaled(0).Invert(1, 1)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("Invert error = %v, want ErrSingular", err)
	}
}
