// Package loss provides per-component error functions with the gradient
// and gradient-inversion operations gradient descent and backpropagation
// require.
package loss

import (
	"errors"
	"fmt"
)

// ErrSingular reports a gradient inversion with no defined result.
var ErrSingular = errors.New("loss: gradient inversion is singular")

// Loss scores one output component against its target.
//
// Invert is the functional inverse of Grad in its target argument: given
// an output y and a gradient value g, it recovers the target t with
// Grad(y, t) == g. Backpropagation uses Invert to turn an error gradient
// back into an output-level training target. Inversions with no defined
// result return ErrSingular; values are never clamped.
type Loss interface {
	// Eval computes e(y, t).
	Eval(y, t float64) float64

	// Grad computes the derivative of e with respect to y.
	Grad(y, t float64) float64

	// Invert recovers the target whose gradient at y equals g.
	Invert(y, g float64) (float64, error)
}

// Quadratic is the squared error e(y, t) = (y-t)^2 / 2.
type Quadratic struct{}

// Eval computes (y-t)^2 / 2.
func (Quadratic) Eval(y, t float64) float64 {
	d := y - t
	return 0.5 * d * d
}

// Grad computes y - t.
func (Quadratic) Grad(y, t float64) float64 {
	return y - t
}

// Invert recovers t = y - g.
func (Quadratic) Invert(y, g float64) (float64, error) {
	return y - g, nil
}

// Scaled is the quadratic error scaled by Alpha:
// e(y, t) = Alpha * (y-t)^2 / 2.
type Scaled struct {
	Alpha float64
}

// NewScaled creates a Scaled loss with the given alpha.
func NewScaled(alpha float64) Scaled {
	return Scaled{Alpha: alpha}
}

// Eval computes Alpha * (y-t)^2 / 2.
func (s Scaled) Eval(y, t float64) float64 {
	d := y - t
	return 0.5 * s.Alpha * d * d
}

// Grad computes Alpha * (y - t).
func (s Scaled) Grad(y, t float64) float64 {
	return s.Alpha * (y - t)
}

// Invert recovers t = y - g/Alpha. It fails when Alpha is zero, where
// every target produces the same (zero) gradient.
func (s Scaled) Invert(y, g float64) (float64, error) {
	if s.Alpha == 0 {
		return 0, fmt.Errorf("%w: alpha is zero", ErrSingular)
	}
	return y - g/s.Alpha, nil
}
