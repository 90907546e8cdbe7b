// Package dual provides forward-mode automatic differentiation over
// (value, derivative) pairs.
//
// A dual number carries a value together with its derivative with respect
// to a single common independent variable. Arithmetic and the elementary
// functions propagate the derivative component exactly, by the chain rule,
// so composing operations on duals yields the exact symbolic derivative of
// the composed expression evaluated at the input point.
package dual

import (
	"errors"
	"fmt"
	"math"
)

// Float is the scalar field dual numbers are built over.
type Float interface {
	~float32 | ~float64
}

// ErrDomain reports an elementary function applied outside its domain.
var ErrDomain = errors.New("dual: argument outside function domain")

// Number is a dual number: a value and its derivative with respect to a
// common independent variable.
type Number[T Float] struct {
	Val T // f(x)
	Dot T // f'(x)
}

// Const lifts a constant: its derivative is zero.
func Const[T Float](x T) Number[T] {
	return Number[T]{Val: x}
}

// Var lifts the independent variable itself: its derivative is one.
func Var[T Float](x T) Number[T] {
	return Number[T]{Val: x, Dot: 1}
}

// Add computes a + b.
func (a Number[T]) Add(b Number[T]) Number[T] {
	return Number[T]{Val: a.Val + b.Val, Dot: a.Dot + b.Dot}
}

// Sub computes a - b.
func (a Number[T]) Sub(b Number[T]) Number[T] {
	return Number[T]{Val: a.Val - b.Val, Dot: a.Dot - b.Dot}
}

// Neg computes -a.
func (a Number[T]) Neg() Number[T] {
	return Number[T]{Val: -a.Val, Dot: -a.Dot}
}

// Mul computes a * b with the product rule a'b + ab'.
func (a Number[T]) Mul(b Number[T]) Number[T] {
	return Number[T]{Val: a.Val * b.Val, Dot: a.Dot*b.Val + a.Val*b.Dot}
}

// Div computes a / b with the quotient rule. Division by a zero value
// follows IEEE semantics, producing infinities or NaN.
func (a Number[T]) Div(b Number[T]) Number[T] {
	return Number[T]{
		Val: a.Val / b.Val,
		Dot: (a.Dot*b.Val - a.Val*b.Dot) / (b.Val * b.Val),
	}
}

// Scale computes c * a for a constant c.
func (a Number[T]) Scale(c T) Number[T] {
	return Number[T]{Val: c * a.Val, Dot: c * a.Dot}
}

// Exp computes e^a.
func (a Number[T]) Exp() Number[T] {
	e := T(math.Exp(float64(a.Val)))
	return Number[T]{Val: e, Dot: a.Dot * e}
}

// Sin computes sin(a).
func (a Number[T]) Sin() Number[T] {
	return Number[T]{
		Val: T(math.Sin(float64(a.Val))),
		Dot: a.Dot * T(math.Cos(float64(a.Val))),
	}
}

// Cos computes cos(a).
func (a Number[T]) Cos() Number[T] {
	return Number[T]{
		Val: T(math.Cos(float64(a.Val))),
		Dot: -a.Dot * T(math.Sin(float64(a.Val))),
	}
}

// Abs computes |a|. The derivative at zero is taken as zero.
func (a Number[T]) Abs() Number[T] {
	switch {
	case a.Val > 0:
		return a
	case a.Val < 0:
		return a.Neg()
	default:
		return Number[T]{}
	}
}

// Log computes ln(a). It fails when the value is not strictly positive.
func (a Number[T]) Log() (Number[T], error) {
	if a.Val <= 0 {
		return Number[T]{}, fmt.Errorf("%w: log of %v", ErrDomain, a.Val)
	}
	return Number[T]{
		Val: T(math.Log(float64(a.Val))),
		Dot: a.Dot / a.Val,
	}, nil
}

// Sqrt computes the square root of a. It fails for negative values; at
// zero the derivative is singular and the call fails rather than divide
// by zero.
func (a Number[T]) Sqrt() (Number[T], error) {
	if a.Val < 0 {
		return Number[T]{}, fmt.Errorf("%w: sqrt of %v", ErrDomain, a.Val)
	}
	if a.Val == 0 {
		return Number[T]{}, fmt.Errorf("%w: sqrt derivative singular at 0", ErrDomain)
	}
	r := T(math.Sqrt(float64(a.Val)))
	return Number[T]{Val: r, Dot: a.Dot / (2 * r)}, nil
}

// Asin computes arcsin(a). It fails when |a| > 1; at |a| = 1 the
// derivative is singular and the call fails.
func (a Number[T]) Asin() (Number[T], error) {
	if err := unitInterval(a.Val, "asin"); err != nil {
		return Number[T]{}, err
	}
	return Number[T]{
		Val: T(math.Asin(float64(a.Val))),
		Dot: a.Dot / T(math.Sqrt(1-float64(a.Val)*float64(a.Val))),
	}, nil
}

// Acos computes arccos(a). It fails when |a| > 1; at |a| = 1 the
// derivative is singular and the call fails.
func (a Number[T]) Acos() (Number[T], error) {
	if err := unitInterval(a.Val, "acos"); err != nil {
		return Number[T]{}, err
	}
	return Number[T]{
		Val: T(math.Acos(float64(a.Val))),
		Dot: -a.Dot / T(math.Sqrt(1-float64(a.Val)*float64(a.Val))),
	}, nil
}

func unitInterval[T Float](x T, name string) error {
	if x < -1 || x > 1 {
		return fmt.Errorf("%w: %s of %v", ErrDomain, name, x)
	}
	if x == -1 || x == 1 {
		return fmt.Errorf("%w: %s derivative singular at %v", ErrDomain, name, x)
	}
	return nil
}
