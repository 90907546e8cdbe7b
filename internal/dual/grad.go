package dual

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Consts lifts a float vector into constant duals.
func Consts[T Float](xs []T) []Number[T] {
	out := make([]Number[T], len(xs))
	for i, x := range xs {
		out[i] = Const(x)
	}
	return out
}

// Values extracts the value components of a dual vector.
func Values[T Float](ds []Number[T]) []T {
	out := make([]T, len(ds))
	for i, d := range ds {
		out[i] = d.Val
	}
	return out
}

// Derivative evaluates f at x and returns the value and derivative of
// f(x). The function must be total on duals; use the error-returning
// operations directly when partial functions are involved.
func Derivative[T Float](f func(Number[T]) Number[T], x T) (T, T) {
	d := f(Var(x))
	return d.Val, d.Dot
}

// Gradient computes the partial derivatives of a scalar-valued function
// at xs by seeding one input variable at a time. This is single-variable
// forward mode repeated per coordinate, so it costs one evaluation of f
// per input dimension.
func Gradient[T Float](f func([]Number[T]) Number[T], xs []T) []T {
	grad := make([]T, len(xs))
	args := Consts(xs)
	for j := range xs {
		args[j] = Var(xs[j])
		grad[j] = f(args).Dot
		args[j] = Const(xs[j])
	}
	return grad
}

// Jacobian computes the jacobian of a vector-valued function at xs, one
// row per output component, one column per input. The output length of f
// must not depend on the seeding.
func Jacobian(f func([]Number[float64]) []Number[float64], xs []float64) *mat.Dense {
	if len(xs) == 0 {
		panic("dual: jacobian requires at least one input")
	}
	args := Consts(xs)
	var j *mat.Dense
	for c := range xs {
		args[c] = Var(xs[c])
		out := f(args)
		args[c] = Const(xs[c])
		if j == nil {
			if len(out) == 0 {
				panic("dual: jacobian requires at least one output")
			}
			j = mat.NewDense(len(out), len(xs), nil)
		}
		if r, _ := j.Dims(); r != len(out) {
			panic(fmt.Sprintf("dual: jacobian output length changed from %d to %d", r, len(out)))
		}
		for r, d := range out {
			j.Set(r, c, d.Dot)
		}
	}
	return j
}
