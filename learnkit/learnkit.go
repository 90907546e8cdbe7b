// Package learnkit is the public surface of the compositional learner
// algebra and its forward-mode differentiation engine.
package learnkit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dmfonseca/learnkit/internal/dual"
	"github.com/dmfonseca/learnkit/internal/learner"
	"github.com/dmfonseca/learnkit/internal/loss"
	"github.com/dmfonseca/learnkit/internal/opt"
	"github.com/dmfonseca/learnkit/internal/paramlearn"
)

// Re-export common types for easier access
type (
	Dual[T dual.Float]   = dual.Number[T]
	Learner[P, A, B any] = learner.Learner[P, A, B]
	Pair[X, Y any]       = learner.Pair[X, Y]
	Unit                 = learner.Unit
	Loss                 = loss.Loss
	VecLearner           = paramlearn.Learner
)

// Sentinel errors
var (
	ErrDomain      = dual.ErrDomain
	ErrSingular    = loss.ErrSingular
	ErrUnsupported = learner.ErrUnsupported
)

// Dual numbers
func Const[T dual.Float](x T) Dual[T] {
	return dual.Const(x)
}

func Var[T dual.Float](x T) Dual[T] {
	return dual.Var(x)
}

// Derivative evaluates a scalar dual function at x and returns its value
// and derivative.
func Derivative[T dual.Float](f func(Dual[T]) Dual[T], x T) (T, T) {
	return dual.Derivative(f, x)
}

// Gradient computes the partial derivatives of a scalar dual function.
func Gradient[T dual.Float](f func([]Dual[T]) Dual[T], xs []T) []T {
	return dual.Gradient(f, xs)
}

// Jacobian computes the jacobian of a vector-valued dual function, one
// row per output component. This is how external layer builders derive
// the di/dp and di/da suppliers ParamToLearn consumes.
func Jacobian(f func([]Dual[float64]) []Dual[float64], xs []float64) *mat.Dense {
	return dual.Jacobian(f, xs)
}

// Learner combinators
func Identity[A any]() Learner[Unit, A, A] {
	return learner.Identity[A]()
}

func Compose[P, Q, A, B, C any](g Learner[Q, B, C], f Learner[P, A, B]) Learner[Pair[P, Q], A, C] {
	return learner.Compose(g, f)
}

func Product[P, Q, A, B, C, D any](l1 Learner[P, A, B], l2 Learner[Q, C, D]) Learner[Pair[P, Q], Pair[A, C], Pair[B, D]] {
	return learner.Product(l1, l2)
}

func Braid[P, A, B, C any](l Learner[P, Pair[A, B], C]) Learner[P, Pair[B, A], C] {
	return learner.Braid(l)
}

func Mult[A any](add, sub func(A, A) A, l1, l2 Learner[Unit, A, A]) Learner[Unit, Pair[A, A], A] {
	return learner.Mult(add, sub, l1, l2)
}

func Comult[A any]() Learner[Unit, A, Pair[A, A]] {
	return learner.Comult[A]()
}

// Losses
var Quadratic = loss.Quadratic{}

func ScaledQuadratic(alpha float64) Loss {
	return loss.NewScaled(alpha)
}

// Optimizers
func SGD(lr float64) opt.SGD {
	return opt.SGD{LearningRate: lr}
}

// ParamToLearn builds a gradient-descent learner from a parameterized
// float-vector function and its two jacobians.
func ParamToLearn(rate float64, e Loss, f paramlearn.Func, jacP, jacA paramlearn.Jacobian) VecLearner {
	return paramlearn.New(rate, e, f, jacP, jacA)
}

// FromDual builds a gradient-descent learner from a function family
// written over dual numbers, deriving both jacobians by forward mode.
func FromDual(rate float64, e Loss, f paramlearn.DualFunc) VecLearner {
	return paramlearn.FromDual(rate, e, f)
}
