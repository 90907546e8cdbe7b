// Package paramlearn turns a differentiable parameterized function into
// a learner that trains by gradient descent and backpropagates through
// gradient inversion.
package paramlearn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dmfonseca/learnkit/internal/learner"
	"github.com/dmfonseca/learnkit/internal/loss"
	"github.com/dmfonseca/learnkit/internal/opt"
)

// Func is a parameterized function family over float vectors: given a
// parameter vector and an input vector it produces an output vector.
type Func func(p, a []float64) []float64

// Jacobian supplies the partial derivatives of a Func at a point, one
// row per output component. For the parameter jacobian the columns index
// the parameter vector; for the input jacobian they index the input.
type Jacobian func(p, a []float64) *mat.Dense

// Learner is the concrete learner shape the functor produces.
type Learner = learner.Learner[[]float64, []float64, []float64]

// New builds a learner from a parameterized function, its two jacobians
// and a per-component error function.
//
// Update performs one gradient-descent step on the parameter:
// p' = p - rate * Jp^T * delta, where delta_k is the error gradient of
// output component k against its target. Request computes the error
// gradient with respect to the input, Ja^T * delta, and maps each
// component through the error function's gradient inversion, recovering
// an input-level target.
//
// Dimension mismatches between the vectors and the supplied jacobians
// fail fast by panic. A singular gradient inversion panics with the
// underlying numeric error; callers own the recovery policy.
func New(rate float64, e loss.Loss, f Func, jacP, jacA Jacobian) Learner {
	sgd := opt.SGD{LearningRate: rate}
	return Learner{
		Implement: func(p, a []float64) []float64 {
			return f(p, a)
		},
		Update: func(p, a, b []float64) []float64 {
			delta := residual(e, f(p, a), b)
			grad := chain(jacP(p, a), delta, len(p), "parameter")
			return sgd.Step(p, grad)
		},
		Request: func(p, a, b []float64) []float64 {
			delta := residual(e, f(p, a), b)
			grad := chain(jacA(p, a), delta, len(a), "input")
			out := make([]float64, len(a))
			for i := range grad {
				t, err := e.Invert(a[i], grad[i])
				if err != nil {
					panic(fmt.Sprintf("paramlearn: request inversion failed at component %d: %v", i, err))
				}
				out[i] = t
			}
			return out
		},
	}
}

// residual computes the per-component error gradient of the outputs
// against their targets.
func residual(e loss.Loss, y, b []float64) []float64 {
	if len(y) != len(b) {
		panic(fmt.Sprintf("paramlearn: output length %d does not match target length %d", len(y), len(b)))
	}
	d := make([]float64, len(y))
	for k := range y {
		d[k] = e.Grad(y[k], b[k])
	}
	return d
}

// chain computes J^T * delta, the chain-rule contraction of a jacobian
// with the output-level error gradient.
func chain(j *mat.Dense, delta []float64, n int, what string) []float64 {
	r, c := j.Dims()
	if r != len(delta) || c != n {
		panic(fmt.Sprintf("paramlearn: %s jacobian is %dx%d, want %dx%d", what, r, c, len(delta), n))
	}
	var g mat.VecDense
	g.MulVec(j.T(), mat.NewVecDense(len(delta), delta))
	return g.RawVector().Data
}
