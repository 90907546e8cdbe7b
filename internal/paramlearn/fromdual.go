package paramlearn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dmfonseca/learnkit/internal/dual"
	"github.com/dmfonseca/learnkit/internal/loss"
)

// DualFunc is a parameterized function family expressed over dual
// numbers, so its exact partial derivatives can be read off by
// forward-mode seeding.
type DualFunc func(p, a []dual.Number[float64]) []dual.Number[float64]

// FromDual builds a learner from a dual-valued function family, deriving
// both jacobians by forward-mode differentiation. This is the usual way
// layer builders feed ordinary numeric functions into the algebra: write
// the function once over duals and let the engine supply di/dp and di/da.
func FromDual(rate float64, e loss.Loss, f DualFunc) Learner {
	eval := func(p, a []float64) []float64 {
		return dual.Values(f(dual.Consts(p), dual.Consts(a)))
	}
	jacP := func(p, a []float64) *mat.Dense {
		ca := dual.Consts(a)
		return dual.Jacobian(func(ps []dual.Number[float64]) []dual.Number[float64] {
			return f(ps, ca)
		}, p)
	}
	jacA := func(p, a []float64) *mat.Dense {
		cp := dual.Consts(p)
		return dual.Jacobian(func(as []dual.Number[float64]) []dual.Number[float64] {
			return f(cp, as)
		}, a)
	}
	return New(rate, e, eval, jacP, jacA)
}
