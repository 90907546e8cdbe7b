// Package opt provides the gradient step used by learner update rules.
package opt

import "gonum.org/v1/gonum/floats"

// SGD (Stochastic Gradient Descent) takes plain gradient steps.
type SGD struct {
	LearningRate float64
}

// Step computes updated parameters: params - lr * gradients.
// Returns a new slice with updated values.
func (s SGD) Step(params, gradients []float64) []float64 {
	if len(params) != len(gradients) {
		panic("opt: parameters and gradients must have same length")
	}
	out := make([]float64, len(params))
	floats.AddScaledTo(out, params, -s.LearningRate, gradients)
	return out
}
