// Command train runs a small gradient-descent loop over a composite
// learner: two affine stages built from dual-number functions, chained
// with sequential composition and fitted to a line. The loop itself is
// deliberately outside the algebra; it only threads the parameter value
// through successive updates.
package main

import (
	"flag"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dmfonseca/learnkit/learnkit"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	rate := flag.Float64("rate", 0.05, "learning rate")
	epochs := flag.Int("epochs", 400, "training epochs")
	seed := flag.Int64("seed", 1, "weight initialization seed")
	flag.Parse()

	// One affine neuron, written once over duals. Both jacobians are
	// derived from this single definition.
	affine := func(p, a []learnkit.Dual[float64]) []learnkit.Dual[float64] {
		return []learnkit.Dual[float64]{p[0].Mul(a[0]).Add(p[1])}
	}

	first := learnkit.FromDual(*rate, learnkit.Quadratic, affine)
	second := learnkit.FromDual(*rate, learnkit.Quadratic, affine)
	pipe := learnkit.Compose(second, first)

	rng := rand.New(rand.NewSource(*seed))
	param := learnkit.Pair[[]float64, []float64]{
		Fst: []float64{rng.NormFloat64() * 0.5, 0},
		Snd: []float64{rng.NormFloat64() * 0.5, 0},
	}

	target := func(x float64) float64 { return 3*x + 1 }
	xs := []float64{-2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2}

	for epoch := 1; epoch <= *epochs; epoch++ {
		for _, x := range xs {
			param = pipe.Update(param, []float64{x}, []float64{target(x)})
		}
		if epoch%50 == 0 || epoch == *epochs {
			var mse float64
			for _, x := range xs {
				d := pipe.Implement(param, []float64{x})[0] - target(x)
				mse += d * d
			}
			log.Info().
				Int("epoch", epoch).
				Float64("mse", mse/float64(len(xs))).
				Msg("training")
		}
	}

	log.Info().
		Floats64("first", param.Fst).
		Floats64("second", param.Snd).
		Msg("trained pipeline")
}
