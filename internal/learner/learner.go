// Package learner implements a compositional algebra of supervised
// learners.
//
// A learner bundles the three operations of a trainable approximation:
// apply the current approximation, update the parameter from a training
// pair, and backpropagate a revised input that the same parameter would
// have mapped closer to the desired output. Learners compose
// sequentially, in parallel, and under input braiding, and the resulting
// structure satisfies the category and monoidal-category laws up to
// reassociation of the paired parameter spaces.
//
// Learners are immutable value data. Training state is the parameter
// value threaded through successive Update calls by the caller, so
// independent learners may be trained concurrently without
// synchronization.
package learner

// Pair is the product of two parameter or data spaces. Composite
// learners own their components' parameters as nested pairs.
type Pair[X, Y any] struct {
	Fst X
	Snd Y
}

// MkPair builds a pair.
func MkPair[X, Y any](x X, y Y) Pair[X, Y] {
	return Pair[X, Y]{Fst: x, Snd: y}
}

// Unit is the trivial parameter space of learners with nothing to train.
type Unit struct{}

// Learner is a trainable approximation of a function from A to B,
// parameterized by P.
//
// Implement applies the current approximation. Update produces an
// updated parameter from a training pair (input, desired output).
// Request backpropagates: it produces an input that, under the same
// parameter, would have produced an output closer to the desired one.
// Request is the training signal handed to an upstream learner; it never
// updates a parameter.
type Learner[P, A, B any] struct {
	Implement func(p P, a A) B
	Update    func(p P, a A, b B) P
	Request   func(p P, a A, b B) A
}

// Identity is the unit of sequential composition: it passes inputs
// through untouched and has nothing to train.
func Identity[A any]() Learner[Unit, A, A] {
	return Learner[Unit, A, A]{
		Implement: func(_ Unit, a A) A { return a },
		Update:    func(u Unit, _ A, _ A) Unit { return u },
		Request:   func(_ Unit, a A, _ A) A { return a },
	}
}

// Compose chains f into g, producing a learner from A to C over the
// paired parameter space.
//
// Update trains the downstream learner g first, against the forward
// value and the pre-update parameter, then trains f against g's request
// computed from that same pre-update parameter. Request backpropagates
// through both stages without updating anything.
func Compose[P, Q, A, B, C any](g Learner[Q, B, C], f Learner[P, A, B]) Learner[Pair[P, Q], A, C] {
	return Learner[Pair[P, Q], A, C]{
		Implement: func(pq Pair[P, Q], a A) C {
			return g.Implement(pq.Snd, f.Implement(pq.Fst, a))
		},
		Update: func(pq Pair[P, Q], a A, c C) Pair[P, Q] {
			b := f.Implement(pq.Fst, a)
			q := g.Update(pq.Snd, b, c)
			target := g.Request(pq.Snd, b, c)
			p := f.Update(pq.Fst, a, target)
			return Pair[P, Q]{Fst: p, Snd: q}
		},
		Request: func(pq Pair[P, Q], a A, c C) A {
			b := f.Implement(pq.Fst, a)
			return f.Request(pq.Fst, a, g.Request(pq.Snd, b, c))
		},
	}
}

// Product runs two learners side by side on paired inputs and outputs.
// The branches share no state, so they are independently (and safely
// concurrently) trainable.
func Product[P, Q, A, B, C, D any](l1 Learner[P, A, B], l2 Learner[Q, C, D]) Learner[Pair[P, Q], Pair[A, C], Pair[B, D]] {
	return Learner[Pair[P, Q], Pair[A, C], Pair[B, D]]{
		Implement: func(pq Pair[P, Q], a Pair[A, C]) Pair[B, D] {
			return Pair[B, D]{
				Fst: l1.Implement(pq.Fst, a.Fst),
				Snd: l2.Implement(pq.Snd, a.Snd),
			}
		},
		Update: func(pq Pair[P, Q], a Pair[A, C], b Pair[B, D]) Pair[P, Q] {
			return Pair[P, Q]{
				Fst: l1.Update(pq.Fst, a.Fst, b.Fst),
				Snd: l2.Update(pq.Snd, a.Snd, b.Snd),
			}
		},
		Request: func(pq Pair[P, Q], a Pair[A, C], b Pair[B, D]) Pair[A, C] {
			return Pair[A, C]{
				Fst: l1.Request(pq.Fst, a.Fst, b.Fst),
				Snd: l2.Request(pq.Snd, a.Snd, b.Snd),
			}
		},
	}
}

// Braid relabels a learner on a paired input space so the two components
// arrive in the opposite order. Inputs are swapped before reaching l, and
// l's request is swapped back into the braided order. No parameter or
// output value changes. Braid is self-inverse.
func Braid[P, A, B, C any](l Learner[P, Pair[A, B], C]) Learner[P, Pair[B, A], C] {
	return Learner[P, Pair[B, A], C]{
		Implement: func(p P, a Pair[B, A]) C {
			return l.Implement(p, swap(a))
		},
		Update: func(p P, a Pair[B, A], c C) P {
			return l.Update(p, swap(a), c)
		},
		Request: func(p P, a Pair[B, A], c C) Pair[B, A] {
			return swap(l.Request(p, swap(a), c))
		},
	}
}

func swap[X, Y any](p Pair[X, Y]) Pair[Y, X] {
	return Pair[Y, X]{Fst: p.Snd, Snd: p.Fst}
}
