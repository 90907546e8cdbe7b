package learner

import (
	"errors"
	"fmt"
)

// ErrUnsupported reports a combinator operation whose training semantics
// are not defined. It is raised by panic so that an undefined rule can
// never produce a silently wrong result.
var ErrUnsupported = errors.New("learner: operation has no defined semantics")

// Mult merges two untrained endolearners on the same space into one that
// sums their forward outputs. The addition and subtraction of the space
// are supplied by the caller. The residual c - a2 between the desired
// output and the second input is handed back identically to both inputs;
// with a unit parameter there is nothing to update.
func Mult[A any](add, sub func(A, A) A, l1, l2 Learner[Unit, A, A]) Learner[Unit, Pair[A, A], A] {
	return Learner[Unit, Pair[A, A], A]{
		Implement: func(u Unit, a Pair[A, A]) A {
			return add(l1.Implement(u, a.Fst), l2.Implement(u, a.Snd))
		},
		Update: func(u Unit, _ Pair[A, A], _ A) Unit { return u },
		Request: func(_ Unit, a Pair[A, A], c A) Pair[A, A] {
			r := sub(c, a.Snd)
			return Pair[A, A]{Fst: r, Snd: r}
		},
	}
}

// Comult duplicates an input across two downstream consumers. Only the
// forward rule (the diagonal) is defined: there is no agreed law for
// merging the two training signals back into one, so Update and Request
// panic with ErrUnsupported instead of guessing one.
func Comult[A any]() Learner[Unit, A, Pair[A, A]] {
	return Learner[Unit, A, Pair[A, A]]{
		Implement: func(_ Unit, a A) Pair[A, A] {
			return Pair[A, A]{Fst: a, Snd: a}
		},
		Update: func(Unit, A, Pair[A, A]) Unit {
			panic(fmt.Errorf("%w: comult update", ErrUnsupported))
		},
		Request: func(Unit, A, Pair[A, A]) A {
			panic(fmt.Errorf("%w: comult request", ErrUnsupported))
		},
	}
}
