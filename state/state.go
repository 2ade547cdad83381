// Package state provides State[S, A]: a pure description of a
// computation that threads a state value of type S while producing an
// A. A State is just func(S) (S, A); nothing runs until it is applied
// to an initial state, and applying the same State to the same input
// always yields the same output.
package state

// State transforms an input state into an output state and a result.
type State[S, A any] func(S) (S, A)

// ============================================================================
// Constructors
// ============================================================================

// Pure yields a without touching the state.
func Pure[S, A any](a A) State[S, A] {
	return func(s S) (S, A) {
		return s, a
	}
}

// Get yields the current state as the result.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Put replaces the state.
func Put[S any](s S) State[S, struct{}] {
	return func(S) (S, struct{}) {
		return s, struct{}{}
	}
}

// Modify transforms the state.
func Modify[S any](f func(S) S) State[S, struct{}] {
	return func(s S) (S, struct{}) {
		return f(s), struct{}{}
	}
}

// Inspect yields a projection of the state.
func Inspect[S, A any](f func(S) A) State[S, A] {
	return func(s S) (S, A) {
		return s, f(s)
	}
}

// ============================================================================
// Running
// ============================================================================

// Run applies the state transition. Equivalent to calling the function.
func (st State[S, A]) Run(s S) (S, A) {
	return st(s)
}

// RunA applies the transition and keeps only the result.
func (st State[S, A]) RunA(s S) A {
	_, a := st(s)
	return a
}

// RunS applies the transition and keeps only the final state.
func (st State[S, A]) RunS(s S) S {
	out, _ := st(s)
	return out
}

// ============================================================================
// Combinators
// ============================================================================

// Map transforms the result.
func Map[S, A, B any](st State[S, A], f func(A) B) State[S, B] {
	return func(s S) (S, B) {
		s2, a := st(s)
		return s2, f(a)
	}
}

// FlatMap sequences two stateful steps, threading the state through.
func FlatMap[S, A, B any](st State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s2, a := st(s)
		return f(a)(s2)
	}
}

// Then sequences two steps, discarding the first result.
func Then[S, A, B any](st State[S, A], next State[S, B]) State[S, B] {
	return FlatMap(st, func(A) State[S, B] { return next })
}

// Map2 runs two steps in order and combines their results.
func Map2[S, A, B, C any](sa State[S, A], sb State[S, B], f func(A, B) C) State[S, C] {
	return FlatMap(sa, func(a A) State[S, C] {
		return Map(sb, func(b B) C { return f(a, b) })
	})
}

// Traverse runs the step produced for each element left to right,
// threading the state, and collects the results.
func Traverse[S, A, B any](xs []A, f func(A) State[S, B]) State[S, []B] {
	return func(s S) (S, []B) {
		out := make([]B, 0, len(xs))
		for _, x := range xs {
			var b B
			s, b = f(x)(s)
			out = append(out, b)
		}
		return s, out
	}
}

// Sequence runs the steps left to right and collects the results.
func Sequence[S, A any](sts []State[S, A]) State[S, []A] {
	return Traverse(sts, func(st State[S, A]) State[S, A] { return st })
}
