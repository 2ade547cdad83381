// Package reader provides Reader[R, A]: a computation that produces an
// A once given an environment R. Readers compose before any environment
// exists, which makes them a functional take on dependency injection:
// wire the pipeline first, supply the config/connection/clock last.
package reader

// Reader computes an A from an environment R.
type Reader[R, A any] func(R) A

// ============================================================================
// Constructors
// ============================================================================

// Pure ignores the environment.
func Pure[R, A any](a A) Reader[R, A] {
	return func(R) A {
		return a
	}
}

// Ask yields the environment itself.
func Ask[R any]() Reader[R, R] {
	return func(r R) R {
		return r
	}
}

// Asks yields a projection of the environment.
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return f
}

// ============================================================================
// Combinators
// ============================================================================

// Run applies the reader. Equivalent to calling the function.
func (rd Reader[R, A]) Run(r R) A {
	return rd(r)
}

// Local runs the reader under a modified environment.
func (rd Reader[R, A]) Local(f func(R) R) Reader[R, A] {
	return func(r R) A {
		return rd(f(r))
	}
}

// Map transforms the result.
func Map[R, A, B any](rd Reader[R, A], f func(A) B) Reader[R, B] {
	return func(r R) B {
		return f(rd(r))
	}
}

// FlatMap sequences a dependent reader; both see the same environment.
func FlatMap[R, A, B any](rd Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(r R) B {
		return f(rd(r))(r)
	}
}

// Map2 combines two readers of the same environment.
func Map2[R, A, B, C any](ra Reader[R, A], rb Reader[R, B], f func(A, B) C) Reader[R, C] {
	return func(r R) C {
		return f(ra(r), rb(r))
	}
}

// Traverse maps each element to a reader and collects the results
// under one environment.
func Traverse[R, A, B any](xs []A, f func(A) Reader[R, B]) Reader[R, []B] {
	return func(r R) []B {
		out := make([]B, len(xs))
		for i, x := range xs {
			out[i] = f(x)(r)
		}
		return out
	}
}
