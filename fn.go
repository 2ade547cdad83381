package herding

// Unit is the informationless type. Operations that succeed without
// producing a value (a store Put, a Writer Tell) return Unit rather
// than overloading bool or error.
type Unit = struct{}

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
//
// Example:
//
//	double := func(x int) int { return x * 2 }
//	show := strconv.Itoa
//	f := herding.Comp(double, show)
//	f(21) // "42"
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Comp3 composes three functions left to right.
func Comp3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Comp(Comp(f, g), h)
}

// Iden returns its argument unchanged. It is the left and right identity
// of Comp and the do-nothing transformation for any Map.
func Iden[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Flip swaps the argument order of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Curry2 turns a binary function into a chain of unary ones.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Curry3 turns a ternary function into a chain of unary ones.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Pipe2 applies two functions to a starting value, left to right.
// Pipe2(x, f, g) == g(f(x)).
func Pipe2[A, B, C any](a A, f func(A) B, g func(B) C) C {
	return g(f(a))
}

// Pipe3 applies three functions to a starting value, left to right.
func Pipe3[A, B, C, D any](a A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(a)))
}

// Pair is a generic 2-tuple for operations that naturally return two
// values together (zips, writer runs).
type Pair[A, B any] struct {
	First  A
	Second B
}

// MkPair builds a Pair.
func MkPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Eq is a curried equality test.
func Eq[A comparable](x A) func(A) bool {
	return func(y A) bool {
		return x == y
	}
}

// Not negates a predicate.
func Not[A any](p func(A) bool) func(A) bool {
	return func(a A) bool {
		return !p(a)
	}
}
