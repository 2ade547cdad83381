// Package monoid provides Monoid[T], an empty value paired with an
// associative combine, plus stock instances for the usual suspects.
//
// A Monoid must satisfy, for all x, y, z:
//
//	Combine(x, Combine(y, z)) == Combine(Combine(x, y), z)   // associativity
//	Combine(Empty(), x) == x == Combine(x, Empty())          // identity
//
// Instances are plain values, not interface implementations, so a type
// with several lawful monoids (int under + and under *) simply has
// several instances.
package monoid

import (
	"maps"

	"golang.org/x/exp/constraints"

	herding "github.com/Jacobbishopxy/herding-go"
	"github.com/Jacobbishopxy/herding-go/option"
)

// Monoid pairs an identity element with an associative combination.
type Monoid[T any] struct {
	Empty   func() T
	Combine func(T, T) T
}

// ============================================================================
// Folding
// ============================================================================

// Fold combines all elements, left to right, starting from Empty.
func Fold[T any](m Monoid[T], xs []T) T {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// FoldMap maps each element into the monoid, then combines.
func FoldMap[A, B any](m Monoid[B], xs []A, f func(A) B) B {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, f(x))
	}
	return acc
}

// ============================================================================
// Numeric instances
// ============================================================================

// Number covers the types the numeric instances work over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is addition with identity 0.
func Sum[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:   func() N { return 0 },
		Combine: func(a, b N) N { return a + b },
	}
}

// Product is multiplication with identity 1.
func Product[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:   func() N { return 1 },
		Combine: func(a, b N) N { return a * b },
	}
}

// Max keeps the larger element; identity is the provided floor
// (typically the type's minimum).
func Max[N constraints.Ordered](floor N) Monoid[N] {
	return Monoid[N]{
		Empty: func() N { return floor },
		Combine: func(a, b N) N {
			if a > b {
				return a
			}
			return b
		},
	}
}

// ============================================================================
// Boolean and string instances
// ============================================================================

// All is conjunction with identity true.
func All() Monoid[bool] {
	return Monoid[bool]{
		Empty:   func() bool { return true },
		Combine: func(a, b bool) bool { return a && b },
	}
}

// Any is disjunction with identity false.
func Any() Monoid[bool] {
	return Monoid[bool]{
		Empty:   func() bool { return false },
		Combine: func(a, b bool) bool { return a || b },
	}
}

// String is concatenation with identity "".
func String() Monoid[string] {
	return Monoid[string]{
		Empty:   func() string { return "" },
		Combine: func(a, b string) string { return a + b },
	}
}

// ============================================================================
// Container instances
// ============================================================================

// Slice is append with identity nil. Combine copies; neither argument
// is aliased by the result.
func Slice[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Empty: func() []T { return nil },
		Combine: func(a, b []T) []T {
			if len(a) == 0 {
				return b
			}
			if len(b) == 0 {
				return a
			}
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// MapMerge is map union with identity nil; values under colliding keys
// are combined with the inner monoid.
func MapMerge[K comparable, V any](inner Monoid[V]) Monoid[map[K]V] {
	return Monoid[map[K]V]{
		Empty: func() map[K]V { return nil },
		Combine: func(a, b map[K]V) map[K]V {
			if len(a) == 0 {
				return b
			}
			if len(b) == 0 {
				return a
			}
			out := maps.Clone(a)
			for k, v := range b {
				if cur, ok := out[k]; ok {
					out[k] = inner.Combine(cur, v)
				} else {
					out[k] = v
				}
			}
			return out
		},
	}
}

// ============================================================================
// Function instances
// ============================================================================

// Endo is composition of A -> A functions with identity Iden.
func Endo[A any]() Monoid[func(A) A] {
	return Monoid[func(A) A]{
		Empty:   func() func(A) A { return herding.Iden[A] },
		Combine: herding.Comp[A, A, A],
	}
}

// Func lifts a monoid on B pointwise to functions A -> B.
func Func[A, B any](inner Monoid[B]) Monoid[func(A) B] {
	return Monoid[func(A) B]{
		Empty: func() func(A) B {
			return herding.Const[A](inner.Empty())
		},
		Combine: func(f, g func(A) B) func(A) B {
			return func(a A) B {
				return inner.Combine(f(a), g(a))
			}
		},
	}
}

// ============================================================================
// Option instances
// ============================================================================

// First keeps the earliest present value.
func First[T any]() Monoid[option.Option[T]] {
	return Monoid[option.Option[T]]{
		Empty: option.None[T],
		Combine: func(a, b option.Option[T]) option.Option[T] {
			return a.OrElse(b)
		},
	}
}

// Last keeps the latest present value.
func Last[T any]() Monoid[option.Option[T]] {
	return Monoid[option.Option[T]]{
		Empty: option.None[T],
		Combine: func(a, b option.Option[T]) option.Option[T] {
			return b.OrElse(a)
		},
	}
}

// Lift turns a monoid on T into one on Option[T]: None is the identity
// and two present values combine with the inner monoid.
func Lift[T any](inner Monoid[T]) Monoid[option.Option[T]] {
	return Monoid[option.Option[T]]{
		Empty: option.None[T],
		Combine: func(a, b option.Option[T]) option.Option[T] {
			if a.IsNone() {
				return b
			}
			if b.IsNone() {
				return a
			}
			return option.Some(inner.Combine(a.Get(), b.Get()))
		},
	}
}
