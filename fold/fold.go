// Package fold generalizes folding and "map then collect" over slices.
//
// FoldLeft is the strict workhorse. FoldRight is right-associated and
// lazy: the accumulator is an eval.Eval, so it can stop early and it
// never overflows the stack on large inputs. The Traverse/Sequence
// families walk a slice while collecting into Option, Either or
// Validated: short-circuiting for the first two, error-accumulating
// for the last.
package fold

import (
	"github.com/Jacobbishopxy/herding-go/either"
	"github.com/Jacobbishopxy/herding-go/eval"
	"github.com/Jacobbishopxy/herding-go/monoid"
	"github.com/Jacobbishopxy/herding-go/option"
	"github.com/Jacobbishopxy/herding-go/validated"
)

// ============================================================================
// Folds
// ============================================================================

// FoldLeft folds strictly, left to right.
func FoldLeft[A, B any](xs []A, z B, f func(B, A) B) B {
	acc := z
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight folds right-associated and lazily: f receives the rest of
// the fold as an un-forced Eval and decides whether to demand it.
// Constant stack regardless of input size.
func FoldRight[A, B any](xs []A, z eval.Eval[B], f func(A, eval.Eval[B]) eval.Eval[B]) eval.Eval[B] {
	var loop func(i int) eval.Eval[B]
	loop = func(i int) eval.Eval[B] {
		if i == len(xs) {
			return z
		}
		return f(xs[i], eval.Defer(func() eval.Eval[B] { return loop(i + 1) }))
	}
	return eval.Defer(func() eval.Eval[B] { return loop(0) })
}

// FoldMap maps every element into a monoid and combines.
func FoldMap[A, B any](m monoid.Monoid[B], xs []A, f func(A) B) B {
	return monoid.FoldMap(m, xs, f)
}

// CombineAll combines a slice of monoid values.
func CombineAll[T any](m monoid.Monoid[T], xs []T) T {
	return monoid.Fold(m, xs)
}

// ============================================================================
// Plain slice helpers
// ============================================================================

// Map transforms every element.
func Map[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Filter keeps the elements satisfying the predicate.
func Filter[A any](xs []A, pred func(A) bool) []A {
	var out []A
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Exists reports whether any element satisfies the predicate.
func Exists[A any](xs []A, pred func(A) bool) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}
	return false
}

// ForAll reports whether every element satisfies the predicate.
func ForAll[A any](xs []A, pred func(A) bool) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}
	return true
}

// ============================================================================
// Traverse / Sequence into Option
// ============================================================================

// TraverseOption maps each element, failing the whole traversal on the
// first None.
func TraverseOption[A, B any](xs []A, f func(A) option.Option[B]) option.Option[[]B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		o := f(x)
		if o.IsNone() {
			return option.None[[]B]()
		}
		out = append(out, o.Get())
	}
	return option.Some(out)
}

// SequenceOption flips []Option into Option of slice.
func SequenceOption[A any](xs []option.Option[A]) option.Option[[]A] {
	return TraverseOption(xs, func(o option.Option[A]) option.Option[A] { return o })
}

// ============================================================================
// Traverse / Sequence into Either
// ============================================================================

// TraverseEither maps each element, stopping at the first Left.
func TraverseEither[L, A, B any](xs []A, f func(A) either.Either[L, B]) either.Either[L, []B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		e := f(x)
		if e.IsLeft() {
			return either.Left[[]B](e.MustLeft())
		}
		out = append(out, e.MustRight())
	}
	return either.Right[L](out)
}

// SequenceEither flips []Either into Either of slice.
func SequenceEither[L, A any](xs []either.Either[L, A]) either.Either[L, []A] {
	return TraverseEither(xs, func(e either.Either[L, A]) either.Either[L, A] { return e })
}

// ============================================================================
// Traverse / Sequence into Validated
// ============================================================================

// TraverseValidated maps each element, accumulating every failure
// rather than stopping at the first.
func TraverseValidated[E, A, B any](xs []A, f func(A) validated.Validated[E, B]) validated.Validated[E, []B] {
	acc := validated.Valid[E](make([]B, 0, len(xs)))
	for _, x := range xs {
		acc = validated.Map2(acc, f(x), func(out []B, b B) []B {
			return append(out, b)
		})
	}
	return acc
}

// SequenceValidated flips []Validated into Validated of slice.
func SequenceValidated[E, A any](xs []validated.Validated[E, A]) validated.Validated[E, []A] {
	return TraverseValidated(xs, func(v validated.Validated[E, A]) validated.Validated[E, A] { return v })
}
