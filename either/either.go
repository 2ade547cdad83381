// Package either provides Either[L, R], a value that is exactly one of
// two alternatives. By convention the right side carries the result and
// the left side carries the failure, and all combinators are
// right-biased: Map and FlatMap act on Right and pass Left through
// untouched, so the first failure short-circuits a chain.
//
// For failure handling that accumulates instead of short-circuiting,
// see the validated package.
package either

import (
	"fmt"

	"github.com/Jacobbishopxy/herding-go/option"
)

// Either holds either an L or an R. The zero value is Left(zero L).
type Either[L, R any] struct {
	left  L
	right R
	isR   bool
}

// ============================================================================
// Constructors
// ============================================================================

// Left builds the failure side.
func Left[R, L any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right builds the success side.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isR: true}
}

// FromError adapts Go's (value, error) convention: a non-nil error
// becomes Left.
func FromError[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[R](err)
	}
	return Right[error](r)
}

// Catch runs f, converting a panic into a Left.
func Catch[R any](f func() R) (e Either[error, R]) {
	defer func() {
		if p := recover(); p != nil {
			e = Left[R](fmt.Errorf("recovered: %v", p))
		}
	}()
	return Right[error](f())
}

// ============================================================================
// Inspection
// ============================================================================

// IsRight reports whether the value is on the right.
func (e Either[L, R]) IsRight() bool {
	return e.isR
}

// IsLeft reports whether the value is on the left.
func (e Either[L, R]) IsLeft() bool {
	return !e.isR
}

// MustRight returns the right value, panicking on Left.
func (e Either[L, R]) MustRight() R {
	if !e.isR {
		panic(fmt.Sprintf("either: MustRight on Left(%v)", e.left))
	}
	return e.right
}

// MustLeft returns the left value, panicking on Right.
func (e Either[L, R]) MustLeft() L {
	if e.isR {
		panic(fmt.Sprintf("either: MustLeft on Right(%v)", e.right))
	}
	return e.left
}

// GetOrElse returns the right value, or def on Left.
func (e Either[L, R]) GetOrElse(def R) R {
	if e.isR {
		return e.right
	}
	return def
}

// OrElse returns e when Right, alt otherwise.
func (e Either[L, R]) OrElse(alt Either[L, R]) Either[L, R] {
	if e.isR {
		return e
	}
	return alt
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isR {
		return Left[L](e.right)
	}
	return Right[R](e.left)
}

// ToOption discards the left side.
func (e Either[L, R]) ToOption() option.Option[R] {
	if e.isR {
		return option.Some(e.right)
	}
	return option.None[R]()
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isR {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// ToError converts Either[error, R] back to Go's (value, error) shape.
func ToError[R any](e Either[error, R]) (R, error) {
	if e.isR {
		return e.right, nil
	}
	return e.right, e.left
}

// ============================================================================
// Type-changing operations
// ============================================================================

// Map transforms the right value.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if !e.isR {
		return Left[R2](e.left)
	}
	return Right[L](f(e.right))
}

// MapLeft transforms the left value.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isR {
		return Right[L2](e.right)
	}
	return Left[R](f(e.left))
}

// Bimap transforms whichever side is present.
func Bimap[L, R, L2, R2 any](e Either[L, R], fl func(L) L2, fr func(R) R2) Either[L2, R2] {
	if e.isR {
		return Right[L2](fr(e.right))
	}
	return Left[R2](fl(e.left))
}

// FlatMap sequences a dependent computation; the first Left wins.
func FlatMap[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if !e.isR {
		return Left[R2](e.left)
	}
	return f(e.right)
}

// Fold eliminates the Either.
func Fold[L, R, B any](e Either[L, R], onLeft func(L) B, onRight func(R) B) B {
	if e.isR {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map2 combines two independent Eithers; the first Left wins.
func Map2[L, A, B, C any](ea Either[L, A], eb Either[L, B], f func(A, B) C) Either[L, C] {
	if !ea.isR {
		return Left[C](ea.left)
	}
	if !eb.isR {
		return Left[C](eb.left)
	}
	return Right[L](f(ea.right, eb.right))
}

// Ensure keeps a Right only while the predicate holds, demoting it to
// the supplied Left otherwise.
func Ensure[L, R any](e Either[L, R], onFailure L, pred func(R) bool) Either[L, R] {
	if e.isR && !pred(e.right) {
		return Left[R](onFailure)
	}
	return e
}

// Flatten collapses a nested Either.
func Flatten[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if !e.isR {
		return Left[R](e.left)
	}
	return e.right
}
