// Package validated provides Validated[E, A]: a success value or a
// non-empty list of errors. Unlike either, combining two failures keeps
// both: Map2 and friends accumulate every error instead of stopping at
// the first, which is what form-style validation wants.
//
// Validated deliberately has no FlatMap: sequencing dependent steps
// forces short-circuiting, and that is the either package's job.
// Convert with ToEither / FromEither when crossing between the two.
package validated

import (
	"fmt"
	"strings"

	"github.com/Jacobbishopxy/herding-go/either"
)

// Validated carries either a value or one-or-more errors of type E.
type Validated[E, A any] struct {
	value A
	errs  []E
}

// ============================================================================
// Constructors
// ============================================================================

// Valid wraps a success.
func Valid[E, A any](a A) Validated[E, A] {
	return Validated[E, A]{value: a}
}

// Invalid wraps a single error.
func Invalid[A, E any](e E) Validated[E, A] {
	return Validated[E, A]{errs: []E{e}}
}

// Invalids wraps several errors. Panics on an empty slice: a failure
// with no errors is not representable.
func Invalids[A, E any](es []E) Validated[E, A] {
	if len(es) == 0 {
		panic("validated: Invalids with no errors")
	}
	return Validated[E, A]{errs: es}
}

// FromEither converts, mapping Left to a single-error Invalid.
func FromEither[E, A any](e either.Either[E, A]) Validated[E, A] {
	if e.IsLeft() {
		return Invalid[A](e.MustLeft())
	}
	return Valid[E](e.MustRight())
}

// Check lifts a predicate: ok values pass through, others produce e.
func Check[E, A any](a A, pred func(A) bool, e E) Validated[E, A] {
	if pred(a) {
		return Valid[E](a)
	}
	return Invalid[A](e)
}

// ============================================================================
// Inspection
// ============================================================================

// IsValid reports success.
func (v Validated[E, A]) IsValid() bool {
	return len(v.errs) == 0
}

// IsInvalid reports failure.
func (v Validated[E, A]) IsInvalid() bool {
	return len(v.errs) > 0
}

// Get returns the value, panicking on Invalid.
func (v Validated[E, A]) Get() A {
	if v.IsInvalid() {
		panic(fmt.Sprintf("validated: Get on Invalid(%v)", v.errs))
	}
	return v.value
}

// GetOrElse returns the value, or def on Invalid.
func (v Validated[E, A]) GetOrElse(def A) A {
	if v.IsInvalid() {
		return def
	}
	return v.value
}

// Errors returns the accumulated errors, nil when valid. The slice is
// shared; callers must not mutate it.
func (v Validated[E, A]) Errors() []E {
	return v.errs
}

// String implements fmt.Stringer.
func (v Validated[E, A]) String() string {
	if v.IsValid() {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	parts := make([]string, len(v.errs))
	for i, e := range v.errs {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return fmt.Sprintf("Invalid(%s)", strings.Join(parts, ", "))
}

// ToEither converts, keeping only the first error.
func ToEither[E, A any](v Validated[E, A]) either.Either[E, A] {
	if v.IsInvalid() {
		return either.Left[A](v.errs[0])
	}
	return either.Right[E](v.value)
}

// ============================================================================
// Combinators
// ============================================================================

// Map transforms the value of a Valid.
func Map[E, A, B any](v Validated[E, A], f func(A) B) Validated[E, B] {
	if v.IsInvalid() {
		return Validated[E, B]{errs: v.errs}
	}
	return Valid[E](f(v.value))
}

// MapErrors transforms every accumulated error.
func MapErrors[E, A, E2 any](v Validated[E, A], f func(E) E2) Validated[E2, A] {
	if v.IsValid() {
		return Valid[E2](v.value)
	}
	errs := make([]E2, len(v.errs))
	for i, e := range v.errs {
		errs[i] = f(e)
	}
	return Validated[E2, A]{errs: errs}
}

// combineErrs concatenates error lists in argument order.
func combineErrs[E any](as, bs []E) []E {
	if len(as) == 0 {
		return bs
	}
	if len(bs) == 0 {
		return as
	}
	out := make([]E, 0, len(as)+len(bs))
	out = append(out, as...)
	return append(out, bs...)
}

// Map2 combines two independent validations, accumulating errors from
// both sides in order.
func Map2[E, A, B, C any](va Validated[E, A], vb Validated[E, B], f func(A, B) C) Validated[E, C] {
	if errs := combineErrs(va.errs, vb.errs); len(errs) > 0 {
		return Validated[E, C]{errs: errs}
	}
	return Valid[E](f(va.value, vb.value))
}

// Map3 combines three independent validations.
func Map3[E, A, B, C, D any](
	va Validated[E, A], vb Validated[E, B], vc Validated[E, C],
	f func(A, B, C) D,
) Validated[E, D] {
	errs := combineErrs(combineErrs(va.errs, vb.errs), vc.errs)
	if len(errs) > 0 {
		return Validated[E, D]{errs: errs}
	}
	return Valid[E](f(va.value, vb.value, vc.value))
}

// Map4 combines four independent validations.
func Map4[E, A, B, C, D, R any](
	va Validated[E, A], vb Validated[E, B], vc Validated[E, C], vd Validated[E, D],
	f func(A, B, C, D) R,
) Validated[E, R] {
	errs := combineErrs(combineErrs(va.errs, vb.errs), combineErrs(vc.errs, vd.errs))
	if len(errs) > 0 {
		return Validated[E, R]{errs: errs}
	}
	return Valid[E](f(va.value, vb.value, vc.value, vd.value))
}

// Map5 combines five independent validations.
func Map5[E, A, B, C, D, F, R any](
	va Validated[E, A], vb Validated[E, B], vc Validated[E, C],
	vd Validated[E, D], vf Validated[E, F],
	f func(A, B, C, D, F) R,
) Validated[E, R] {
	errs := combineErrs(
		combineErrs(combineErrs(va.errs, vb.errs), combineErrs(vc.errs, vd.errs)),
		vf.errs)
	if len(errs) > 0 {
		return Validated[E, R]{errs: errs}
	}
	return Valid[E](f(va.value, vb.value, vc.value, vd.value, vf.value))
}
