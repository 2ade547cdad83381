// Package option provides Option[T], a value that is either present
// (Some) or absent (None).
//
// Option replaces the (T, bool) and *T conventions with a single type
// that composes: absence propagates through Map, FlatMap and friends
// without intermediate checks.
//
// Operations that keep the element type are methods; operations that
// change it (Map, FlatMap, Fold) are package functions, since Go
// methods cannot introduce new type parameters.
package option

import (
	"fmt"

	herding "github.com/Jacobbishopxy/herding-go"
)

// Option is a possibly-absent T. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// ============================================================================
// Constructors
// ============================================================================

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a possibly-nil pointer: nil becomes None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// When returns Some(v) if cond holds, None otherwise.
func When[T any](cond bool, v T) Option[T] {
	if cond {
		return Some(v)
	}
	return None[T]()
}

// ============================================================================
// Inspection
// ============================================================================

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value, panicking on None. Prefer GetOrElse or Fold
// unless presence was already established.
func (o Option[T]) Get() T {
	if !o.ok {
		panic("option: Get on None")
	}
	return o.value
}

// GetOrElse returns the value, or def when absent.
func (o Option[T]) GetOrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// OrElse returns o when present, alt otherwise.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt
}

// Unpack exposes the underlying (value, present) pair for range-style
// destructuring at package boundaries.
func (o Option[T]) Unpack() (T, bool) {
	return o.value, o.ok
}

// ============================================================================
// Same-type combinators
// ============================================================================

// Filter keeps the value only if the predicate holds.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// Tap runs fn on the value, if present, and returns o unchanged.
func (o Option[T]) Tap(fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// ToPtr returns a pointer to a copy of the value, or nil.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// ToSlice returns a zero- or one-element slice.
func (o Option[T]) ToSlice() []T {
	if !o.ok {
		return nil
	}
	return []T{o.value}
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// ============================================================================
// Type-changing operations
// ============================================================================

// Map transforms the value, if present.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMap sequences a dependent computation: absence short-circuits.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// Fold eliminates the Option: ifNone for absence, ifSome for presence.
func Fold[A, B any](o Option[A], ifNone func() B, ifSome func(A) B) B {
	if o.ok {
		return ifSome(o.value)
	}
	return ifNone()
}

// Flatten collapses a nested Option.
func Flatten[A any](o Option[Option[A]]) Option[A] {
	if !o.ok {
		return None[A]()
	}
	return o.value
}

// Map2 combines two independent Options. Both must be present.
func Map2[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if !oa.ok || !ob.ok {
		return None[C]()
	}
	return Some(f(oa.value, ob.value))
}

// Map3 combines three independent Options.
func Map3[A, B, C, D any](oa Option[A], ob Option[B], oc Option[C], f func(A, B, C) D) Option[D] {
	if !oa.ok || !ob.ok || !oc.ok {
		return None[D]()
	}
	return Some(f(oa.value, ob.value, oc.value))
}

// Zip pairs two Options.
func Zip[A, B any](oa Option[A], ob Option[B]) Option[herding.Pair[A, B]] {
	return Map2(oa, ob, herding.MkPair[A, B])
}
