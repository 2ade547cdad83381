// Package identity provides Id[A], the trivial context: a value with
// monadic plumbing and nothing else. It exists so code written against
// the module's Map/FlatMap shape has a do-nothing instance, and as the
// degenerate case that makes the other contexts legible.
package identity

// Id wraps a bare value.
type Id[A any] struct {
	value A
}

// Pure wraps a value.
func Pure[A any](a A) Id[A] {
	return Id[A]{value: a}
}

// Value unwraps.
func (i Id[A]) Value() A {
	return i.value
}

// Map transforms the wrapped value.
func Map[A, B any](i Id[A], f func(A) B) Id[B] {
	return Pure(f(i.value))
}

// FlatMap sequences; with no effect to thread it is just application.
func FlatMap[A, B any](i Id[A], f func(A) Id[B]) Id[B] {
	return f(i.value)
}
