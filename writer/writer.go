// Package writer provides Writer[W, A]: a result value carrying an
// accumulated log. Logs are combined with an explicit monoid.Monoid[W]
// argument, so the combination rule travels with the call instead of
// being fixed per log type.
//
// Because a Writer's log is a value and not a shared buffer, stepping
// a computation in several goroutines and combining the Writers
// afterwards needs no locking and never interleaves log entries.
package writer

import (
	"github.com/Jacobbishopxy/herding-go/monoid"
)

// Writer pairs an accumulated log with a value.
type Writer[W, A any] struct {
	log   W
	value A
}

// ============================================================================
// Constructors
// ============================================================================

// New builds a Writer from a log and a value.
func New[W, A any](w W, a A) Writer[W, A] {
	return Writer[W, A]{log: w, value: a}
}

// Pure wraps a value with the monoid's empty log.
func Pure[W, A any](m monoid.Monoid[W], a A) Writer[W, A] {
	return Writer[W, A]{log: m.Empty(), value: a}
}

// Tell records a log entry with no interesting value.
func Tell[W any](w W) Writer[W, struct{}] {
	return Writer[W, struct{}]{log: w}
}

// ============================================================================
// Accessors
// ============================================================================

// Run returns the log and the value.
func (wr Writer[W, A]) Run() (W, A) {
	return wr.log, wr.value
}

// Value returns only the value.
func (wr Writer[W, A]) Value() A {
	return wr.value
}

// Written returns only the log.
func (wr Writer[W, A]) Written() W {
	return wr.log
}

// Reset clears the log to the monoid's empty.
func (wr Writer[W, A]) Reset(m monoid.Monoid[W]) Writer[W, A] {
	return Writer[W, A]{log: m.Empty(), value: wr.value}
}

// ============================================================================
// Combinators
// ============================================================================

// Map transforms the value, leaving the log alone.
func Map[W, A, B any](wr Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{log: wr.log, value: f(wr.value)}
}

// MapWritten transforms the log, leaving the value alone.
func MapWritten[W, A, W2 any](wr Writer[W, A], f func(W) W2) Writer[W2, A] {
	return Writer[W2, A]{log: f(wr.log), value: wr.value}
}

// BiMap transforms both sides.
func BiMap[W, A, W2, B any](wr Writer[W, A], fw func(W) W2, fa func(A) B) Writer[W2, B] {
	return Writer[W2, B]{log: fw(wr.log), value: fa(wr.value)}
}

// FlatMap sequences a dependent step; the logs of both steps are
// combined in order with m.
func FlatMap[W, A, B any](m monoid.Monoid[W], wr Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	next := f(wr.value)
	return Writer[W, B]{
		log:   m.Combine(wr.log, next.log),
		value: next.value,
	}
}

// Then sequences two steps, keeping the second value and both logs.
func Then[W, A, B any](m monoid.Monoid[W], wr Writer[W, A], next Writer[W, B]) Writer[W, B] {
	return Writer[W, B]{
		log:   m.Combine(wr.log, next.log),
		value: next.value,
	}
}

// Map2 combines two Writers, merging their logs in argument order.
func Map2[W, A, B, C any](m monoid.Monoid[W], wa Writer[W, A], wb Writer[W, B], f func(A, B) C) Writer[W, C] {
	return Writer[W, C]{
		log:   m.Combine(wa.log, wb.log),
		value: f(wa.value, wb.value),
	}
}
