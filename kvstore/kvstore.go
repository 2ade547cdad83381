// Package kvstore is a free-monad key-value DSL: programs over a
// three-operation algebra (put, get, delete) are built as inert data
// and only touch a store when handed to an interpreter.
//
// Building blocks:
//
//   - Put, Get, Delete, Update: smart constructors for single
//     operations.
//   - Bind, Then, Map: sequence operations into a Program.
//   - Run: fold a Program over any Store (in-memory, traced, cached,
//     SQLite-backed).
//   - ToState: fold a Program into a pure state.State over immutable
//     maps. No effects, same program.
//
// The same Program value can be interpreted any number of times, by
// any interpreter; this is the whole point of describing effects as
// data.
package kvstore

import (
	"context"
	"fmt"

	herding "github.com/Jacobbishopxy/herding-go"
	"github.com/Jacobbishopxy/herding-go/option"
	"github.com/Jacobbishopxy/herding-go/state"
)

// Unit is re-exported for the operations that return nothing.
type Unit = herding.Unit

// ============================================================================
// The algebra
// ============================================================================

// Op is a single instruction over a store of V values. Each op has a
// fixed result type: PutOp and DelOp produce Unit, GetOp produces
// option.Option[V].
type Op[V any] interface {
	isOp()
	fmt.Stringer
}

// PutOp writes a value under a key.
type PutOp[V any] struct {
	Key   string
	Value V
}

// GetOp reads the value under a key, if any.
type GetOp[V any] struct {
	Key string
}

// DelOp removes a key.
type DelOp[V any] struct {
	Key string
}

func (PutOp[V]) isOp() {}
func (GetOp[V]) isOp() {}
func (DelOp[V]) isOp() {}

func (o PutOp[V]) String() string { return fmt.Sprintf("put(%s, %v)", o.Key, o.Value) }
func (o GetOp[V]) String() string { return fmt.Sprintf("get(%s)", o.Key) }
func (o DelOp[V]) String() string { return fmt.Sprintf("delete(%s)", o.Key) }

// ============================================================================
// Programs
// ============================================================================

// Program is a recursive description of a sequence of operations
// producing an A. It is one of Pure (a finished result) or Step (an
// operation and a continuation).
type Program[V, A any] interface {
	isProgram()
}

// Pure is a finished program holding its result.
type Pure[V, A any] struct {
	Value A
}

// Step is an operation followed by a continuation. The continuation
// receives the op's result; the dynamic type behind the any is fixed
// by the op (Unit for put/delete, option.Option[V] for get), and only
// interpreters in this package feed it.
type Step[V, A any] struct {
	Op   Op[V]
	Next func(res any) Program[V, A]
}

func (Pure[V, A]) isProgram() {}
func (Step[V, A]) isProgram() {}

// ============================================================================
// Smart constructors
// ============================================================================

// Return lifts a value into a finished program.
func Return[V, A any](a A) Program[V, A] {
	return Pure[V, A]{Value: a}
}

// Done is the empty program.
func Done[V any]() Program[V, Unit] {
	return Pure[V, Unit]{}
}

// Put describes writing value under key.
func Put[V any](key string, value V) Program[V, Unit] {
	return Step[V, Unit]{
		Op:   PutOp[V]{Key: key, Value: value},
		Next: func(res any) Program[V, Unit] { return Pure[V, Unit]{} },
	}
}

// Get describes reading the value under key; absent keys yield None.
func Get[V any](key string) Program[V, option.Option[V]] {
	return Step[V, option.Option[V]]{
		Op: GetOp[V]{Key: key},
		Next: func(res any) Program[V, option.Option[V]] {
			return Pure[V, option.Option[V]]{Value: res.(option.Option[V])}
		},
	}
}

// Delete describes removing key. Deleting an absent key succeeds.
func Delete[V any](key string) Program[V, Unit] {
	return Step[V, Unit]{
		Op:   DelOp[V]{Key: key},
		Next: func(res any) Program[V, Unit] { return Pure[V, Unit]{} },
	}
}

// Update describes get-then-put: apply f to the current value, if one
// exists. A missing key is left missing.
func Update[V any](key string, f func(V) V) Program[V, Unit] {
	return Bind(Get[V](key), func(o option.Option[V]) Program[V, Unit] {
		if o.IsNone() {
			return Done[V]()
		}
		return Put(key, f(o.Get()))
	})
}

// ============================================================================
// Composition
// ============================================================================

// Bind sequences a dependent continuation after p. Binding rebuilds
// only the spine of p, pushing f into the innermost continuation, so
// interpretation stays linear in the number of operations.
func Bind[V, A, B any](p Program[V, A], f func(A) Program[V, B]) Program[V, B] {
	switch q := p.(type) {
	case Pure[V, A]:
		return f(q.Value)
	case Step[V, A]:
		return Step[V, B]{
			Op:   q.Op,
			Next: func(res any) Program[V, B] { return Bind(q.Next(res), f) },
		}
	default:
		panic("kvstore: unknown program node")
	}
}

// Then sequences two programs, discarding the first result.
func Then[V, A, B any](p Program[V, A], next Program[V, B]) Program[V, B] {
	return Bind(p, func(A) Program[V, B] { return next })
}

// Map transforms the eventual result.
func Map[V, A, B any](p Program[V, A], f func(A) B) Program[V, B] {
	return Bind(p, func(a A) Program[V, B] { return Return[V](f(a)) })
}

// ============================================================================
// Interpretation
// ============================================================================

// Store is the effectful target of an interpreter.
type Store[V any] interface {
	Put(ctx context.Context, key string, value V) error
	Get(ctx context.Context, key string) (option.Option[V], error)
	Delete(ctx context.Context, key string) error
}

// Run folds the program over a store, operation by operation. The
// first store error aborts with a zero result; a cancelled context
// stops at the next operation boundary.
func Run[V, A any](ctx context.Context, store Store[V], p Program[V, A]) (A, error) {
	var zero A
	for {
		switch q := p.(type) {
		case Pure[V, A]:
			return q.Value, nil
		case Step[V, A]:
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			res, err := applyOp(ctx, store, q.Op)
			if err != nil {
				return zero, fmt.Errorf("kvstore: %s: %w", q.Op, err)
			}
			p = q.Next(res)
		default:
			panic("kvstore: unknown program node")
		}
	}
}

func applyOp[V any](ctx context.Context, store Store[V], op Op[V]) (any, error) {
	switch o := op.(type) {
	case PutOp[V]:
		return Unit{}, store.Put(ctx, o.Key, o.Value)
	case GetOp[V]:
		return store.Get(ctx, o.Key)
	case DelOp[V]:
		return Unit{}, store.Delete(ctx, o.Key)
	default:
		panic("kvstore: unknown op")
	}
}

// ToState folds the program into a pure state transition over a map.
// No effects are performed: each Put/Delete produces a fresh map
// (copy-on-write) and the input map is never mutated, so the returned
// State can be run repeatedly and from any starting point.
func ToState[V, A any](p Program[V, A]) state.State[map[string]V, A] {
	return func(s map[string]V) (map[string]V, A) {
		cur := p
		for {
			switch q := cur.(type) {
			case Pure[V, A]:
				return s, q.Value
			case Step[V, A]:
				var res any
				switch o := q.Op.(type) {
				case PutOp[V]:
					s = cloneWith(s, o.Key, o.Value)
					res = Unit{}
				case GetOp[V]:
					v, ok := s[o.Key]
					res = option.When(ok, v)
				case DelOp[V]:
					s = cloneWithout(s, o.Key)
					res = Unit{}
				default:
					panic("kvstore: unknown op")
				}
				cur = q.Next(res)
			default:
				panic("kvstore: unknown program node")
			}
		}
	}
}

func cloneWith[V any](s map[string]V, key string, value V) map[string]V {
	out := make(map[string]V, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[key] = value
	return out
}

func cloneWithout[V any](s map[string]V, key string) map[string]V {
	if _, ok := s[key]; !ok {
		return s
	}
	out := make(map[string]V, len(s))
	for k, v := range s {
		if k != key {
			out[k] = v
		}
	}
	return out
}
