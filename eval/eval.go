// Package eval provides Eval[A], a description of how and when to
// compute a value:
//
//   - Now: computed eagerly, once, at construction.
//   - Later: computed on first demand, then memoized.
//   - Always: recomputed on every demand.
//
// Map, FlatMap and Defer build larger descriptions without running
// anything; Value interprets the description with an explicit
// continuation stack, so arbitrarily deep chains (including mutually
// recursive ones written with Defer) run in constant goroutine stack.
package eval

import "sync"

// Eval describes a computation of an A.
type Eval[A any] struct {
	node node
}

// The internal representation is untyped; the typed surface
// constructors and Value are the only places values cross the boundary,
// and each node's dynamic type is fixed by the constructor that made
// it, so the assertions are total.
type node interface{ isNode() }

type nowNode struct{ value any }

type alwaysNode struct{ thunk func() any }

type laterNode struct {
	once  sync.Once
	thunk func() any
	value any
}

type deferNode struct{ thunk func() node }

type flatMapNode struct {
	src  node
	cont func(any) node
}

func (nowNode) isNode()     {}
func (alwaysNode) isNode()  {}
func (*laterNode) isNode()  {}
func (deferNode) isNode()   {}
func (flatMapNode) isNode() {}

// ============================================================================
// Constructors
// ============================================================================

// Now wraps an already-computed value.
func Now[A any](a A) Eval[A] {
	return Eval[A]{node: nowNode{value: a}}
}

// Later defers the computation until first demand and memoizes the
// result; the thunk runs at most once even under concurrent Value
// calls.
func Later[A any](f func() A) Eval[A] {
	return Eval[A]{node: &laterNode{thunk: func() any { return f() }}}
}

// Always defers the computation and repeats it on every demand.
func Always[A any](f func() A) Eval[A] {
	return Eval[A]{node: alwaysNode{thunk: func() any { return f() }}}
}

// Defer suspends the construction of an Eval itself. This is the knot
// that makes recursive definitions lazy enough to terminate.
func Defer[A any](f func() Eval[A]) Eval[A] {
	return Eval[A]{node: deferNode{thunk: func() node { return f().node }}}
}

// ============================================================================
// Combinators
// ============================================================================

// Map transforms the eventual value.
func Map[A, B any](e Eval[A], f func(A) B) Eval[B] {
	return FlatMap(e, func(a A) Eval[B] { return Now(f(a)) })
}

// FlatMap sequences a dependent computation. Chains of any depth are
// safe: nesting is re-associated by the interpreter, not the stack.
func FlatMap[A, B any](e Eval[A], f func(A) Eval[B]) Eval[B] {
	return Eval[B]{node: flatMapNode{
		src:  e.node,
		cont: func(x any) node { return f(x.(A)).node },
	}}
}

// Map2 combines two Evals.
func Map2[A, B, C any](ea Eval[A], eb Eval[B], f func(A, B) C) Eval[C] {
	return FlatMap(ea, func(a A) Eval[C] {
		return Map(eb, func(b B) C { return f(a, b) })
	})
}

// Memoize caches the result of any Eval, turning Always-like
// recomputation into compute-once.
func Memoize[A any](e Eval[A]) Eval[A] {
	return Later(e.Value)
}

// ============================================================================
// Interpretation
// ============================================================================

// Value runs the description and returns the result.
func (e Eval[A]) Value() A {
	return run(e.node).(A)
}

func run(n node) any {
	var conts []func(any) node
	for {
		switch t := n.(type) {
		case nowNode:
			if len(conts) == 0 {
				return t.value
			}
			k := conts[len(conts)-1]
			conts = conts[:len(conts)-1]
			n = k(t.value)
		case alwaysNode:
			n = nowNode{value: t.thunk()}
		case *laterNode:
			t.once.Do(func() { t.value = t.thunk() })
			n = nowNode{value: t.value}
		case deferNode:
			n = t.thunk()
		case flatMapNode:
			conts = append(conts, t.cont)
			n = t.src
		default:
			panic("eval: unknown node")
		}
	}
}
