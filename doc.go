/*
Package herding provides small, concrete functional-programming building
blocks for Go: monoids, optional and disjoint values, deferred and
stateful computations, error-accumulating validation, fold/traverse
helpers, context-aware tasks, and a free-monad key-value DSL with
swappable interpreters.

# Overview

Each abstraction lives in its own package as a plain generic type with
its own operations. There is deliberately no simulated type-class
hierarchy: Go has no higher-kinded types, and a concrete
option.Map / either.Map / state.Map reads better than any encoding of
Functor. What the packages share instead is a set of conventions:

  - Constructors are package functions (option.Some, either.Right,
    eval.Later, kvstore.Put).
  - Operations that keep the type parameter are methods
    (o.GetOrElse, e.Swap); operations that change it are package
    functions (option.Map, state.FlatMap), because Go methods cannot
    introduce type parameters.
  - Combination is monoidal wherever it can be: an Empty value and an
    associative Combine.

# Packages

	monoid     Monoid[T] and stock instances (Sum, All, Slice, Endo, ...)
	option     Option[T]: a value or nothing
	either     Either[L, R]: right-biased disjunction, short-circuiting
	validated  Validated[E, A]: error-accumulating validation
	identity   Id[A]: the trivial context
	eval       Eval[A]: eager, memoized and repeated evaluation,
	           stack-safe chaining
	state      State[S, A]: pure state transitions
	reader     Reader[R, A]: environment-dependent values
	writer     Writer[W, A]: values with an accumulated log
	fold       FoldLeft/FoldRight/FoldMap and Traverse/Sequence over
	           slices into Option, Either and Validated
	task       Task[A]: lazy context-aware computations with parallel
	           combinators, retry, timeout and bracket
	kvstore    a free-monad key-value algebra: build programs as data,
	           then run them against in-memory, traced, cached or
	           SQLite-backed stores

# Quick example

Build a description of store operations, then choose how to execute it:

	p := kvstore.Bind(kvstore.Put("wild-cats", 2),
		func(herding.Unit) kvstore.Program[int, option.Option[int]] {
			return kvstore.Then(
				kvstore.Update("wild-cats", func(n int) int { return n + 12 }),
				kvstore.Get[int]("wild-cats"))
		})

	// Effectful: against a real (here in-memory) store.
	got, err := kvstore.Run(ctx, kvstore.NewMapStore[int](), p)

	// Pure: as a deferred state transition over an immutable map.
	end, got2 := kvstore.ToState(p)(map[string]int{})

# Root package

The root package holds the function combinators the rest of the module
is phrased with: Comp, Iden, Const, Curry2, Pipe2 and friends, plus the
Unit type.

# Package import

	import "github.com/Jacobbishopxy/herding-go"

	// and the sub-packages as needed, e.g.
	import "github.com/Jacobbishopxy/herding-go/option"
*/
package herding
