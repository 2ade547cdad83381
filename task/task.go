// Package task provides Task[A]: a lazy, context-aware description of a
// computation that may fail. A Task is just func(context.Context)
// (A, error); building one runs nothing, and the same Task can be run
// any number of times.
//
// Sequential composition (FlatMap, Traverse) threads results in order.
// Parallel composition (Par2, ParTraverse) fans sub-tasks out on an
// errgroup: the first failure cancels the shared context and wins.
package task

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Jacobbishopxy/herding-go/either"
)

// Task computes an A when run. Run with ctx via the call itself or Run.
type Task[A any] func(ctx context.Context) (A, error)

// ============================================================================
// Constructors
// ============================================================================

// Pure always succeeds with a.
func Pure[A any](a A) Task[A] {
	return func(context.Context) (A, error) {
		return a, nil
	}
}

// Fail always fails with err.
func Fail[A any](err error) Task[A] {
	return func(context.Context) (A, error) {
		var zero A
		return zero, err
	}
}

// Lift defers a context-free computation.
func Lift[A any](f func() (A, error)) Task[A] {
	return func(context.Context) (A, error) {
		return f()
	}
}

// ============================================================================
// Running
// ============================================================================

// Run executes the task. Equivalent to calling the function.
func (t Task[A]) Run(ctx context.Context) (A, error) {
	return t(ctx)
}

// ============================================================================
// Combinators
// ============================================================================

// Map transforms a successful result.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) (B, error) {
		a, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// FlatMap sequences a dependent task; the first error short-circuits.
func FlatMap[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) (B, error) {
		a, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(ctx)
	}
}

// Attempt reifies the outcome as an Either; the returned task itself
// never fails.
func Attempt[A any](t Task[A]) Task[either.Either[error, A]] {
	return func(ctx context.Context) (either.Either[error, A], error) {
		return either.FromError(t(ctx)), nil
	}
}

// Tap runs fn on every outcome without changing it.
func (t Task[A]) Tap(fn func(A, error)) Task[A] {
	return func(ctx context.Context) (A, error) {
		a, err := t(ctx)
		fn(a, err)
		return a, err
	}
}

// Recover replaces a failure with the result of f.
func (t Task[A]) Recover(f func(error) A) Task[A] {
	return func(ctx context.Context) (A, error) {
		a, err := t(ctx)
		if err != nil {
			return f(err), nil
		}
		return a, nil
	}
}

// Retry re-runs the task on failure, up to maxRetries extra attempts.
// A context cancellation is not retried. The final error wraps the
// last failure.
func (t Task[A]) Retry(maxRetries int) Task[A] {
	return func(ctx context.Context) (A, error) {
		var (
			a       A
			lastErr error
		)
		for i := 0; i <= maxRetries; i++ {
			var err error
			a, err = t(ctx)
			if err == nil {
				return a, nil
			}
			lastErr = err
			if ctx.Err() != nil {
				break
			}
		}
		var zero A
		return zero, fmt.Errorf("task: retries exhausted: %w", lastErr)
	}
}

// Timeout bounds the task's run time via the context deadline.
func (t Task[A]) Timeout(d time.Duration) Task[A] {
	return func(ctx context.Context) (A, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctx)
	}
}

// ============================================================================
// Parallel composition
// ============================================================================

// Par2 runs two tasks concurrently and combines their results. The
// first failure cancels the other task's context.
func Par2[A, B, C any](ta Task[A], tb Task[B], f func(A, B) C) Task[C] {
	return func(ctx context.Context) (C, error) {
		var (
			a A
			b B
		)
		eg, ctx := errgroup.WithContext(ctx)
		eg.Go(func() (err error) {
			a, err = ta(ctx)
			return err
		})
		eg.Go(func() (err error) {
			b, err = tb(ctx)
			return err
		})
		if err := eg.Wait(); err != nil {
			var zero C
			return zero, err
		}
		return f(a, b), nil
	}
}

// Par3 runs three tasks concurrently and combines their results.
func Par3[A, B, C, D any](ta Task[A], tb Task[B], tc Task[C], f func(A, B, C) D) Task[D] {
	return Par2(Par2(ta, tb, func(a A, b B) func(C) D {
		return func(c C) D { return f(a, b, c) }
	}), tc, func(g func(C) D, c C) D {
		return g(c)
	})
}

// Traverse runs the task produced for each element sequentially,
// stopping at the first error.
func Traverse[A, B any](xs []A, f func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		out := make([]B, 0, len(xs))
		for _, x := range xs {
			b, err := f(x)(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		}
		return out, nil
	}
}

// ParTraverse runs the task for each element concurrently; results
// keep input order. The first failure cancels the rest.
func ParTraverse[A, B any](xs []A, f func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		out := make([]B, len(xs))
		eg, ctx := errgroup.WithContext(ctx)
		for i, x := range xs {
			i, x := i, x
			eg.Go(func() (err error) {
				out[i], err = f(x)(ctx)
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// ParSequence runs the tasks concurrently, keeping order.
func ParSequence[A any](ts []Task[A]) Task[[]A] {
	return ParTraverse(ts, func(t Task[A]) Task[A] { return t })
}

// ============================================================================
// Resource safety
// ============================================================================

// Bracket acquires a resource, uses it, and releases it exactly once,
// whether use succeeds, fails, or the surrounding context is cancelled
// while use is in flight. The release is guarded by an atomic flag, so
// the cancellation watcher and the normal path cannot both run it.
func Bracket[R, A any](
	acquire Task[R],
	use func(R) Task[A],
	release func(R) error,
) Task[A] {
	return func(ctx context.Context) (A, error) {
		var zero A
		r, err := acquire(ctx)
		if err != nil {
			return zero, err
		}

		var released atomic.Bool
		releaseOnce := func() error {
			if released.CompareAndSwap(false, true) {
				return release(r)
			}
			return nil
		}

		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				// Releasing here lets a blocked use observe the closed
				// resource and unwind.
				_ = releaseOnce()
			case <-done:
			}
		}()

		a, err := use(r)(ctx)
		close(done)
		if rerr := releaseOnce(); rerr != nil && err == nil {
			err = rerr
		}
		if err != nil {
			return zero, err
		}
		return a, nil
	}
}
