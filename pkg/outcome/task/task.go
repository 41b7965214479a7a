package task

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/pipe"
)

// Task is a suspended computation producing an outcome when awaited.
// Combinators compose tasks without executing anything; Await runs the
// composed chain sequentially, suspending only while the wrapped
// computation runs. Each chain operates on its own outcome values, so
// tasks are safe to build once and await from several goroutines.
type Task[T any] func(ctx context.Context) outcome.Outcome[T]

// Of lifts an already-computed outcome into a task.
func Of[T any](o outcome.Outcome[T]) Task[T] {
	return func(context.Context) outcome.Outcome[T] { return o }
}

// Resolve lifts a plain value into an immediately successful task.
func Resolve[T any](v T) Task[T] {
	return Of(outcome.Success(v))
}

// Try defers a computation returning (T, error), capturing a returned
// error or a panic as a failure when awaited. A context cancellation
// error surfaced by fn is an ordinary failure, not a distinct variant;
// callers that care can test the cause with outcome.IsCancellation.
func Try[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	guard("fn", fn)

	return func(ctx context.Context) outcome.Outcome[T] {
		return pipe.Try(func() (T, error) { return fn(ctx) })
	}
}

// TryRun is Try for computations with no value of interest.
func TryRun(fn func(ctx context.Context) error) Task[outcome.Unit] {
	guard("fn", fn)

	return func(ctx context.Context) outcome.Plain {
		return pipe.TryRun(func() error { return fn(ctx) })
	}
}

// Await executes the task.
func (t Task[T]) Await(ctx context.Context) outcome.Outcome[T] {
	return t(ctx)
}

// Bind sequences a task-producing continuation after t. The
// continuation is never invoked when t fails; the failure propagates.
func Bind[In, Out any](t Task[In], f func(ctx context.Context, v In) Task[Out]) Task[Out] {
	guard("f", f)

	return func(ctx context.Context) outcome.Outcome[Out] {
		in := t(ctx)
		if in.IsFailure() {
			return outcome.FailFrom[In, Out](in)
		}
		return f(ctx, in.Value())(ctx)
	}
}

// Then sequences an outcome-returning continuation after t.
func Then[In, Out any](t Task[In], next func(ctx context.Context, v In) outcome.Outcome[Out]) Task[Out] {
	guard("next", next)

	return func(ctx context.Context) outcome.Outcome[Out] {
		return pipe.Then(t(ctx), func(v In) outcome.Outcome[Out] { return next(ctx, v) })
	}
}

// Map transforms the payload of a successful task.
func Map[In, Out any](t Task[In], f func(ctx context.Context, v In) Out) Task[Out] {
	guard("f", f)

	return func(ctx context.Context) outcome.Outcome[Out] {
		return pipe.Map(t(ctx), func(v In) Out { return f(ctx, v) })
	}
}

// MapError transforms the cause of a failed task.
func MapError[T any](t Task[T], f func(ctx context.Context, cause error) error) Task[T] {
	guard("f", f)

	return func(ctx context.Context) outcome.Outcome[T] {
		return pipe.MapError(t(ctx), func(cause error) error { return f(ctx, cause) })
	}
}

// Ensure converts a successful task into a failure when the predicate
// rejects the payload.
func Ensure[T any](t Task[T], pred func(ctx context.Context, v T) bool, failureMessage string) Task[T] {
	guard("pred", pred)

	return func(ctx context.Context) outcome.Outcome[T] {
		return pipe.Ensure(t(ctx), func(v T) bool { return pred(ctx, v) }, failureMessage)
	}
}

// Tap triggers a side effect with the awaited outcome, which then
// passes through unchanged.
func Tap[T any](t Task[T], effect func(ctx context.Context, o outcome.Outcome[T])) Task[T] {
	guard("effect", effect)

	return func(ctx context.Context) outcome.Outcome[T] {
		return pipe.Tap(t(ctx), func(o outcome.Outcome[T]) { effect(ctx, o) })
	}
}

func OnSuccess[T any](t Task[T], effect func(ctx context.Context, v T)) Task[T] {
	guard("effect", effect)

	return func(ctx context.Context) outcome.Outcome[T] {
		return pipe.OnSuccess(t(ctx), func(v T) { effect(ctx, v) })
	}
}

func OnFailure[T any](t Task[T], effect func(ctx context.Context, message string, cause error)) Task[T] {
	guard("effect", effect)

	return func(ctx context.Context) outcome.Outcome[T] {
		return pipe.OnFailure(t(ctx), func(message string, cause error) { effect(ctx, message, cause) })
	}
}

// Match awaits the task and reduces it to a caller-chosen type.
func Match[T, R any](ctx context.Context, t Task[T],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, message string, cause error) R) R {

	guard("onSuccess", onSuccess)
	guard("onFailure", onFailure)

	return pipe.Match(t(ctx),
		func(v T) R { return onSuccess(ctx, v) },
		func(message string, cause error) R { return onFailure(ctx, message, cause) })
}

func guard(name string, fn interface{}) {
	if outcome.IsNil(fn) {
		panic(&outcome.ArgumentError{Name: name, Reason: "must not be nil"})
	}
}
