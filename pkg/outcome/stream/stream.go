package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/pipe"
)

// Stage processes one outcome into the next. Stages are built with the
// constructors below, which lift the pipe combinators; every stage
// keeps the short-circuit rule of the sequential layer.
type Stage[In, Out any] func(ctx context.Context, o outcome.Outcome[In]) outcome.Outcome[Out]

// ToChan emits each value as a successful outcome, stopping early when
// the context is done. The channel is closed when all values are sent.
func ToChan[T any](ctx context.Context, values ...T) <-chan outcome.Outcome[T] {
	in := make(chan outcome.Outcome[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- outcome.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChan drains the channel into a slice, stopping early when the
// context is done.
func FromChan[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-in:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// Run applies a same-type stage across the input channel with the
// given number of workers. The output channel closes once the input is
// exhausted or the context is done.
func Run[T any](ctx context.Context, in <-chan outcome.Outcome[T], stage Stage[T, T], workers int) <-chan outcome.Outcome[T] {
	return Pipe(ctx, in, stage, workers)
}

// Pipe is Run for stages that move the payload to a new type. With one
// worker, output order matches input order; more workers interleave.
func Pipe[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In], stage Stage[In, Out], workers int) <-chan outcome.Outcome[Out] {
	guard("stage", stage)
	if workers < 1 {
		panic(&outcome.ArgumentError{Name: "workers", Reason: "must be at least 1"})
	}

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go pump(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// pump is the worker loop: take an outcome, apply the stage, forward
// the result, until the input closes or the context is done.
func pump[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case o, ok := <-in:
			if !ok {
				return
			}

			r := stage(ctx, o)

			select {
			case <-ctx.Done():
				return
			case out <- r:
			}
		}
	}
}

// Then lifts an outcome-returning step into a stage.
func Then[In, Out any](next func(ctx context.Context, v In) outcome.Outcome[Out]) Stage[In, Out] {
	guard("next", next)

	return func(ctx context.Context, o outcome.Outcome[In]) outcome.Outcome[Out] {
		return pipe.Then(o, func(v In) outcome.Outcome[Out] { return next(ctx, v) })
	}
}

// Map lifts a pure transformation into a stage.
func Map[In, Out any](f func(ctx context.Context, v In) Out) Stage[In, Out] {
	guard("f", f)

	return func(ctx context.Context, o outcome.Outcome[In]) outcome.Outcome[Out] {
		return pipe.Map(o, func(v In) Out { return f(ctx, v) })
	}
}

// Try lifts an error-returning step into a stage; a returned error or
// a panic becomes a failure outcome.
func Try[In, Out any](fn func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	guard("fn", fn)

	return func(ctx context.Context, o outcome.Outcome[In]) outcome.Outcome[Out] {
		return pipe.Bind(o, func(v In) outcome.Outcome[Out] {
			return pipe.Try(func() (Out, error) { return fn(ctx, v) })
		})
	}
}

// Ensure lifts a predicate into a stage failing with failureMessage on
// rejection.
func Ensure[T any](pred func(ctx context.Context, v T) bool, failureMessage string) Stage[T, T] {
	guard("pred", pred)

	return func(ctx context.Context, o outcome.Outcome[T]) outcome.Outcome[T] {
		return pipe.Ensure(o, func(v T) bool { return pred(ctx, v) }, failureMessage)
	}
}

// Tap lifts a side effect into a pass-through stage.
func Tap[T any](effect func(ctx context.Context, o outcome.Outcome[T])) Stage[T, T] {
	guard("effect", effect)

	return func(ctx context.Context, o outcome.Outcome[T]) outcome.Outcome[T] {
		return pipe.Tap(o, func(r outcome.Outcome[T]) { effect(ctx, r) })
	}
}

// Finally reduces each outcome on the channel to a concrete value via
// the two handlers. The output channel closes once the input is
// exhausted or the context is done.
func Finally[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, message string, cause error) Out) <-chan Out {

	guard("onSuccess", onSuccess)
	guard("onFailure", onFailure)

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case o, ok := <-in:
				if !ok {
					return
				}

				res := pipe.Match(o,
					func(v In) Out { return onSuccess(ctx, v) },
					func(message string, cause error) Out { return onFailure(ctx, message, cause) })

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}

func guard(name string, fn interface{}) {
	if outcome.IsNil(fn) {
		panic(&outcome.ArgumentError{Name: name, Reason: "must not be nil"})
	}
}
