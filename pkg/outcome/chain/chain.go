package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/pipe"
)

// Chain wraps an outcome to enable fluent, same-payload-type
// composition. Steps that change the payload type are the package-level
// functions below, since methods cannot introduce type parameters.
type Chain[T any] struct {
	out outcome.Outcome[T]
}

// From starts a chain from an existing outcome.
func From[T any](o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: o}
}

// FromValue starts a chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return From(outcome.Success(v))
}

// Outcome returns the underlying outcome.
func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then composes a step that already returns an outcome.
func (c Chain[T]) Then(next func(v T) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: pipe.Then(c.out, next)}
}

// ThenTry composes a step that returns (T, error), like repository
// calls; a returned error or a panic becomes the chain's failure.
func (c Chain[T]) ThenTry(fn func(v T) (T, error)) Chain[T] {
	guard("fn", fn)

	if c.out.IsFailure() {
		return c
	}
	v := c.out.Value()
	return Chain[T]{out: pipe.Try(func() (T, error) { return fn(v) })}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(f func(v T) T) Chain[T] {
	return Chain[T]{out: pipe.Map(c.out, f)}
}

// Ensure converts the chain into a failure when the predicate rejects
// the current value.
func (c Chain[T]) Ensure(pred func(v T) bool, failureMessage string) Chain[T] {
	return Chain[T]{out: pipe.Ensure(c.out, pred, failureMessage)}
}

// When substitutes the result of op when condition holds.
func (c Chain[T]) When(condition bool, op func(v T) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: pipe.When(c.out, condition, op)}
}

// MapError transforms the cause of a failed chain.
func (c Chain[T]) MapError(f func(cause error) error) Chain[T] {
	return Chain[T]{out: pipe.MapError(c.out, f)}
}

// Tap triggers a side effect for success and failure alike without
// changing the chain.
func (c Chain[T]) Tap(effect func(o outcome.Outcome[T])) Chain[T] {
	return Chain[T]{out: pipe.Tap(c.out, effect)}
}

func (c Chain[T]) OnSuccess(effect func(v T)) Chain[T] {
	return Chain[T]{out: pipe.OnSuccess(c.out, effect)}
}

func (c Chain[T]) OnFailure(effect func(message string, cause error)) Chain[T] {
	return Chain[T]{out: pipe.OnFailure(c.out, effect)}
}

// Finally collapses the chain to a final value, delegating to
// pipe.Match.
func (c Chain[T]) Finally(
	onSuccess func(v T) T,
	onFailure func(message string, cause error) T) T {
	return pipe.Match(c.out, onSuccess, onFailure)
}

// Then chains a step that moves the payload to a new type.
func Then[T, U any](c Chain[T], next func(v T) outcome.Outcome[U]) Chain[U] {
	return Chain[U]{out: pipe.Then(c.out, next)}
}

// ThenTry chains a (U, error) step that moves the payload to a new
// type.
func ThenTry[T, U any](c Chain[T], fn func(v T) (U, error)) Chain[U] {
	guard("fn", fn)

	if c.out.IsFailure() {
		return Chain[U]{out: outcome.FailFrom[T, U](c.out)}
	}
	v := c.out.Value()
	return Chain[U]{out: pipe.Try(func() (U, error) { return fn(v) })}
}

// Map chains a pure transformation to a new payload type.
func Map[T, U any](c Chain[T], f func(v T) U) Chain[U] {
	return Chain[U]{out: pipe.Map(c.out, f)}
}

// Finally collapses the chain into a caller-chosen type.
func Finally[T, R any](c Chain[T],
	onSuccess func(v T) R,
	onFailure func(message string, cause error) R) R {
	return pipe.Match(c.out, onSuccess, onFailure)
}

func guard(name string, fn interface{}) {
	if outcome.IsNil(fn) {
		panic(&outcome.ArgumentError{Name: name, Reason: "must not be nil"})
	}
}
