package pipe

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Every combinator follows one rule: a failed input short-circuits.
// The supplied function is never invoked and the failure's message and
// cause propagate unchanged across the payload-type boundary.

// Bind applies f to the payload of a successful outcome and returns
// the outcome f produced, with no extra wrapping. This is the
// composition primitive the rest of the package is built from.
func Bind[In, Out any](in outcome.Outcome[In], f func(v In) outcome.Outcome[Out]) outcome.Outcome[Out] {
	guard("f", f)

	if in.IsFailure() {
		return outcome.FailFrom[In, Out](in)
	}
	return f(in.Value())
}

// Then chains the next step of a pipeline, returning its outcome
// verbatim on success and propagating the existing failure otherwise.
func Then[In, Out any](in outcome.Outcome[In], next func(v In) outcome.Outcome[Out]) outcome.Outcome[Out] {
	guard("next", next)
	return Bind(in, next)
}

// Map transforms the payload of a successful outcome and wraps the
// result as a success.
func Map[In, Out any](in outcome.Outcome[In], f func(v In) Out) outcome.Outcome[Out] {
	guard("f", f)

	if in.IsFailure() {
		return outcome.FailFrom[In, Out](in)
	}
	return outcome.Success(f(in.Value()))
}

// Match reduces an outcome to a caller-chosen type. Exactly one of the
// two handlers runs, selected by the succeeded flag. Both handlers are
// required.
func Match[T, R any](in outcome.Outcome[T],
	onSuccess func(v T) R,
	onFailure func(message string, cause error) R) R {

	guard("onSuccess", onSuccess)
	guard("onFailure", onFailure)

	if in.IsSuccess() {
		return onSuccess(in.Value())
	}
	return onFailure(in.Message(), in.Cause())
}

// MapError transforms the cause of a failed outcome; the message is
// regenerated from the new cause. A failure without a cause hands f a
// message-only error instead. When f returns nil the outcome passes
// through unchanged. Successes pass through untouched.
func MapError[T any](in outcome.Outcome[T], f func(cause error) error) outcome.Outcome[T] {
	guard("f", f)

	if in.IsSuccess() {
		return in
	}

	cause := in.Cause()
	if cause == nil {
		cause = errors.New(in.Message())
	}

	next := f(cause)
	if next == nil {
		return in
	}
	return outcome.FromError[T](next)
}

// Ensure converts a success into a failure with failureMessage when
// the predicate rejects the payload. Failures pass through.
func Ensure[T any](in outcome.Outcome[T], pred func(v T) bool, failureMessage string) outcome.Outcome[T] {
	guard("pred", pred)
	if failureMessage == "" {
		panic(&outcome.ArgumentError{Name: "failureMessage", Reason: "must not be empty"})
	}

	if in.IsFailure() || pred(in.Value()) {
		return in
	}
	return outcome.Fail[T](failureMessage)
}

// When substitutes the result of op for a successful outcome when
// condition holds; in every other case the input passes through.
func When[T any](in outcome.Outcome[T], condition bool, op func(v T) outcome.Outcome[T]) outcome.Outcome[T] {
	guard("op", op)

	if in.IsFailure() || !condition {
		return in
	}
	return op(in.Value())
}

// Tap invokes effect for observation only and returns the input
// unchanged. The effect runs for successes and failures alike. A
// panicking effect is not caught; it propagates to the caller.
func Tap[T any](in outcome.Outcome[T], effect func(o outcome.Outcome[T])) outcome.Outcome[T] {
	guard("effect", effect)

	effect(in)
	return in
}

// OnSuccess invokes effect with the payload of a successful outcome
// and returns the input unchanged.
func OnSuccess[T any](in outcome.Outcome[T], effect func(v T)) outcome.Outcome[T] {
	guard("effect", effect)

	if in.IsSuccess() {
		effect(in.Value())
	}
	return in
}

// OnFailure invokes effect with the message and cause of a failed
// outcome and returns the input unchanged.
func OnFailure[T any](in outcome.Outcome[T], effect func(message string, cause error)) outcome.Outcome[T] {
	guard("effect", effect)

	if in.IsFailure() {
		effect(in.Message(), in.Cause())
	}
	return in
}

func guard(name string, fn interface{}) {
	if outcome.IsNil(fn) {
		panic(&outcome.ArgumentError{Name: name, Reason: "must not be nil"})
	}
}
