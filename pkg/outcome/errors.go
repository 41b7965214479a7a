package outcome

import (
	"context"
	"errors"
	"reflect"
)

// ArgumentError reports a required constructor or combinator argument
// that was absent. It is panicked, not returned: a missing argument is
// a local programming defect, not a modeled failure.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return "invalid argument " + e.Name + ": " + e.Reason
}

// InvalidStateError reports a forced extraction from a failed outcome
// that carries no cause of its own.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return "outcome is not successful: " + e.Message
}

func mustMessage(name, message string) {
	if message == "" {
		panic(&ArgumentError{Name: name, Reason: "must not be empty"})
	}
}

func mustCause(name string, cause error) {
	if IsNil(cause) {
		panic(&ArgumentError{Name: name, Reason: "must not be nil"})
	}
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Causes returns the underlying errors of err: the slice exposed by an
// Unwrap() []error implementation (such as *Diagnostics or
// errors.Join), or err alone when it has none.
func Causes(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation
// or deadline expiry. The algebra itself never distinguishes
// cancellation from any other failure; this is for terminal consumers
// that do.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
