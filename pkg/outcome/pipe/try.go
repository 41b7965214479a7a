package pipe

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Try invokes fn and converts its result into an outcome: a normal
// return wraps the value as a success, a returned error or a panic
// becomes a failure with that error as the cause. This is the single
// sanctioned boundary where raised errors turn into outcome values;
// everywhere else in the algebra a panic propagates.
func Try[T any](fn func() (T, error)) (out outcome.Outcome[T]) {
	guard("fn", fn)

	defer func() {
		if r := recover(); r != nil {
			out = outcome.FromError[T](panicError(r))
		}
	}()

	v, err := fn()
	if err != nil {
		return outcome.FromError[T](err)
	}
	return outcome.Success(v)
}

// TryRun is Try for computations with no value of interest.
func TryRun(fn func() error) outcome.Plain {
	guard("fn", fn)

	return Try(func() (outcome.Unit, error) {
		return outcome.Unit{}, fn()
	})
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
