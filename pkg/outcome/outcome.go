package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Canonical messages applied when the caller does not supply one.
const (
	SuccessMessage         = "operation succeeded"
	AllSucceededMessage    = "all operations succeeded"
	CombinedFailureMessage = "one or more operations failed"
)

// Outcome is the success/failure tagged value returned instead of
// raising. It carries a payload on success, a message always, and an
// optional cause on failure. Outcomes are immutable after construction
// and safe to share across goroutines.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	payload   T
	message   string
	cause     error
	succeeded bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		payload:   v,
		message:   SuccessMessage,
		succeeded: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func SuccessWith[T any](v T, message string) Outcome[T] {
	mustMessage("message", message)
	return Outcome[T]{
		payload:   v,
		message:   message,
		succeeded: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](message string) Outcome[T] {
	mustMessage("message", message)
	return Outcome[T]{
		message:   message,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func FailWith[T any](message string, cause error) Outcome[T] {
	mustMessage("message", message)
	mustCause("cause", cause)
	return Outcome[T]{
		message:   message,
		cause:     cause,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromError builds a failed outcome whose message is taken from the
// cause's own description.
func FromError[T any](cause error) Outcome[T] {
	mustCause("cause", cause)
	return Outcome[T]{
		message:   cause.Error(),
		cause:     cause,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom propagates an outcome across a payload-type boundary. The
// succeeded flag, message, cause and creation metadata are preserved;
// the payload is dropped.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		message:   from.message,
		cause:     from.cause,
		succeeded: from.succeeded,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromPlain widens a payload-free outcome to Outcome[T] with a zero
// payload. The conversion never fails.
func FromPlain[T any](p Plain) Outcome[T] {
	return FailFrom[Unit, T](p)
}

func (o Outcome[T]) Value() T {
	return o.payload
}

func (o Outcome[T]) Message() string {
	return o.message
}

func (o Outcome[T]) Cause() error {
	return o.cause
}

func (o Outcome[T]) IsSuccess() bool {
	return o.succeeded
}

func (o Outcome[T]) IsFailure() bool {
	return !o.succeeded
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// ValueOr returns the payload on success, fallback otherwise.
func (o Outcome[T]) ValueOr(fallback T) T {
	if o.succeeded {
		return o.payload
	}
	return fallback
}

// TryGet returns the payload and true on success, the zero value and
// false otherwise. It never panics.
func (o Outcome[T]) TryGet() (T, bool) {
	if o.succeeded {
		return o.payload, true
	}
	var zero T
	return zero, false
}

// MustValue returns the payload on success. On failure it panics with
// the cause when one is attached, otherwise with an *InvalidStateError
// carrying the failure message. This is the one extraction point that
// surfaces a failure as a panic rather than a value.
func (o Outcome[T]) MustValue() T {
	if o.succeeded {
		return o.payload
	}
	if o.cause != nil {
		panic(o.cause)
	}
	panic(&InvalidStateError{Message: o.message})
}

// ToPlain drops the payload, keeping the succeeded flag, message,
// cause and creation metadata. The conversion never fails.
func (o Outcome[T]) ToPlain() Plain {
	return FailFrom[T, Unit](o)
}

func (o Outcome[T]) String() string {
	if o.succeeded {
		return fmt.Sprintf("success: %s", o.message)
	}
	return fmt.Sprintf("failure: %s", o.message)
}
