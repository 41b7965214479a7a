package outcome

// Combine folds a batch of already-computed outcomes into one
// payload-free aggregate. It does not execute anything: concurrency in
// producing the inputs, if any, is the caller's business.
//
// An empty or nil batch panics with an *ArgumentError; aggregating zero
// outcomes is an error, not a vacuous success. When every outcome
// succeeded the aggregate succeeds with a canonical message. When any
// failed, the aggregate fails with a fixed top-level message and a
// *Diagnostics cause collecting the failures in input order.
func Combine[T any](outcomes []Outcome[T]) Plain {
	mustOutcomes(outcomes)

	messages, causes := collectFailures(outcomes)
	if len(messages) == 0 {
		return SucceedWith(AllSucceededMessage)
	}

	return FailWith[Unit](CombinedFailureMessage, NewDiagnostics(messages, causes))
}

// CombineValues is Combine keeping the payloads: on success the
// aggregate's payload is each outcome's payload in input order.
func CombineValues[T any](outcomes []Outcome[T]) Outcome[[]T] {
	mustOutcomes(outcomes)

	messages, causes := collectFailures(outcomes)
	if len(messages) > 0 {
		return FailWith[[]T](CombinedFailureMessage, NewDiagnostics(messages, causes))
	}

	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		values = append(values, o.payload)
	}
	return SuccessWith(values, AllSucceededMessage)
}

func mustOutcomes[T any](outcomes []Outcome[T]) {
	if len(outcomes) == 0 {
		panic(&ArgumentError{Name: "outcomes", Reason: "must contain at least one outcome"})
	}
}

func collectFailures[T any](outcomes []Outcome[T]) (messages []string, causes []error) {
	for _, o := range outcomes {
		if o.IsFailure() {
			messages = append(messages, o.message)
			if o.cause != nil {
				causes = append(causes, o.cause)
			}
		}
	}
	return messages, causes
}
