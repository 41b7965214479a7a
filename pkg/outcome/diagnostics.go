package outcome

import (
	"slices"
	"strings"
)

// Diagnostics bundles the messages and causes of several failed
// outcomes into one aggregate cause. Messages keep the order the
// outcomes were given in; causes are a subsequence of that order, since
// failures without a cause contribute a message only.
//
// The aggregate's own description is the first failing message when at
// least one failure carried a cause, and the newline-joined
// concatenation of all failing messages when none did. The asymmetry is
// kept for compatibility with the behavior this algebra replaces.
type Diagnostics struct {
	message  string
	messages []string
	causes   []error
}

func NewDiagnostics(messages []string, causes []error) *Diagnostics {
	if len(messages) == 0 {
		panic(&ArgumentError{Name: "messages", Reason: "must not be empty"})
	}

	message := messages[0]
	if len(causes) == 0 {
		message = strings.Join(messages, "\n")
	}

	return &Diagnostics{
		message:  message,
		messages: slices.Clone(messages),
		causes:   slices.Clone(causes),
	}
}

func (d *Diagnostics) Error() string {
	return d.message
}

func (d *Diagnostics) Messages() []string {
	return slices.Clone(d.messages)
}

func (d *Diagnostics) Causes() []error {
	return slices.Clone(d.causes)
}

// Unwrap exposes the collected causes to errors.Is and errors.As.
func (d *Diagnostics) Unwrap() []error {
	return slices.Clone(d.causes)
}
