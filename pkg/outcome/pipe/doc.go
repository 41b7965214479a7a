// Package pipe contains the standalone sequential combinators over
// Outcome[T]. These functions form the building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Bind/Then: compose outcome-returning steps (monadic bind)
// - Map: transform successful payloads
// - Match: reduce to a caller-chosen value via two handlers
// - MapError/Ensure/When: reshape failures and conditional steps
// - Tap/OnSuccess/OnFailure: side-effect hooks, input returned unchanged
// - Try/TryRun: capture a returned error or a panic as a failure
//
// Every combinator short-circuits on a failed input: the supplied
// function is never invoked and the original message and cause
// propagate unchanged.
package pipe
