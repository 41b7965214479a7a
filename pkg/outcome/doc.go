// Package outcome provides the success/failure tagged value at the
// bottom of the module: an operation that may fail returns an
// Outcome[T] carrying either a payload or failure diagnostics, instead
// of an error to be checked at every call site.
//
// Highlights:
// - Success/Fail/FailWith/FromError: construct Outcome[T]
// - Succeed/SucceedWith: construct the payload-free Plain outcome
// - ValueOr/TryGet/MustValue: guarded extraction
// - Combine/CombineValues: fold a batch of outcomes into one aggregate
// - Diagnostics: the aggregate cause built by Combine
// - Equal/Hash: value equality over flag, message, cause and payload
//
// Composition lives in the sibling packages: pipe (standalone
// combinators), chain (fluent form), task (deferred form) and stream
// (channel form).
package outcome
