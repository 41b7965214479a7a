// Package task provides the deferred counterpart of package pipe: a
// Task[T] is a suspended computation that yields an outcome when
// awaited, and the combinators compose tasks without running them.
//
// Highlights:
// - Of/Resolve/Try/TryRun: build tasks from outcomes, values or
//   error-returning computations
// - Bind/Then/Map/MapError/Ensure: sequence and transform
// - Tap/OnSuccess/OnFailure: side effects on await
// - Match: await and reduce to a concrete value
// - All: await several tasks with bounded concurrency, order preserved
//
// Cancellation is not a distinct state: a wrapped computation that
// fails because its context was cancelled produces an ordinary failure
// outcome. outcome.IsCancellation tells the two apart when needed.
package task
