// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of outcomes.
//
// It mirrors package pipe but reads postfix:
// - From/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning steps
// - Map/Ensure/When/MapError: transform values and failures
// - Tap/OnSuccess/OnFailure: side effects without changing the chain
// - Finally: reduce to a concrete value via handlers
//
// Steps that change the payload type are package-level functions of the
// same names, taking the chain as their first argument.
package chain
