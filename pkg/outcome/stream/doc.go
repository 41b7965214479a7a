// Package stream lifts the sequential combinators over channels for
// fan-out/fan-in flows.
//
// Common usage:
// - ToChan/FromChan: move between slices and outcome channels
// - Run/Pipe: apply a stage across a channel with a fixed worker count
// - Then/Map/Try/Ensure/Tap: build stages from pipe-shaped steps
// - Finally: reduce each outcome on a channel to a concrete value
//
// Ordering within one worker is sequential; choosing more than one
// worker accepts interleaving. Cancellation stops the pumps; it does
// not reshape outcomes already produced.
package stream
