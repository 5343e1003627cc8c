// Package chain provides a fluent wrapper around trop.Result[T, E]
// for building synchronous Railway-Oriented chains with a context
// carried alongside.
//
// It composes the core combinators behind a convenient Chain[T, E] type.
// This enables ergonomic pipelines without dealing directly with branching
// results at each step, while the declared error set stays typed.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error into E
// - Map: transform the successful value (T -> U)
// - While: repeat a step while a predicate holds
// - Or/And: alternatives and sequencing
// - Ensure: run side effects on either side without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
