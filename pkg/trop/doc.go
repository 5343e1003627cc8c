// Package trop is a small algebra for computations that either succeed
// with a value or fail with a typed error. Result[T, E] keeps the error
// channel as a type parameter, so composing steps with different failure
// shapes unions their declared error sets instead of collapsing them to a
// bare error.
//
// Highlights:
// - Success/Failure/FromOption/FromEither/FromTuple/Catch/Cond: construct Result[T, E]
// - Map/FlatMap/Filter: compose successful values, failing fast
// - Fold/GetOrElse/OrElse/Exists/Contains/Forall/Foreach: case analysis and queries
// - MapError/WidenError/HandleError/HandleSome: transform, widen, and resolve error sets
// - Traverse/TraverseOption/Sequence: strict left-to-right traversal with short-circuit
// - ToOption/ToEither/ToSlice/Unwrap/Must: conversions to host-native shapes
//
// Results are immutable values; every combinator returns a fresh one. The
// algebra is synchronous and fail-fast: the first Failure in a chain stops
// evaluation of the steps after it. Declared error sets are ordinary
// caller-owned types, usually sealed interfaces; package union adds
// registration-checked partial handlers over them, and packages chain,
// core, and lite embed the algebra in fluent and channel-based pipelines.
package trop
