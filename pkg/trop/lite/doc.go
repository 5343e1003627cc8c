// Package lite provides channel-lifted helpers that wrap the trop
// combinators for concurrent pipelines with typed error sets. It covers
// simple fan-out/fan-in flows as well as explicit cancellation routing.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Validate/Try/Switch/MapValue/Tee/Observe: lift core operations over channels
// - Turnout: compose stages across differing value types
// - RunWith: add cancellation handlers and a delivery callback
// - Finally: map Result[In, E] to Out on completion, draining fully
//
// Cancellation kits such as core.DrainAsFailures turn values still in
// flight into failures of the pipeline's declared set, so a cancelled run
// still accounts for every input.
package lite
