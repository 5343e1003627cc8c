package trop

import (
	"fmt"

	"github.com/zeebo/errs"
)

const (
	tagEmpty uint8 = iota
	tagSuccess
	tagFailure
)

// Result is a two-variant container: a Success holding one value of type T,
// or a Failure holding one error value of type E. E is deliberately
// unconstrained so any value type can serve as an error variant.
//
// The zero value is neither variant. It marks a result that was never
// constructed, most often a partial handler that fell off the end of its
// type switch, and is detected by IsEmpty. Transformations propagate it
// unchanged; eliminators that must commit to a variant treat it as a
// violation.
type Result[T, E any] struct {
	value T
	err   E
	tag   uint8
}

// Success wraps a computed value. The error type cannot be inferred from
// the argument, so it comes first: trop.Success[ParseError](5).
func Success[E, T any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		tag:   tagSuccess,
	}
}

// Failure wraps an error value. The value type cannot be inferred from
// the argument, so it comes first: trop.Failure[int](ParseError{}).
func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err: e,
		tag: tagFailure,
	}
}

// Value returns the successful value, or the zero value of T otherwise.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error value, or the zero value of E otherwise.
func (r Result[T, E]) Err() E {
	return r.err
}

// Cause returns the error value with its type erased, nil unless the
// result is a Failure.
func (r Result[T, E]) Cause() any {
	if r.tag != tagFailure {
		return nil
	}
	return any(r.err)
}

func (r Result[T, E]) IsSuccess() bool {
	return r.tag == tagSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return r.tag == tagFailure
}

// IsEmpty reports whether the result is the zero value, i.e. neither
// variant was ever constructed.
func (r Result[T, E]) IsEmpty() bool {
	return r.tag == tagEmpty
}

func (r Result[T, E]) String() string {
	switch r.tag {
	case tagSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case tagFailure:
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return "Empty"
}

// GetOrElse returns the successful value, or def otherwise.
func (r Result[T, E]) GetOrElse(def T) T {
	if r.IsSuccess() {
		return r.value
	}
	return def
}

// OrElse returns the receiver if it is a Success, alt otherwise. Combining
// results whose declared error sets differ is the widened form
// WidenError[EU](r).OrElse(WidenError[EU](alt)).
func (r Result[T, E]) OrElse(alt Result[T, E]) Result[T, E] {
	if r.IsSuccess() {
		return r
	}
	return alt
}

// ToSlice returns the zero-or-one element view of the result.
func (r Result[T, E]) ToSlice() []T {
	if r.IsSuccess() {
		return []T{r.value}
	}
	return nil
}

// Must returns the successful value or re-raises the failure as a panic.
// Error payloads panic as themselves so a surrounding Catch round-trips
// them; other payloads are wrapped first.
func Must[T, E any](r Result[T, E]) T {
	switch r.tag {
	case tagSuccess:
		return r.value
	case tagFailure:
		if err, ok := any(r.err).(error); ok && err != nil {
			panic(err)
		}
		panic(errs.New("result failure: %v", r.err))
	}
	panic(Violation.New("empty result"))
}

// Unwrap converts the result into Go's native fault-or-value shape. It is
// available whenever the error type satisfies error.
func Unwrap[T any, E error](r Result[T, E]) (T, error) {
	switch r.tag {
	case tagSuccess:
		return r.value, nil
	case tagFailure:
		return r.value, r.err
	}
	var zero T
	return zero, Violation.New("empty result")
}
