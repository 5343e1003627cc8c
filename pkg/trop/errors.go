package trop

import (
	"fmt"
	"reflect"

	"github.com/zeebo/errs"
)

// Violation is the class of bookkeeping faults: broken composition
// invariants such as eliminating an empty result, widening outside the
// declared error set, or a partial handler with a coverage hole. They are
// raised by panic and are never ordinary domain failures; Catch re-raises
// them instead of capturing them as data.
var Violation = errs.Class("trop: violation")

// IsViolation reports whether a recovered panic payload is a bookkeeping
// fault.
func IsViolation(v any) bool {
	err, ok := v.(error)
	return ok && Violation.Has(err)
}

// PredicateError is the built-in error variant produced when a guard
// rejects a successful value. It carries the rejected value for
// diagnostics.
type PredicateError[T any] struct {
	Value T
}

func (e PredicateError[T]) Error() string {
	return fmt.Sprintf("predicate rejected value %v", e.Value)
}

// PredicateFalse is the canonical rejection for Filter, wrapping the
// rejected value into a PredicateError.
func PredicateFalse[T any](v T) PredicateError[T] {
	return PredicateError[T]{Value: v}
}

// MapError transforms a present error; a Success passes through untouched.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.IsFailure() {
		return Failure[T](f(r.err))
	}
	if r.IsSuccess() {
		return Success[F](r.value)
	}
	return Result[T, F]{}
}

// ContainsError reports whether the result failed with exactly e.
func ContainsError[T any, E comparable](r Result[T, E], e E) bool {
	return r.IsFailure() && r.err == e
}

// ExistsError reports whether the result failed with an error satisfying p.
func (r Result[T, E]) ExistsError(p func(E) bool) bool {
	return r.IsFailure() && p(r.err)
}

// ForallError reports whether p holds for the present error; it holds
// vacuously when there is none.
func (r Result[T, E]) ForallError(p func(E) bool) bool {
	if r.IsFailure() {
		return p(r.err)
	}
	return true
}

// WidenError re-tags the declared error set from E to the broader F. The
// target set cannot be inferred, so it comes first:
// trop.WidenError[AvgError](r). A Failure whose concrete variant is not a
// member of F is a violation: widening must never mistag.
func WidenError[F, T, E any](r Result[T, E]) Result[T, F] {
	switch r.tag {
	case tagSuccess:
		return Success[F](r.value)
	case tagFailure:
		f, ok := any(r.err).(F)
		if !ok {
			panic(Violation.New("error %T is not a member of %s",
				r.err, reflect.TypeOf((*F)(nil)).Elem()))
		}
		return Failure[T](f)
	}
	return Result[T, F]{}
}
