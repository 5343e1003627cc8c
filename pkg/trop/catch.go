package trop

import (
	"github.com/zeebo/errs"
)

// Catch evaluates f inside a scoped fault boundary: a panic raised during
// the call is captured and re-homed as the Failure payload, a normal
// return becomes a Success. The argument is deferred so the boundary is
// armed before any work runs.
//
// Error payloads are kept as-is, so runtime faults such as integer
// division by zero stay reachable through errors.As. Non-error payloads
// are wrapped. Violations are not data and are re-raised; runtime.Goexit
// is never intercepted.
func Catch[T any](f func() T) (r Result[T, error]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if IsViolation(rec) {
			panic(rec)
		}
		if err, ok := rec.(error); ok {
			r = Failure[T](err)
			return
		}
		r = Failure[T](errs.New("caught fault: %v", rec))
	}()
	return Success[error](f())
}

// FromTuple adapts the conventional (value, err) return into the algebra.
func FromTuple[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[error](v)
}

// Cond evaluates exactly one of the two thunks depending on test. The
// unchosen branch never runs, so it may freely panic or carry side
// effects.
func Cond[T, E any](test bool, onTrue func() T, onFalse func() E) Result[T, E] {
	if test {
		return Success[E](onTrue())
	}
	return Failure[T](onFalse())
}
