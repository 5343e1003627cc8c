package trop

// Map transforms a successful value; a Failure passes through untouched.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.IsSuccess() {
		return Success[E](f(r.value))
	}
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return Result[U, E]{}
}

// FlatMap sequences two fallible steps. On Failure f is never invoked and
// the original error propagates unchanged. Steps whose declared error sets
// differ are composed by widening both into the union first, see
// WidenError.
func FlatMap[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return f(r.value)
	}
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return Result[U, E]{}
}

// Filter guards a successful value: when pred rejects it, the result
// becomes a Failure built by onFalse from the rejected value.
// PredicateFalse is the canonical onFalse.
func Filter[T, E any](r Result[T, E], pred func(T) bool, onFalse func(T) E) Result[T, E] {
	if r.IsSuccess() && !pred(r.value) {
		return Failure[T](onFalse(r.value))
	}
	return r
}

// Fold collapses the result to a plain value by case analysis. Folding an
// empty result is a violation.
func Fold[T, E, U any](r Result[T, E], onFailure func(E) U, onSuccess func(T) U) U {
	switch r.tag {
	case tagSuccess:
		return onSuccess(r.value)
	case tagFailure:
		return onFailure(r.err)
	}
	panic(Violation.New("empty result"))
}

// Contains reports whether the result succeeded with exactly v.
func Contains[T comparable, E any](r Result[T, E], v T) bool {
	return r.IsSuccess() && r.value == v
}

// Exists reports whether the result succeeded with a value satisfying p.
func (r Result[T, E]) Exists(p func(T) bool) bool {
	return r.IsSuccess() && p(r.value)
}

// Forall reports whether p holds for the successful value; it holds
// vacuously when there is none.
func (r Result[T, E]) Forall(p func(T) bool) bool {
	if r.IsSuccess() {
		return p(r.value)
	}
	return true
}

// Foreach runs f for its side effect on the successful value.
func (r Result[T, E]) Foreach(f func(T)) {
	if r.IsSuccess() {
		f(r.value)
	}
}
