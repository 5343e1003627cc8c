package trop

// HandleError collapses any Failure to a plain value by invoking resolve.
// It always returns a bare value, never a Result. Recovering an empty
// result is a violation.
func (r Result[T, E]) HandleError(resolve func(E) T) T {
	switch r.tag {
	case tagSuccess:
		return r.value
	case tagFailure:
		return resolve(r.err)
	}
	panic(Violation.New("empty result"))
}

// HandleSome resolves a subset of the declared error set E, leaving the
// remaining set E1. For variants the handler resolves it returns a Success
// or a new Failure of an already-declared remaining type; for variants it
// defers it re-wraps the original error as a member of E1.
//
// On Success the handler is never consulted; the value is re-tagged to the
// remaining set. On Failure the handler's result is returned directly.
//
// The decomposition of E into resolved and remaining variants is checked
// two ways. Handlers built by the union package are verified for coverage
// when they are built. A hand-written handler that falls off the end of
// its type switch returns the zero Result; HandleSome treats that, and an
// empty receiver, as a violation rather than letting a narrowed type hide
// an unhandled variant.
func HandleSome[T, E, E1 any](r Result[T, E], handle func(E) Result[T, E1]) Result[T, E1] {
	switch r.tag {
	case tagSuccess:
		return Success[E1](r.value)
	case tagFailure:
		out := handle(r.err)
		if out.IsEmpty() {
			panic(Violation.New("handler resolved no variant for error %T", r.err))
		}
		return out
	}
	panic(Violation.New("empty result"))
}
