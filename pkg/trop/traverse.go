package trop

// Traverse applies f to each element strictly left to right. If every
// application succeeds the outputs are returned in input order; the first
// Failure stops traversal immediately and later elements are never passed
// to f. An empty input yields a Success of an empty slice.
func Traverse[T, U, E any](items []T, f func(T) Result[U, E]) Result[[]U, E] {
	out := make([]U, 0, len(items))
	for _, item := range items {
		r := f(item)
		if !r.IsSuccess() {
			if r.IsFailure() {
				return Failure[[]U](r.err)
			}
			return Result[[]U, E]{}
		}
		out = append(out, r.value)
	}
	return Success[E](out)
}

// TraverseOption applies f to a present value and wraps its result; an
// absent input yields Success(None) without invoking f.
func TraverseOption[T, U, E any](o Option[T], f func(T) Result[U, E]) Result[Option[U], E] {
	v, ok := o.Value()
	if !ok {
		return Success[E](None[U]())
	}
	return Map(f(v), Some[U])
}

// Sequence turns a slice of results into a result of a slice, failing on
// the first Failure in order.
func Sequence[T, E any](rs []Result[T, E]) Result[[]T, E] {
	return Traverse(rs, func(r Result[T, E]) Result[T, E] { return r })
}
