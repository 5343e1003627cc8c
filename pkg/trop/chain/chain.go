package chain

import (
	"context"

	"github.com/ib-77/trop/pkg/trop"
)

// Chain wraps a trop.Result with a context to enable fluent chaining of
// context-aware steps. The algebra itself stays pure; the chain is where
// an embedding caller brings its context along.
type Chain[T, E any] struct {
	ctx context.Context
	res trop.Result[T, E]
}

// Start creates a new chain from a trop.Result
func Start[T, E any](ctx context.Context, r trop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value. The error type
// cannot be inferred, so it comes first: chain.FromValue[ParseError](ctx, 5).
func FromValue[E, T any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, trop.Success[E](v))
}

// Result returns the underlying trop.Result
func (c Chain[T, E]) Result() trop.Result[T, E] {
	return c.res
}

// Then chains a function that already returns trop.Result[U, E]
func Then[T, U, E any](c Chain[T, E], onSuccess func(context.Context, T) trop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: trop.FlatMap(c.res, func(v T) trop.Result[U, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error); wrap converts the
// error into the chain's declared set.
func ThenTry[T, U, E any](c Chain[T, E], try func(context.Context, T) (U, error), wrap func(error) E) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: trop.FlatMap(c.res, func(v T) trop.Result[U, E] {
			u, err := try(c.ctx, v)
			if err != nil {
				return trop.Failure[U](wrap(err))
			}
			return trop.Success[E](u)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c Chain[T, E], onSuccess func(context.Context, T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: trop.Map(c.res, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// While keeps applying onSuccess as long as the chain succeeds and the
// predicate holds for the current value.
func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) trop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = Then(c, onSuccess)
	}
	return c
}

// Or returns the receiver if it succeeded, the alternative if that
// succeeded, otherwise the first failure of the two.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	if c.res.IsFailure() {
		return c
	}
	return alternative
}

// And returns the first failure of the two, otherwise the required chain.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the
// result. Either hook may be nil.
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if c.res.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value by case analysis.
func Finally[T, U, E any](c Chain[T, E],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U,
) U {
	return trop.Fold(c.res,
		func(e E) U { return onFailure(c.ctx, e) },
		func(v T) U { return onSuccess(c.ctx, v) })
}
