package core

import (
	"context"

	"github.com/ib-77/trop/pkg/trop"
)

// SourceHandlers observe a source feeding a pipeline. Any handler may be
// nil.
type SourceHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnEmit      func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

// Source lifts plain values into a channel of successes. The error type
// cannot be inferred, so it comes first: core.Source[ParseError](ctx, vs...).
// The channel closes when every value is emitted or the context ends.
func Source[E, T any](ctx context.Context, values ...T) <-chan trop.Result[T, E] {
	return SourceWith[E](ctx, SourceHandlers[T]{}, values...)
}

// SourceWith is Source with handlers observing emission and interruption.
func SourceWith[E, T any](ctx context.Context, handlers SourceHandlers[T], values ...T) <-chan trop.Result[T, E] {
	in := make(chan trop.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- trop.Success[E](v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// SourceResults feeds prebuilt results into a pipeline, failures included.
func SourceResults[T, E any](ctx context.Context, results ...trop.Result[T, E]) <-chan trop.Result[T, E] {
	in := make(chan trop.Result[T, E])

	go func() {
		defer close(in)

		for _, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Drain collects everything from out until it closes or the context ends.
func Drain[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FirstOrDefault returns the first value from out, or defaultV when the
// channel closes or the context ends first.
func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
