package lite

import (
	"context"
	"sync"

	"github.com/ib-77/trop/pkg/trop"
	"github.com/ib-77/trop/pkg/trop/core"
)

// Run executes an engine over an input channel with a fixed number of
// worker lines, without cancellation routing.
func Run[T, E any](ctx context.Context, inputCh <-chan trop.Result[T, E],
	engine func(ctx context.Context, input trop.Result[T, E]) trop.Result[T, E],
	lines int) <-chan trop.Result[T, E] {

	return RunWith(ctx, inputCh, engine, core.CancelHandlers[T, T, E]{}, nil, lines)
}

// Turnout is Run across differing input and output value types.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan trop.Result[In, E],
	engine func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E],
	lines int) <-chan trop.Result[Out, E] {

	return RunWith(ctx, inputCh, engine, core.CancelHandlers[In, Out, E]{}, nil, lines)
}

// RunWith executes an engine over an input channel with explicit
// cancellation routing and an optional delivery callback. The returned
// channel closes once every worker line has stopped.
func RunWith[In, Out, E any](ctx context.Context, inputCh <-chan trop.Result[In, E],
	engine func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E],
	handlers core.CancelHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out trop.Result[Out, E]),
	lines int) <-chan trop.Result[Out, E] {

	out := make(chan trop.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Validate lifts a guard over the channel: values rejected by pred become
// failures built by onFalse, mirroring trop.Filter.
func Validate[T, E any](pred func(ctx context.Context, in T) bool,
	onFalse func(T) E) func(ctx context.Context, input trop.Result[T, E]) trop.Result[T, E] {
	return func(ctx context.Context, input trop.Result[T, E]) trop.Result[T, E] {
		return trop.Filter(input, func(v T) bool { return pred(ctx, v) }, onFalse)
	}
}

// Switch lifts a result-returning step, mirroring trop.FlatMap.
func Switch[In, Out, E any](onSuccess func(ctx context.Context, r In) trop.Result[Out, E]) func(ctx context.Context,
	input trop.Result[In, E]) trop.Result[Out, E] {
	return func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E] {
		return trop.FlatMap(input, func(v In) trop.Result[Out, E] {
			return onSuccess(ctx, v)
		})
	}
}

// MapValue lifts a pure transformation, mirroring trop.Map.
func MapValue[In, Out, E any](onSuccess func(ctx context.Context, r In) Out) func(ctx context.Context,
	input trop.Result[In, E]) trop.Result[Out, E] {
	return func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E] {
		return trop.Map(input, func(v In) Out {
			return onSuccess(ctx, v)
		})
	}
}

// Tee lifts a side effect observing each result without changing it.
func Tee[T, E any](sideEffect func(ctx context.Context, r trop.Result[T, E])) func(ctx context.Context,
	input trop.Result[T, E]) trop.Result[T, E] {
	return func(ctx context.Context, input trop.Result[T, E]) trop.Result[T, E] {
		sideEffect(ctx, input)
		return input
	}
}

// Observe records each passing result in the journal under a stage label.
func Observe[T, E any](j *core.Journal, stage string) func(ctx context.Context,
	input trop.Result[T, E]) trop.Result[T, E] {
	return Tee[T, E](func(ctx context.Context, r trop.Result[T, E]) {
		j.Record(stage, r)
	})
}

// Try lifts a conventional (value, error) step; wrap converts the error
// into the pipeline's declared set.
func Try[In, Out, E any](onTry func(ctx context.Context, r In) (Out, error),
	wrap func(error) E) func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E] {
	return func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E] {
		return trop.FlatMap(input, func(v In) trop.Result[Out, E] {
			u, err := onTry(ctx, v)
			if err != nil {
				return trop.Failure[Out](wrap(err))
			}
			return trop.Success[E](u)
		})
	}
}

// FinallyHandlers collapse results to plain output values. OnSuccess and
// OnFailure are required; OnEmpty may be nil, dropping empty results.
type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, in In) Out
	OnFailure func(ctx context.Context, e E) Out
	OnEmpty   func(ctx context.Context) Out
}

// Finally maps a result stream to plain values. It always drains its
// input to completion so flushed cancellations still arrive downstream;
// once the context ends and the consumer is gone it keeps draining
// without emitting.
func Finally[In, Out, E any](ctx context.Context, input <-chan trop.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		deliver := true
		for r := range input {
			var v Out
			emit := true
			switch {
			case r.IsSuccess():
				v = handlers.OnSuccess(ctx, r.Value())
			case r.IsFailure():
				v = handlers.OnFailure(ctx, r.Err())
			default:
				if handlers.OnEmpty == nil {
					emit = false
				} else {
					v = handlers.OnEmpty(ctx)
				}
			}

			if !emit || !deliver {
				continue
			}

			select {
			case out <- v:
			case <-ctx.Done():
				deliver = false
			}
		}
	}()

	return out
}
