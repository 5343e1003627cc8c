package core

import (
	"context"
	"errors"

	"github.com/ib-77/trop/pkg/trop"
)

// ErrCancelled marks values a pipeline failed to process because its
// context ended first.
var ErrCancelled = errors.New("pipeline cancelled")

// IsCancellation reports whether err stems from a cancelled or expired
// context rather than from the work itself.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// DrainAsFailures builds cancel handlers that convert every value still in
// flight into a Failure of the pipeline's declared set, via wrap. Whether
// remaining input is flushed or abandoned follows WithProcessOptions,
// flushing by default. A stage closed by these handlers keeps its
// accounting: nothing is silently dropped unless the caller opted out.
func DrainAsFailures[In, Out, E any](wrap func(error) E) CancelHandlers[In, Out, E] {
	return CancelHandlers[In, Out, E]{
		OnCancel: func(ctx context.Context, inputCh <-chan trop.Result[In, E], outCh chan<- trop.Result[Out, E]) {
			if !IsProcessRemainingEnabled(ctx, true) {
				return
			}
			for range inputCh {
				outCh <- trop.Failure[Out](wrap(ErrCancelled))
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, unprocessed trop.Result[In, E], outCh chan<- trop.Result[Out, E]) {
			if !IsProcessRemainingEnabled(ctx, true) {
				return
			}
			if unprocessed.IsFailure() {
				outCh <- trop.Failure[Out](unprocessed.Err())
				return
			}
			outCh <- trop.Failure[Out](wrap(ErrCancelled))
		},
		OnCancelProcessed: func(ctx context.Context, in trop.Result[In, E], processed trop.Result[Out, E], outCh chan<- trop.Result[Out, E]) {
			if !IsProcessRemainingEnabled(ctx, true) {
				return
			}
			outCh <- processed
		},
	}
}
