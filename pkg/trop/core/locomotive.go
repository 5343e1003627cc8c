package core

import (
	"context"
	"sync"

	"github.com/ib-77/trop/pkg/trop"
)

// CancelHandlers route the values a worker still holds when its context is
// cancelled. Any handler may be nil, in which case the values are dropped.
type CancelHandlers[In, Out, E any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan trop.Result[In, E], outCh chan<- trop.Result[Out, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed trop.Result[In, E], outCh chan<- trop.Result[Out, E])
	OnCancelProcessed   func(ctx context.Context, in trop.Result[In, E], processed trop.Result[Out, E], outCh chan<- trop.Result[Out, E])
}

// Locomotive is one worker loop: it pulls results from inputCh, drives
// them through the engine, and pushes the outputs to outCh until the input
// closes or the context is cancelled. Receives and sends are both guarded
// by the context so a cancelled pipeline never wedges a worker; the cancel
// handlers decide what happens to in-flight values. onDelivered, if not
// nil, fires after each successful send.
func Locomotive[In, Out, E any](ctx context.Context,
	inputCh <-chan trop.Result[In, E], outCh chan<- trop.Result[Out, E],
	engine func(ctx context.Context, input trop.Result[In, E]) trop.Result[Out, E],
	handlers CancelHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out trop.Result[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			default:
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onDelivered != nil {
					onDelivered(ctx, pr)
				}
			}
		}
	}
}
