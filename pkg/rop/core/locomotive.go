package core

import (
	"context"
	"sync"

	"github.com/ib-77/inlinetry/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In)
	OnCancelProcessed   func(ctx context.Context, in In, processed rop.Result[Out])
}

// Locomotive feeds values from inputCh to engine one at a time and sends
// each result to outCh until inputCh is closed or ctx is done. Several
// locomotives may share one engine.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- rop.Result[Out],
	engine func(in In) rop.Result[Out],
	handlers CancellationHandlers[In, Out],
	onResult func(ctx context.Context, res rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			}

			pr := engine(in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			case outCh <- pr:
				if onResult != nil {
					onResult(ctx, pr)
				}
			}
		}
	}
}
