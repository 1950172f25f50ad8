package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In, outCh chan<- Out)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- Out)
	OnCancelProcessed   func(ctx context.Context, in In, processed Out, outCh chan<- Out)
}

// Pump drains inputCh through engine into outCh until inputCh closes or ctx
// is done. One Pump is one worker line; callers run several with a shared
// WaitGroup and close outCh after Wait. Cancellation is reported through
// handlers at the exact stage it struck: before an input was taken, after it
// was taken but not processed, or after processing but before delivery.
func Pump[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) <-chan Out,
	handlers CancellationHandlers[In, Out],
	onDelivered func(ctx context.Context, out Out), wg *sync.WaitGroup) {
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
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

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
}
