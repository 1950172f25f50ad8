package source

import (
	"context"

	"github.com/ib-77/restrop/pkg/rest"
	"github.com/ib-77/restrop/pkg/rest/core"
)

// CancelRemaining reports every trigger still pending on inputCh as a
// cancelled exception. It relies on the trigger producer closing the channel
// once the context is done (core.ToChan does).
func CancelRemaining[T any](ctx context.Context, inputCh <-chan struct{},
	outCh chan<- rest.Result[T]) {

	if !core.DeliverRemaining(ctx, true) {
		return
	}

	for range inputCh {
		outCh <- rest.Exception[T](ErrCancelled)
	}
}

// CancelOne reports a single already-taken but unprocessed trigger.
func CancelOne[T any](ctx context.Context, outCh chan<- rest.Result[T]) {
	if core.DeliverRemaining(ctx, true) {
		outCh <- rest.Exception[T](ErrCancelled)
	}
}
