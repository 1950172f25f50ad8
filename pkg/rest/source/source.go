package source

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/restrop/pkg/rest"
	"github.com/ib-77/restrop/pkg/rest/core"
	"github.com/ib-77/restrop/pkg/rest/solo"
)

var ErrCancelled = errors.New("request cancelled")

// Sink receives push-based updates. Only successes are delivered; what a
// sink does about failures is its own policy.
type Sink[T any] interface {
	DeliverSuccess(ctx context.Context, r rest.Result[T])
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc[T any] func(ctx context.Context, r rest.Result[T])

func (f SinkFunc[T]) DeliverSuccess(ctx context.Context, r rest.Result[T]) {
	f(ctx, r)
}

// DataSource turns a result-producing fetch into push-based updates for a
// set of observing sinks.
type DataSource[T any] struct {
	fetch func(ctx context.Context) rest.Result[T]

	mu    sync.Mutex
	sinks []Sink[T]
}

func New[T any](fetch func(ctx context.Context) rest.Result[T]) *DataSource[T] {
	return &DataSource[T]{fetch: fetch}
}

// Observe registers a sink for future deliveries.
func (d *DataSource[T]) Observe(s Sink[T]) *DataSource[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, s)
	return d
}

// snapshot copies the registered sinks under the lock so delivery can
// proceed without holding it.
func (d *DataSource[T]) snapshot() []Sink[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Sink[T](nil), d.sinks...)
}

// Request fetches once and delivers the result to every registered sink if
// it is a success. The result is returned unchanged either way.
func (d *DataSource[T]) Request(ctx context.Context) rest.Result[T] {
	return solo.OnSuccess(ctx, d.fetch(ctx), func(ctx context.Context, r rest.Result[T]) {
		for _, s := range d.snapshot() {
			s.DeliverSuccess(ctx, r)
		}
	})
}

// Stream runs one Request per trigger across `lines` worker pumps and emits
// every result, delivered or not, on the returned channel. When ctx is done,
// pending triggers are reported as cancelled exceptions unless
// core.WithDeliverRemaining turned that off.
func (d *DataSource[T]) Stream(ctx context.Context, triggers <-chan struct{}, lines int) <-chan rest.Result[T] {
	out := make(chan rest.Result[T])
	wg := &sync.WaitGroup{}

	engine := func(ctx context.Context, _ struct{}) <-chan rest.Result[T] {
		ch := make(chan rest.Result[T], 1)
		go func() {
			defer close(ch)
			if ctx.Err() == nil {
				ch <- d.Request(ctx)
			}
		}()
		return ch
	}

	handlers := core.CancellationHandlers[struct{}, rest.Result[T]]{
		OnCancel: func(ctx context.Context, inputCh <-chan struct{}, outCh chan<- rest.Result[T]) {
			CancelRemaining[T](ctx, inputCh, outCh)
		},
		OnCancelUnprocessed: func(ctx context.Context, _ struct{}, outCh chan<- rest.Result[T]) {
			CancelOne[T](ctx, outCh)
		},
	}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Pump(ctx, triggers, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
