package chain

import (
	"context"

	"github.com/ib-77/restrop/pkg/rest"
	"github.com/ib-77/restrop/pkg/rest/solo"
)

// Chain wraps a rest.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rest.Result[T]
}

// Start creates a new chain from a rest.Result
func Start[T any](ctx context.Context, result rest.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// Call creates a new chain by running action through the rest.Of factory
func Call[T any](ctx context.Context, rng rest.SuccessRange,
	action func() (rest.Call[T], error)) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rest.Of(rng, action),
	}
}

// Result returns the underlying rest.Result
func (c *Chain[T]) Result() rest.Result[T] {
	return c.result
}

// OnSuccess fires f when the result is a success; the chain's result is
// unchanged either way
func (c *Chain[T]) OnSuccess(f func(ctx context.Context, r rest.Result[T])) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OnSuccess(c.ctx, c.result, f),
	}
}

// OnError fires f when the result is a server-reported error
func (c *Chain[T]) OnError(f func(ctx context.Context, r rest.Result[T])) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OnError(c.ctx, c.result, f),
	}
}

// OnException fires f when the result is a transport exception
func (c *Chain[T]) OnException(f func(ctx context.Context, r rest.Result[T])) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OnException(c.ctx, c.result, f),
	}
}

// OnFailure fires f when the result is an error or an exception
func (c *Chain[T]) OnFailure(f func(ctx context.Context, r rest.Result[T])) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OnFailure(c.ctx, c.result, f),
	}
}

// Operate dispatches the result to exactly one method of op
func (c *Chain[T]) Operate(op rest.Operator[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Operate(c.ctx, c.result, op),
	}
}

// MapSuccess collapses the chain into the mapped model V; defined only for
// success results (see solo.MapSuccess)
func MapSuccess[T, V any](c *Chain[T], mapper rest.SuccessMapper[T, V]) V {
	return solo.MapSuccess(c.ctx, c.result, mapper)
}

// MapError collapses the chain into the mapped model V; defined only for
// error results (see solo.MapError)
func MapError[T, V any](c *Chain[T], mapper rest.ErrorMapper[T, V]) V {
	return solo.MapError(c.ctx, c.result, mapper)
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, V any](c *Chain[T],
	onSuccess func(ctx context.Context, r rest.Result[T]) V,
	onError func(ctx context.Context, r rest.Result[T]) V,
	onException func(ctx context.Context, r rest.Result[T]) V) V {
	return solo.Finally[T, V](c.ctx, c.result, onSuccess, onError, onException)
}
