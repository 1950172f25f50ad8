package solo

import (
	"context"

	"github.com/ib-77/restrop/pkg/rest"
)

func OnSuccess[T any](ctx context.Context, input rest.Result[T],
	onSuccess func(ctx context.Context, r rest.Result[T])) rest.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func OnError[T any](ctx context.Context, input rest.Result[T],
	onError func(ctx context.Context, r rest.Result[T])) rest.Result[T] {

	if input.IsError() {
		onError(ctx, input)
	}

	return input
}

func OnException[T any](ctx context.Context, input rest.Result[T],
	onException func(ctx context.Context, r rest.Result[T])) rest.Result[T] {

	if input.IsException() {
		onException(ctx, input)
	}

	return input
}

func OnFailure[T any](ctx context.Context, input rest.Result[T],
	onFailure func(ctx context.Context, r rest.Result[T])) rest.Result[T] {

	if input.IsFailure() {
		onFailure(ctx, input)
	}

	return input
}

// MapSuccess transforms the payload of a success into V. It is defined only
// for success results: the caller is expected to have narrowed the variant
// already, and for any other variant the mapper is not invoked and the zero
// V is returned.
func MapSuccess[T, V any](ctx context.Context, input rest.Result[T],
	mapper rest.SuccessMapper[T, V]) V {

	var v V
	if input.IsSuccess() {
		v = mapper.MapSuccess(input)
	}
	return v
}

// MapSuccessWith maps like MapSuccess and then hands the mapped value to
// receive. Receive runs only when the mapper ran.
func MapSuccessWith[T, V any](ctx context.Context, input rest.Result[T],
	mapper rest.SuccessMapper[T, V],
	receive func(ctx context.Context, v V)) V {

	var v V
	if input.IsSuccess() {
		v = mapper.MapSuccess(input)
		receive(ctx, v)
	}
	return v
}

// MapError is the error-variant counterpart of MapSuccess. Exceptions are
// deliberately not mappable; they carry no server payload to transform.
func MapError[T, V any](ctx context.Context, input rest.Result[T],
	mapper rest.ErrorMapper[T, V]) V {

	var v V
	if input.IsError() {
		v = mapper.MapError(input)
	}
	return v
}

// MapErrorWith maps like MapError and then hands the mapped value to
// receive. Receive runs only when the mapper ran.
func MapErrorWith[T, V any](ctx context.Context, input rest.Result[T],
	mapper rest.ErrorMapper[T, V],
	receive func(ctx context.Context, v V)) V {

	var v V
	if input.IsError() {
		v = mapper.MapError(input)
		receive(ctx, v)
	}
	return v
}

// Operate dispatches input to exactly one method of op, selected by the
// active variant, and returns input unchanged.
func Operate[T any](ctx context.Context, input rest.Result[T],
	op rest.Operator[T]) rest.Result[T] {

	switch {
	case input.IsSuccess():
		op.OnSuccess(ctx, input)
	case input.IsError():
		op.OnError(ctx, input)
	case input.IsException():
		op.OnException(ctx, input)
	}

	return input
}

// Finally collapses a result into a concrete value via per-variant handlers.
func Finally[T, V any](ctx context.Context, input rest.Result[T],
	onSuccess func(ctx context.Context, r rest.Result[T]) V,
	onError func(ctx context.Context, r rest.Result[T]) V,
	onException func(ctx context.Context, r rest.Result[T]) V) V {

	if input.IsSuccess() {
		return onSuccess(ctx, input)
	} else if input.IsError() {
		return onError(ctx, input)
	} else {
		return onException(ctx, input)
	}
}
