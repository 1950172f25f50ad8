package mass

import (
	"context"

	"github.com/ib-77/restrop/pkg/rest"
	"github.com/ib-77/restrop/pkg/rest/solo"
)

func SuccessHandling[T any](ctx context.Context, input rest.Result[T],
	onSuccess func(ctx context.Context, r rest.Result[T]),
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan rest.Result[T] {

	ch := make(chan rest.Result[T])
	out := make(chan rest.Result[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.OnSuccess(ctx, input, onSuccess)
		}

	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func ErrorHandling[T any](ctx context.Context, input rest.Result[T],
	onError func(ctx context.Context, r rest.Result[T]),
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan rest.Result[T] {

	ch := make(chan rest.Result[T])
	out := make(chan rest.Result[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.OnError(ctx, input, onError)
		}

	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func ExceptionHandling[T any](ctx context.Context, input rest.Result[T],
	onException func(ctx context.Context, r rest.Result[T]),
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan rest.Result[T] {

	ch := make(chan rest.Result[T])
	out := make(chan rest.Result[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.OnException(ctx, input, onException)
		}

	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func FailureHandling[T any](ctx context.Context, input rest.Result[T],
	onFailure func(ctx context.Context, r rest.Result[T]),
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan rest.Result[T] {

	ch := make(chan rest.Result[T])
	out := make(chan rest.Result[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.OnFailure(ctx, input, onFailure)
		}

	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func Operating[T any](ctx context.Context, input rest.Result[T],
	op rest.Operator[T],
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan rest.Result[T] {

	ch := make(chan rest.Result[T])
	out := make(chan rest.Result[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.Operate(ctx, input, op)
		}

	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func SuccessMapping[T, V any](ctx context.Context, input rest.Result[T],
	mapper rest.SuccessMapper[T, V],
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan V {

	ch := make(chan V)
	out := make(chan V)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.MapSuccess(ctx, input, mapper)
		}

	}()

	go func() {
		defer close(out)

		select {
		case v, ok := <-ch:
			if ok {
				out <- v
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func ErrorMapping[T, V any](ctx context.Context, input rest.Result[T],
	mapper rest.ErrorMapper[T, V],
	onCancel func(ctx context.Context, in rest.Result[T])) <-chan V {

	ch := make(chan V)
	out := make(chan V)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.MapError(ctx, input, mapper)
		}

	}()

	go func() {
		defer close(out)

		select {
		case v, ok := <-ch:
			if ok {
				out <- v
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func Merging[T any](ctx context.Context, primary rest.Result[[]T],
	others []rest.Result[[]T], policy rest.MergePolicy,
	onCancel func(ctx context.Context, in rest.Result[[]T])) <-chan rest.Result[[]T] {

	ch := make(chan rest.Result[[]T])
	out := make(chan rest.Result[[]T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- rest.Merge(ctx, primary, others, policy)
		}

	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, primary)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, primary)
			}
		}
	}()

	return out
}
