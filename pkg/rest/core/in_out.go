package core

import "context"

// ToChan feeds values into a channel, stopping early when ctx is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChan drains a channel into a slice until it closes or ctx is done.
func FromChan[T any](ctx context.Context, in <-chan T) []T {
	out := make([]T, 0)

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-ctx.Done():
			return out
		}
	}
}
