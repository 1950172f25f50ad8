package rest

import "context"

// SuccessMapper transforms the payload of a success result into a
// caller-defined model V.
type SuccessMapper[T, V any] interface {
	// MapSuccess maps a success result to V. The result is read-only.
	MapSuccess(r Result[T]) V
}

// ErrorMapper transforms an error result into a caller-defined model V.
type ErrorMapper[T, V any] interface {
	// MapError maps an error result to V. The result is read-only.
	MapError(r Result[T]) V
}

// Operator packages per-variant handling as a reusable unit. Dispatch
// invokes exactly one method, selected by the active variant.
type Operator[T any] interface {
	// OnSuccess handles a success result
	OnSuccess(ctx context.Context, r Result[T])
	// OnError handles a server-reported error result
	OnError(ctx context.Context, r Result[T])
	// OnException handles a transport exception result
	OnException(ctx context.Context, r Result[T])
}
