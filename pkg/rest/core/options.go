package core

import "context"

type OptionKey string

const (
	DeliveryOptionKey OptionKey = "delivery_options"
	WorkerOptionKey   OptionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type DeliveryOptions struct {
	DeliverRemaining bool
}

// WithWorkers sets the number of worker lines the source package spins up.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// WithDeliverRemaining controls whether pending inputs are still reported
// (as cancelled results) after the context is done.
func WithDeliverRemaining(ctx context.Context, deliver bool) context.Context {
	return context.WithValue(ctx, DeliveryOptionKey, DeliveryOptions{DeliverRemaining: deliver})
}

func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func DeliverRemaining(ctx context.Context, defaultDeliver bool) bool {
	options, ok := ctx.Value(DeliveryOptionKey).(DeliveryOptions)
	if ok {
		return options.DeliverRemaining
	}
	return defaultDeliver
}
