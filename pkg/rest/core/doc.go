// Package core holds the shared plumbing under the concurrent packages:
// context-carried options (worker counts, delivery of remaining inputs),
// channel helpers (ToChan/FromChan), and Pump, the per-worker select loop
// that drains inputs through an engine with staged cancellation handlers.
package core
