// Package mass implements channel-based counterparts of the solo
// combinators. Each function lifts one solo primitive onto a channel and a
// select loop, so a caller can await the callback's completion while staying
// cancellable through its own context. No worker management happens here;
// on cancellation the optional onCancel handler fires and the output channel
// closes without a value.
//
// It is typically used directly for one-shot awaited handling, or as an
// engine for the source package's worker pump.
package mass
