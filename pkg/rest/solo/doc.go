// Package solo contains the synchronous combinators over rest.Result[T].
// Each handler fires its callback at most once, on the current control flow,
// and always returns the original result so calls can be chained. Callback
// errors are never caught here; they propagate to the caller unchanged.
//
// Highlights:
// - OnSuccess/OnError/OnException/OnFailure: conditional side effects
// - MapSuccess/MapError (and ...With): transform a narrowed variant to V
// - Operate: dispatch to one method of a rest.Operator
// - Finally: reduce to a concrete value via per-variant handlers
package solo
