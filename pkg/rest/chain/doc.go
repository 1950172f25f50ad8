// Package chain provides a fluent wrapper around rest.Result[T]
// for chaining handlers in source order without repeating the context.
//
// Handlers fire in the order they are written; each returns a chain holding
// the same underlying result, so later handlers see the result untouched by
// earlier ones.
//
// Key operations:
// - Start/Call: begin a chain from a Result[T] or from the Of factory
// - OnSuccess/OnError/OnException/OnFailure: conditional side effects
// - Operate: dispatch to a rest.Operator
// - MapSuccess/MapError: collapse into a mapped model
// - Finally: collapse into a final value via per-variant handlers
package chain
