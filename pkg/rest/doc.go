// Package rest models the outcome of a network call as an immutable
// three-variant Result[T]: success, server-reported error, or transport
// exception. The Of factory is the only place a raised error becomes data;
// everything downstream branches on the active variant instead of using
// try/catch-style flow.
//
// Highlights:
//   - Classify/StatusCode: total classification of raw status codes
//   - Of/Success/Error/Exception: construct Result[T] from a call outcome
//   - SuccessRange: explicit success-code window (default 200-299)
//   - Merge: fold several list-payload results under a MergePolicy
//   - SuccessMapper/ErrorMapper/Operator: capability interfaces consumed by
//     the combinator packages (solo, mass, chain)
package rest
