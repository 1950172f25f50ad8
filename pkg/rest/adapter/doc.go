// Package adapter bridges a JSON-over-HTTP API to rest.Result values.
// Call is the synchronous form; Go is the completion-handler form. Both feed
// the raw call outcome through the rest.Of factory, so the classification
// rule (success range, error, exception) lives in one place.
package adapter
