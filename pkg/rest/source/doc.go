// Package source adapts result-producing calls into push-based updates.
// A DataSource wraps a fetch function; registered sinks receive every
// success, while failure handling stays with each sink's own policy.
// Stream drives repeated requests over core.Pump worker lines, reporting
// triggers pending at cancellation as cancelled exceptions.
package source
