// Package clients provides the instrumented HTTP client used to reach the
// quote REST API.
package clients

import "errors"

// Failures raised by the client itself rather than by the remote service.
// The acl package maps both onto domain.ErrUnavailable.
var (
	// ErrCircuitOpen means the breaker rejected the call without sending it.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
