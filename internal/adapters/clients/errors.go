// Package clients provides the instrumented HTTP client used to reach
// downstream services.
package clients

import "errors"

// Transport-level failures. Callers translate these into domain errors.
var (
	// ErrCircuitOpen is returned without calling out while the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps a network error or timeout.
	ErrRequestFailed = errors.New("request failed")
)
