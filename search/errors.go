package search

import "errors"

var (
	// ErrInvalidInput flags bad engine configuration or a malformed
	// signature segment.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrPrecision is returned when a decimal operation required to
	// compute an edge's cost contribution fails irrecoverably (scale
	// exceeded, arithmetic backend unavailable). Per the error-handling
	// policy, this propagates; it is never swallowed as a pruning signal.
	ErrPrecision = errors.New("search: precision violation")
)
