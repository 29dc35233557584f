package pathresult

import "errors"

var (
	// ErrInvalidInput flags a malformed materialiser input: an empty
	// PathEdges list, a currency-alignment mismatch between consecutive
	// legs, or a top-K capacity below 1.
	ErrInvalidInput = errors.New("pathresult: invalid input")

	// ErrNoCandidate is returned when a spend amount falls outside an
	// edge's fillable bounds partway through materialisation — the
	// candidate path exists in the search graph but is not realisable at
	// the requested spend (spec.md §4.9 "return 'no candidate' for that
	// fill"). It is not a precision error and callers should treat it as
	// "skip this path", not as a fatal condition.
	ErrNoCandidate = errors.New("pathresult: no candidate at requested spend")

	// ErrPrecision flags an arithmetic failure encountered while costing
	// a leg (scale exceeded, division by zero in a fee or rate
	// computation). Per spec.md §7 this propagates unchanged; it is
	// never downgraded to a skip.
	ErrPrecision = errors.New("pathresult: precision violation")
)
