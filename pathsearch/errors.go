package pathsearch

import "errors"

var (
	// ErrInvalidInput flags a malformed SearchRequest: a blank or invalid
	// source/target currency, a non-positive topK, or a negative maxHops.
	// An empty order list is not an error (spec.md §8): it is a valid,
	// trivially empty search.
	ErrInvalidInput = errors.New("pathsearch: invalid input")

	// ErrGuardLimitExceeded is returned by PathSearch only when the
	// request opts into StrictGuards and the completed search's guard
	// report shows any breached limit (spec.md §6's optional "strict
	// mode" error kind).
	ErrGuardLimitExceeded = errors.New("pathsearch: guard limit exceeded")
)
