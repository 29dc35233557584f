package orderbook

import "errors"

// Sentinel errors returned by the orderbook package.
var (
	// ErrInvalidInput indicates a malformed AssetPair or OrderBounds, an
	// Order whose pair, bounds and rate disagree (or whose pair is a
	// transfer pair), or an amount in the wrong currency. Side and fee
	// policy values are not validated.
	ErrInvalidInput = errors.New("orderbook: invalid input")

	// ErrBoundsViolated indicates min > max in an OrderBounds.
	ErrBoundsViolated = errors.New("orderbook: bounds violated (min > max)")
)
