package money

import "errors"

// Sentinel errors returned by the money package. Callers should branch
// with errors.Is; all wrapping at call sites uses fmt.Errorf("%w: ...").
var (
	// ErrInvalidInput indicates a malformed value: non-numeric text, a
	// negative scale, a scale above MaxScale (which also matches
	// ErrScaleExceeded), a non-positive exchange rate, or a malformed
	// currency symbol. A currency mismatch between two Money operands is
	// reported as ErrCurrencyMismatch instead.
	ErrInvalidInput = errors.New("money: invalid input")

	// ErrDivisionByZero indicates an attempted division by a zero Decimal.
	ErrDivisionByZero = errors.New("money: division by zero")

	// ErrScaleExceeded indicates a requested scale above MaxScale (50).
	ErrScaleExceeded = errors.New("money: scale exceeds maximum of 50")

	// ErrCurrencyMismatch indicates an arithmetic operation (Add/Sub/Compare)
	// was attempted between two Money values of different currencies.
	ErrCurrencyMismatch = errors.New("money: currency mismatch")
)
