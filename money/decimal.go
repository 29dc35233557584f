package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxScale is the largest fractional-digit scale this package accepts
// anywhere in its API (constructors, Rescale, MulRound, DivRound).
//
// Rationale: spec.md §4.1 — "Scale > 50 fails with InvalidInput".
const MaxScale = 50

// Decimal is an arbitrary-precision signed number carrying an explicit
// scale (number of fractional digits). Two Decimal values with the same
// mathematical value but different scales are NOT equal as far as String()
// is concerned (100 at scale 2 prints "100.00"; at scale 0 it prints
// "100"), matching spec.md §3's "scale preserved across operations unless
// explicitly rescaled".
//
// The zero value of Decimal is not meaningful; use Zero(scale) or NewDecimal.
type Decimal struct {
	val   decimal.Decimal
	scale int32
}

// Zero returns the Decimal 0 at the given scale.
func Zero(scale int32) (Decimal, error) {
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}

	return Decimal{val: decimal.Zero, scale: scale}, nil
}

// NewDecimal parses s (a base-10 numeric string; no floats permitted
// anywhere upstream of this constructor) and rescales it HALF_UP to scale.
//
// Errors: ErrInvalidInput if s is not numeric or scale is negative/over
// MaxScale; a scale over MaxScale also matches ErrScaleExceeded.
func NewDecimal(s string, scale int32) (Decimal, error) {
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidInput, s)
	}

	return Decimal{val: v.Round(scale), scale: scale}, nil
}

// NewDecimalFromInt builds an integral Decimal at the given scale.
func NewDecimalFromInt(n int64, scale int32) (Decimal, error) {
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}

	return Decimal{val: decimal.NewFromInt(n).Round(scale), scale: scale}, nil
}

// MustDecimal is NewDecimal but panics on error; intended for test
// fixtures and example programs, never for engine code on a live input
// path (mirrors money.MustMoney).
func MustDecimal(s string, scale int32) Decimal {
	d, err := NewDecimal(s, scale)
	if err != nil {
		panic(err)
	}

	return d
}

func validateScale(scale int32) error {
	if scale < 0 {
		return fmt.Errorf("%w: negative scale %d", ErrInvalidInput, scale)
	}
	if scale > MaxScale {
		return fmt.Errorf("%w: %w: scale %d", ErrInvalidInput, ErrScaleExceeded, scale)
	}

	return nil
}

// Scale returns the number of fractional digits this Decimal carries.
func (d Decimal) Scale() int32 { return d.scale }

// IsZero reports whether the represented value is exactly zero.
func (d Decimal) IsZero() bool { return d.val.IsZero() }

// Sign returns -1, 0, or 1 per the represented value's sign.
func (d Decimal) Sign() int { return d.val.Sign() }

// Neg returns -d, preserving scale.
func (d Decimal) Neg() Decimal { return Decimal{val: d.val.Neg(), scale: d.scale} }

// Abs returns |d|, preserving scale.
func (d Decimal) Abs() Decimal { return Decimal{val: d.val.Abs(), scale: d.scale} }

// Rescale returns d rounded HALF_UP to the given scale. Rescaling to a
// larger scale pads with zeros (no information is lost); rescaling to a
// smaller scale rounds HALF_UP (ties round away from zero).
func (d Decimal) Rescale(scale int32) (Decimal, error) {
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}

	return Decimal{val: d.val.Round(scale), scale: scale}, nil
}

// Compare returns -1, 0, or 1 comparing d and other's represented values
// at a working scale equal to the larger of the two operand scales and
// workingScale, per spec.md §4.1. Because the backing representation is
// exact (no binary floating-point rounding), the comparison is exact for
// any requested working scale — no information is lost by "computing" at
// a coarser scale than either operand, since Decimal.Round only ever
// widens or narrows the *printed* precision, never the compared value up
// to that precision. We still honor the documented contract by rounding
// both operands to the working scale before compare, so that two values
// that differ only beyond the working scale compare as equal.
func (d Decimal) Compare(other Decimal, workingScale int32) (int, error) {
	ws := workingScale
	if d.scale > ws {
		ws = d.scale
	}
	if other.scale > ws {
		ws = other.scale
	}
	if err := validateScale(ws); err != nil {
		return 0, err
	}
	a := d.val.Round(ws)
	b := other.val.Round(ws)

	return a.Cmp(b), nil
}

// Add returns d + other at scale = max(d.scale, other.scale), HALF_UP.
func (d Decimal) Add(other Decimal) Decimal {
	scale := maxScale(d.scale, other.scale)

	return Decimal{val: d.val.Add(other.val).Round(scale), scale: scale}
}

// Sub returns d - other at scale = max(d.scale, other.scale), HALF_UP.
func (d Decimal) Sub(other Decimal) Decimal {
	scale := maxScale(d.scale, other.scale)

	return Decimal{val: d.val.Sub(other.val).Round(scale), scale: scale}
}

// MulRound returns d * other rounded HALF_UP to scale.
//
// Used by orderbook.Order.CalculateQuoteAmount: spec.md §4.2 requires the
// product to be taken "at max(baseAmount.scale, rate.scale)".
func (d Decimal) MulRound(other Decimal, scale int32) (Decimal, error) {
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}

	return Decimal{val: d.val.Mul(other.val).Round(scale), scale: scale}, nil
}

// DivRound returns d / other rounded HALF_UP to scale.
//
// Errors: ErrDivisionByZero if other is zero; ErrScaleExceeded/ErrInvalidInput
// if scale is invalid.
func (d Decimal) DivRound(other Decimal, scale int32) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}

	return Decimal{val: d.val.DivRound(other.val, scale), scale: scale}, nil
}

// String renders the Decimal with exactly Scale() fractional digits
// (trailing zeros included), never using scientific notation, and never
// as a floating-point literal — this is the sole serialisation form
// permitted by spec.md §6 ("All decimal amounts are emitted as numeric
// strings with their scale preserved").
func (d Decimal) String() string { return d.val.StringFixed(d.scale) }

// MarshalJSON renders the Decimal as a JSON string, e.g. "\"92.000000\"",
// matching spec.md §6's contract that amounts are numeric strings.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string produced by MarshalJSON. The scale is
// taken from the number of fractional digits present in the string; callers
// that need a specific scale should Rescale afterward.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not numeric", ErrInvalidInput, s)
	}
	scale := v.Exponent()
	if scale < 0 {
		scale = -scale
	} else {
		scale = 0
	}
	d.val = v
	d.scale = scale

	return nil
}

func maxScale(a, b int32) int32 {
	if a > b {
		return a
	}

	return b
}
