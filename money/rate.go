package money

import "fmt"

// ExchangeRate expresses how many units of Quote one unit of Base converts
// to: Rate must be strictly positive. A "transfer" rate — Base == Quote —
// is always 1:1 regardless of the stored Rate value (spec.md §3).
type ExchangeRate struct {
	Base  string
	Quote string
	Rate  Decimal
}

// NewExchangeRate validates both currency symbols and that rate > 0 (unless
// base == quote, a transfer pair, which is always treated as 1:1).
func NewExchangeRate(base, quote string, rate Decimal) (ExchangeRate, error) {
	if err := ValidateCurrency(base); err != nil {
		return ExchangeRate{}, err
	}
	if err := ValidateCurrency(quote); err != nil {
		return ExchangeRate{}, err
	}
	if base == quote {
		one, _ := NewDecimalFromInt(1, rate.Scale())

		return ExchangeRate{Base: base, Quote: quote, Rate: one}, nil
	}
	if rate.Sign() <= 0 {
		return ExchangeRate{}, fmt.Errorf("%w: rate must be positive", ErrInvalidInput)
	}

	return ExchangeRate{Base: base, Quote: quote, Rate: rate}, nil
}

// IsTransfer reports whether this is a same-asset (1:1) transfer pair.
func (r ExchangeRate) IsTransfer() bool { return r.Base == r.Quote }

// Invert swaps Base/Quote and sets Rate = 1/Rate rounded HALF_UP at the
// same scale. Transfer pairs invert to themselves.
//
// Round-trip property (spec.md §8): r.Invert().Invert() equals r within one
// unit of rounding error at r.Rate's scale.
func (r ExchangeRate) Invert() (ExchangeRate, error) {
	if r.IsTransfer() {
		return r, nil
	}
	scale := r.Rate.Scale()
	one, err := NewDecimalFromInt(1, scale)
	if err != nil {
		return ExchangeRate{}, err
	}
	inv, err := one.DivRound(r.Rate, scale)
	if err != nil {
		return ExchangeRate{}, err
	}

	return ExchangeRate{Base: r.Quote, Quote: r.Base, Rate: inv}, nil
}

// Apply converts an amount denominated in Base into Quote: result =
// amount * Rate, rounded HALF_UP to scale = max(amount.Scale(), Rate.Scale()).
func (r ExchangeRate) Apply(amount Decimal) (Decimal, error) {
	scale := maxScale(amount.Scale(), r.Rate.Scale())

	return amount.MulRound(r.Rate, scale)
}
