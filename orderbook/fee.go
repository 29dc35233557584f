package orderbook

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
)

// NoFee is the zero-cost FeePolicy: it returns an empty FeeBreakdown for
// every fill. Its Fingerprint is the constant "none".
type NoFee struct{}

// Calculate implements FeePolicy; always returns an empty breakdown.
func (NoFee) Calculate(_ Side, _, _ money.Money) (FeeBreakdown, error) {
	return FeeBreakdown{}, nil
}

// Fingerprint implements FeePolicy.
func (NoFee) Fingerprint() string { return "none" }

// PercentageFee charges a fixed percentage of the base and/or quote fill
// amount, rounded HALF_UP at the charged currency's scale. A zero-value
// rate for a given side omits that fee entirely (the breakdown field is
// left nil rather than a zero Money), matching spec.md §3's "optional
// baseFee, optional quoteFee".
type PercentageFee struct {
	// BaseRate is the fee rate applied to the base-currency amount, e.g.
	// 0.001 for 10 bps. Nil means no base-denominated fee.
	BaseRate *money.Decimal
	// QuoteRate is the fee rate applied to the quote-currency amount. Nil
	// means no quote-denominated fee.
	QuoteRate *money.Decimal
}

// Calculate implements FeePolicy.
func (f PercentageFee) Calculate(_ Side, baseAmount, quoteAmount money.Money) (FeeBreakdown, error) {
	var out FeeBreakdown
	if f.BaseRate != nil {
		fee, err := baseAmount.Amount.MulRound(*f.BaseRate, baseAmount.Amount.Scale())
		if err != nil {
			return FeeBreakdown{}, err
		}
		m := money.Money{Currency: baseAmount.Currency, Amount: fee}
		out.BaseFee = &m
	}
	if f.QuoteRate != nil {
		fee, err := quoteAmount.Amount.MulRound(*f.QuoteRate, quoteAmount.Amount.Scale())
		if err != nil {
			return FeeBreakdown{}, err
		}
		m := money.Money{Currency: quoteAmount.Currency, Amount: fee}
		out.QuoteFee = &m
	}

	return out, nil
}

// Fingerprint returns a deterministic string unique to this rate pair,
// e.g. "pct:base=0.0010:quote=-" (dash marks an absent side).
func (f PercentageFee) Fingerprint() string {
	base := "-"
	if f.BaseRate != nil {
		base = f.BaseRate.String()
	}
	quote := "-"
	if f.QuoteRate != nil {
		quote = f.QuoteRate.String()
	}

	return fmt.Sprintf("pct:base=%s:quote=%s", base, quote)
}

// FlatFee charges a fixed Money amount per fill, independent of fill size,
// on the base and/or quote side.
type FlatFee struct {
	BaseFlat  *money.Money
	QuoteFlat *money.Money
}

// Calculate implements FeePolicy.
func (f FlatFee) Calculate(_ Side, _, _ money.Money) (FeeBreakdown, error) {
	var out FeeBreakdown
	if f.BaseFlat != nil {
		m := *f.BaseFlat
		out.BaseFee = &m
	}
	if f.QuoteFlat != nil {
		m := *f.QuoteFlat
		out.QuoteFee = &m
	}

	return out, nil
}

// Fingerprint returns a deterministic string unique to this flat-fee pair.
func (f FlatFee) Fingerprint() string {
	base := "-"
	if f.BaseFlat != nil {
		base = f.BaseFlat.String()
	}
	quote := "-"
	if f.QuoteFlat != nil {
		quote = f.QuoteFlat.String()
	}

	return fmt.Sprintf("flat:base=%s:quote=%s", base, quote)
}
