package orderbook

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
)

// Side indicates which way value moves across an Order: BUY means the
// taker spends the pair's Base currency and receives Quote; SELL is the
// opposite (spec.md §3).
type Side int

const (
	// BUY: taker spends Base, receives Quote.
	BUY Side = iota
	// SELL: taker spends Quote, receives Base.
	SELL
)

// String renders the Side as "BUY" or "SELL".
func (s Side) String() string {
	if s == SELL {
		return "SELL"
	}

	return "BUY"
}

// AssetPair is a (base, quote) currency pair. A pair is valid for
// conversion when Base != Quote; otherwise it is a transfer pair.
type AssetPair struct {
	Base  string
	Quote string
}

// NewAssetPair validates both currency symbols.
func NewAssetPair(base, quote string) (AssetPair, error) {
	if err := money.ValidateCurrency(base); err != nil {
		return AssetPair{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := money.ValidateCurrency(quote); err != nil {
		return AssetPair{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return AssetPair{Base: base, Quote: quote}, nil
}

// IsTransfer reports whether Base == Quote.
func (p AssetPair) IsTransfer() bool { return p.Base == p.Quote }

// OrderBounds is a [Min, Max] fill-amount interval denominated in the
// pair's base currency. Invariant: 0 <= Min <= Max.
type OrderBounds struct {
	Min money.Money
	Max money.Money
}

// NewOrderBounds validates 0 <= min <= max and that both share a currency.
func NewOrderBounds(min, max money.Money) (OrderBounds, error) {
	if min.Currency != max.Currency {
		return OrderBounds{}, fmt.Errorf("%w: %s vs %s", ErrInvalidInput, min.Currency, max.Currency)
	}
	if min.Amount.Sign() < 0 {
		return OrderBounds{}, fmt.Errorf("%w: negative min", ErrInvalidInput)
	}
	cmp, err := min.Compare(max)
	if err != nil {
		return OrderBounds{}, err
	}
	if cmp > 0 {
		return OrderBounds{}, ErrBoundsViolated
	}

	return OrderBounds{Min: min, Max: max}, nil
}

// Contains reports whether amount lies within [Min, Max] (inclusive).
func (b OrderBounds) Contains(amount money.Money) (bool, error) {
	lo, err := amount.Compare(b.Min)
	if err != nil {
		return false, err
	}
	hi, err := amount.Compare(b.Max)
	if err != nil {
		return false, err
	}

	return lo >= 0 && hi <= 0, nil
}

// FeeBreakdown is the result of applying a FeePolicy: an optional fee
// charged in the base currency and/or an optional fee charged in the
// quote currency.
type FeeBreakdown struct {
	BaseFee  *money.Money
	QuoteFee *money.Money
}

// FeePolicy is a capability that computes a FeeBreakdown for a fill and
// exposes a deterministic, non-empty, <=255 char Fingerprint that is
// stable for equal configurations (spec.md §3).
type FeePolicy interface {
	// Calculate returns the FeeBreakdown for filling baseAmount/quoteAmount
	// on the given side.
	Calculate(side Side, baseAmount, quoteAmount money.Money) (FeeBreakdown, error)

	// Fingerprint returns a short, deterministic, unique-per-configuration
	// identifier for this policy.
	Fingerprint() string
}

// Order is a directed offer between two assets with bounded fill amounts,
// an effective exchange rate, and an optional fee policy.
type Order struct {
	Side          Side
	Pair          AssetPair
	Bounds        OrderBounds
	EffectiveRate money.ExchangeRate
	Fee           FeePolicy // may be nil
}

// NewOrder validates pair/bounds/rate consistency and constructs an Order.
func NewOrder(side Side, pair AssetPair, bounds OrderBounds, rate money.ExchangeRate, fee FeePolicy) (Order, error) {
	if pair.IsTransfer() {
		return Order{}, fmt.Errorf("%w: order pair must not be a transfer pair", ErrInvalidInput)
	}
	if bounds.Min.Currency != pair.Base {
		return Order{}, fmt.Errorf("%w: bounds currency %s does not match pair base %s", ErrInvalidInput, bounds.Min.Currency, pair.Base)
	}
	if rate.Base != pair.Base || rate.Quote != pair.Quote {
		return Order{}, fmt.Errorf("%w: rate %s/%s does not match pair %s/%s", ErrInvalidInput, rate.Base, rate.Quote, pair.Base, pair.Quote)
	}

	return Order{Side: side, Pair: pair, Bounds: bounds, EffectiveRate: rate, Fee: fee}, nil
}

// FromTo returns the (from, to) currency pair a taker of this Order moves
// value across, according to Side: BUY spends Base/receives Quote; SELL
// spends Quote/receives Base (spec.md §4.3).
func (o Order) FromTo() (from, to string) {
	if o.Side == BUY {
		return o.Pair.Base, o.Pair.Quote
	}

	return o.Pair.Quote, o.Pair.Base
}

// ValidatePartialFill reports whether amount (denominated in the base
// currency) lies within [Bounds.Min, Bounds.Max].
func (o Order) ValidatePartialFill(amount money.Money) (bool, error) {
	return o.Bounds.Contains(amount)
}

// CalculateQuoteAmount returns the raw quote = baseAmount * rate, taken at
// scale = max(baseAmount.scale, rate.scale), HALF_UP (spec.md §4.2). This
// is the price-only conversion; fee application is a separate step
// performed by the Fee policy and by pathgraph's capacity computation.
func (o Order) CalculateQuoteAmount(baseAmount money.Money) (money.Money, error) {
	if baseAmount.Currency != o.Pair.Base {
		return money.Money{}, fmt.Errorf("%w: amount currency %s does not match base %s", ErrInvalidInput, baseAmount.Currency, o.Pair.Base)
	}
	quoteAmt, err := o.EffectiveRate.Apply(baseAmount.Amount)
	if err != nil {
		return money.Money{}, err
	}

	return money.Money{Currency: o.Pair.Quote, Amount: quoteAmt}, nil
}
