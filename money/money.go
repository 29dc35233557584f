package money

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// currencyPattern matches spec.md §3's AssetPair/Money currency grammar:
// an uppercase symbol of 3 to 12 letters.
var currencyPattern = regexp.MustCompile(`^[A-Z]{3,12}$`)

// ValidateCurrency reports whether sym matches the currency symbol grammar
// [A-Z]{3,12}.
func ValidateCurrency(sym string) error {
	if !currencyPattern.MatchString(sym) {
		return fmt.Errorf("%w: currency %q must match [A-Z]{3,12}", ErrInvalidInput, sym)
	}

	return nil
}

// Money is a Decimal tagged with a currency symbol. All arithmetic
// requires the two operands share a currency; a scale mismatch is
// resolved by rescaling the lower-scale side HALF_UP to the higher scale
// before the operation (spec.md §4.1).
type Money struct {
	Currency string
	Amount   Decimal
}

// NewMoney validates currency and builds a Money from a numeric string at
// the given scale.
func NewMoney(currency, amount string, scale int32) (Money, error) {
	if err := ValidateCurrency(currency); err != nil {
		return Money{}, err
	}
	amt, err := NewDecimal(amount, scale)
	if err != nil {
		return Money{}, err
	}

	return Money{Currency: currency, Amount: amt}, nil
}

// MustMoney is NewMoney but panics on error; intended for test fixtures
// and example programs, never for engine code on a live input path.
func MustMoney(currency, amount string, scale int32) Money {
	m, err := NewMoney(currency, amount, scale)
	if err != nil {
		panic(err)
	}

	return m
}

// align rescales the lower-scale operand up to the higher scale, HALF_UP,
// and returns both amounts at the common scale. Exported arithmetic below
// uses this to satisfy spec.md §4.1's rescale-before-op rule.
func align(a, b Decimal) (Decimal, Decimal, int32) {
	scale := maxScale(a.scale, b.scale)
	if a.scale != scale {
		a, _ = a.Rescale(scale) // scale <= MaxScale already guaranteed by both operands
	}
	if b.scale != scale {
		b, _ = b.Rescale(scale)
	}

	return a, b, scale
}

func (m Money) requireSameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return nil
}

// Add returns m + other. Requires matching currencies.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	a, b, _ := align(m.Amount, other.Amount)

	return Money{Currency: m.Currency, Amount: a.Add(b)}, nil
}

// Sub returns m - other. Requires matching currencies.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	a, b, _ := align(m.Amount, other.Amount)

	return Money{Currency: m.Currency, Amount: a.Sub(b)}, nil
}

// Compare returns -1, 0, 1 comparing m and other's amounts. Requires
// matching currencies.
func (m Money) Compare(other Money) (int, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return 0, err
	}
	a, b, scale := align(m.Amount, other.Amount)

	return a.Compare(b, scale)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.Amount.IsZero() }

// String renders "<amount> <currency>", e.g. "92.000000 EUR".
func (m Money) String() string { return m.Amount.String() + " " + m.Currency }

// jsonMoney is the wire shape from spec.md §6:
// { "currency": STR, "amount": NUMERIC_STR, "scale": int }.
type jsonMoney struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Scale    int32  `json:"scale"`
}

// MarshalJSON renders Money per spec.md §6's serialised PathResult contract.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{Currency: m.Currency, Amount: m.Amount.String(), Scale: m.Amount.Scale()})
}

// UnmarshalJSON parses the {currency, amount, scale} shape back into Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	var jm jsonMoney
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}
	if err := ValidateCurrency(jm.Currency); err != nil {
		return err
	}
	amt, err := NewDecimal(jm.Amount, jm.Scale)
	if err != nil {
		return err
	}
	m.Currency = jm.Currency
	m.Amount = amt

	return nil
}
