package pathresult

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
)

// MoneyMap aggregates Money amounts keyed by currency. It is the fee
// aggregation structure spec.md §3/§4.9 describes: "fees aggregate by
// currency deterministically (sorted keys)". The zero value is an empty,
// usable map.
type MoneyMap map[string]money.Money

// Add merges amount into m, summing with any existing entry for
// amount.Currency at the higher of the two scales (spec.md §4.9 step 4).
// Add never mutates its receiver's backing map in place when called on a
// nil MoneyMap; callers should always use the returned value, exactly
// like the idiom the teacher uses for its own accumulator helpers.
func (m MoneyMap) Add(amount money.Money) (MoneyMap, error) {
	out := m
	if out == nil {
		out = make(MoneyMap)
	}
	existing, ok := out[amount.Currency]
	if !ok {
		out[amount.Currency] = amount

		return out, nil
	}
	sum, err := existing.Add(amount)
	if err != nil {
		return nil, err
	}
	out[amount.Currency] = sum

	return out, nil
}

// Merge folds other into m, currency by currency, returning the combined
// map. Merging with an empty (or nil) MoneyMap is idempotent: it yields a
// map with the same entries as m (spec.md §8 "Fee aggregation idempotence").
func (m MoneyMap) Merge(other MoneyMap) (MoneyMap, error) {
	out := m
	var err error
	keys := make([]string, 0, len(other))
	for k := range other {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out, err = out.Add(other[k])
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SortedCurrencies returns m's currency keys in ascending order.
func (m MoneyMap) SortedCurrencies() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// MarshalJSON renders the map as an object with currency keys emitted in
// ascending order, matching spec.md §6's serialised-form contract
// ("keys sorted ascending").
func (m MoneyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.SortedCurrencies() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valBytes, err := json.Marshal(m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		buf.Write(valBytes)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON parses a currency->Money object back into a MoneyMap.
func (m *MoneyMap) UnmarshalJSON(data []byte) error {
	raw := make(map[string]money.Money)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = raw

	return nil
}

// PathLeg is one hop of a materialised path: the amount spent in the
// leg's From currency, the amount received in its To currency (net of
// any fees already applied), the fee breakdown charged on this hop, and
// the order that produced the underlying edge (spec.md §3).
type PathLeg struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Spent    money.Money     `json:"spent"`
	Received money.Money     `json:"received"`
	Fees     MoneyMap        `json:"fees"`
	Order    orderbook.Order `json:"-"`
}

// PathResult is a fully-costed, accepted conversion path: the materialised
// form of a search.CandidatePath (spec.md §3, §4.9).
type PathResult struct {
	TotalSpent        money.Money   `json:"totalSpent"`
	TotalReceived     money.Money   `json:"totalReceived"`
	ResidualTolerance money.Decimal `json:"residualTolerance"`
	FeeBreakdown      MoneyMap      `json:"feeBreakdown"`
	Legs              []PathLeg     `json:"legs"`

	// Cost, Hops, RouteSignature and InsertionOrder are carried from the
	// originating CandidatePath so the top-K collector can order and
	// re-order results without holding a reference back into package
	// search's internal state.
	Cost           money.Decimal `json:"-"`
	Hops           int           `json:"-"`
	RouteSignature string        `json:"-"`
	InsertionOrder int           `json:"-"`
}

// validateChain checks the invariant spec.md §3 states for PathResult:
// totalSpent equals the first leg's spent amount and totalReceived
// equals the last leg's received amount.
func validateChain(legs []PathLeg, totalSpent, totalReceived money.Money) error {
	if len(legs) == 0 {
		return fmt.Errorf("%w: no legs", ErrInvalidInput)
	}
	if cmp, err := legs[0].Spent.Compare(totalSpent); err != nil || cmp != 0 {
		return fmt.Errorf("%w: totalSpent does not match first leg", ErrInvalidInput)
	}
	last := legs[len(legs)-1]
	if cmp, err := last.Received.Compare(totalReceived); err != nil || cmp != 0 {
		return fmt.Errorf("%w: totalReceived does not match last leg", ErrInvalidInput)
	}

	return nil
}
