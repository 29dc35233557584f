package pathgraph

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
)

// SpendConstraints bounds the amount of a single currency a search path
// is still permitted to move through the current node. It is carried
// forward hop by hop: ProjectRange turns a constraint denominated in an
// edge's From currency into its image in the edge's To currency, so the
// engine can keep pruning on capacity without re-deriving the original
// request's bounds at every hop (spec.md §4.5, §9 design note).
//
// ProjectRange is a fast, rate-only approximation: it ignores fees when
// mapping the surviving spend range forward. Exact, fee-aware amounts
// for an accepted path are computed once, after search, by pathresult's
// materializer — SpendConstraints exists purely to prune the search
// frontier, not to produce the amounts a caller sees.
type SpendConstraints struct {
	Currency string
	Min      money.Money
	Max      money.Money
	// Desired is an optional target spend amount; if present, it must lie
	// within [Min, Max] after rescaling to Min/Max's shared scale.
	Desired *money.Money
}

// NewSpendConstraints validates that Min <= Max, both share Currency,
// and (if present) Desired lies within [Min, Max].
func NewSpendConstraints(currency string, min, max money.Money, desired *money.Money) (SpendConstraints, error) {
	if min.Currency != currency || max.Currency != currency {
		return SpendConstraints{}, fmt.Errorf("%w: constraint currency mismatch", ErrInvalidInput)
	}
	cmp, err := min.Compare(max)
	if err != nil {
		return SpendConstraints{}, err
	}
	if cmp > 0 {
		return SpendConstraints{}, fmt.Errorf("%w: min exceeds max", ErrInvalidInput)
	}
	if desired != nil {
		if desired.Currency != currency {
			return SpendConstraints{}, fmt.Errorf("%w: desired currency mismatch", ErrInvalidInput)
		}
		loCmp, err := desired.Compare(min)
		if err != nil {
			return SpendConstraints{}, err
		}
		hiCmp, err := desired.Compare(max)
		if err != nil {
			return SpendConstraints{}, err
		}
		if loCmp < 0 || hiCmp > 0 {
			return SpendConstraints{}, fmt.Errorf("%w: desired amount outside [min, max]", ErrInvalidInput)
		}
	}

	return SpendConstraints{Currency: currency, Min: min, Max: max, Desired: desired}, nil
}

// IsEmpty reports whether the constraint forbids any spend at all, i.e.
// Min > Max. NewSpendConstraints never builds such a value; ProjectRange
// returns one (Min = 1, Max = 0) when an intersection fails.
func (sc SpendConstraints) IsEmpty() (bool, error) {
	cmp, err := sc.Min.Compare(sc.Max)
	if err != nil {
		return false, err
	}

	return cmp > 0, nil
}

// ProjectRange intersects sc with edge's capacity (measured in edge.From,
// sc.Currency's units), then maps the surviving interval forward into
// edge.To via the edge's effective rate, returning the new constraint a
// search state should carry into edge.To.
func (sc SpendConstraints) ProjectRange(edge *GraphEdge) (SpendConstraints, error) {
	if sc.Currency != edge.From {
		return SpendConstraints{}, fmt.Errorf("%w: constraint is in %s, edge leaves from %s", ErrUnknownCurrency, sc.Currency, edge.From)
	}

	spendCap := edge.SpendMeasure()

	loCmp, err := sc.Min.Compare(spendCap.Min)
	if err != nil {
		return SpendConstraints{}, err
	}
	lo := sc.Min
	if loCmp < 0 {
		lo = spendCap.Min
	}

	hiCmp, err := sc.Max.Compare(spendCap.Max)
	if err != nil {
		return SpendConstraints{}, err
	}
	hi := sc.Max
	if hiCmp > 0 {
		hi = spendCap.Max
	}

	orderCmp, err := lo.Compare(hi)
	if err != nil {
		return SpendConstraints{}, err
	}
	if orderCmp > 0 {
		// No overlap: the edge cannot carry any amount sc would permit.
		recvScale := edge.ReceiveMeasure().Min.Amount.Scale()
		zero, zerr := money.Zero(recvScale)
		if zerr != nil {
			return SpendConstraints{}, zerr
		}
		one, oerr := money.NewDecimalFromInt(1, recvScale)
		if oerr != nil {
			return SpendConstraints{}, oerr
		}

		return SpendConstraints{
			Currency: edge.To,
			Min:      money.Money{Currency: edge.To, Amount: one},
			Max:      money.Money{Currency: edge.To, Amount: zero},
		}, nil
	}

	rate := edge.Order.EffectiveRate
	if edge.Side == orderbook.SELL {
		rate, err = rate.Invert()
		if err != nil {
			return SpendConstraints{}, err
		}
	}

	newLo, err := rate.Apply(lo.Amount)
	if err != nil {
		return SpendConstraints{}, err
	}
	newHi, err := rate.Apply(hi.Amount)
	if err != nil {
		return SpendConstraints{}, err
	}

	var newDesired *money.Money
	if sc.Desired != nil {
		desiredCmpLo, err := sc.Desired.Compare(lo)
		if err != nil {
			return SpendConstraints{}, err
		}
		desiredCmpHi, err := sc.Desired.Compare(hi)
		if err != nil {
			return SpendConstraints{}, err
		}
		if desiredCmpLo >= 0 && desiredCmpHi <= 0 {
			d, err := rate.Apply(sc.Desired.Amount)
			if err != nil {
				return SpendConstraints{}, err
			}
			m := money.Money{Currency: edge.To, Amount: d}
			newDesired = &m
		}
	}

	return SpendConstraints{
		Currency: edge.To,
		Min:      money.Money{Currency: edge.To, Amount: newLo},
		Max:      money.Money{Currency: edge.To, Amount: newHi},
		Desired:  newDesired,
	}, nil
}
