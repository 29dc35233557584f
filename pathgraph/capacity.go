package pathgraph

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
)

// EvalFill evaluates an order's fill at a single raw base-amount point,
// returning the three measures a GraphEdge (or one of its segments)
// stores: the raw base amount itself, the base-currency taker-facing
// quantity (gross spend for BUY, net receipt for SELL), the
// quote-currency taker-facing quantity (net receipt for BUY, gross
// spend for SELL), and the FeeBreakdown actually charged at this point.
// See spec.md §4.3. Exported so pathresult's materialiser can recompute
// exact, fee-aware leg amounts once a candidate path has been accepted.
func EvalFill(order orderbook.Order, baseAmount money.Money) (base, grossBase, quote money.Money, fees orderbook.FeeBreakdown, err error) {
	rawQuote, err := order.CalculateQuoteAmount(baseAmount)
	if err != nil {
		return money.Money{}, money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, err
	}

	var breakdown orderbook.FeeBreakdown
	if order.Fee != nil {
		breakdown, err = order.Fee.Calculate(order.Side, baseAmount, rawQuote)
		if err != nil {
			return money.Money{}, money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, err
		}
	}

	baseFee := breakdown.BaseFee
	quoteFee := breakdown.QuoteFee

	switch order.Side {
	case orderbook.BUY:
		gross := baseAmount
		if baseFee != nil {
			gross = money.Money{Currency: baseAmount.Currency, Amount: baseAmount.Amount.Add(baseFee.Amount)}
		}
		net := rawQuote
		if quoteFee != nil {
			net = money.Money{Currency: rawQuote.Currency, Amount: rawQuote.Amount.Sub(quoteFee.Amount)}
		}

		return baseAmount, gross, net, breakdown, nil

	default: // SELL
		gross := rawQuote
		if quoteFee != nil {
			gross = money.Money{Currency: rawQuote.Currency, Amount: rawQuote.Amount.Add(quoteFee.Amount)}
		}
		net := baseAmount
		if baseFee != nil {
			net = money.Money{Currency: baseAmount.Currency, Amount: baseAmount.Amount.Sub(baseFee.Amount)}
		}

		return baseAmount, net, gross, breakdown, nil
	}
}

// evalEdgeAt is EvalFill without the fee breakdown, kept for call sites
// inside this package that only need the three measures.
func evalEdgeAt(order orderbook.Order, baseAmount money.Money) (base, grossBase, quote money.Money, err error) {
	base, grossBase, quote, _, err = EvalFill(order, baseAmount)

	return base, grossBase, quote, err
}

// EvalFillAtSpend evaluates edge for a taker who spends exactly spend (in
// edge.From currency), approximating the base-amount inversion via the
// order's effective rate (ignoring fee feedback on the inversion step,
// consistent with SpendConstraints.ProjectRange's rate-only approximation)
// and then recomputing exact fee-aware spent/received amounts forward
// from that base amount via EvalFill. baseAmount is not clamped: if it
// falls outside the order's [Bounds.Min, Bounds.Max], ErrInvalidInput is
// returned, which callers treat as "no candidate for this fill". A spend
// in a currency other than edge.From returns ErrUnknownCurrency.
func EvalFillAtSpend(edge *GraphEdge, spend money.Money) (spent, received money.Money, fees orderbook.FeeBreakdown, err error) {
	if spend.Currency != edge.From {
		return money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, fmt.Errorf("%w: spend currency %s does not match edge.From %s", ErrUnknownCurrency, spend.Currency, edge.From)
	}

	order := edge.Order
	var baseAmount money.Money
	if edge.Side == orderbook.BUY {
		baseAmount = money.Money{Currency: order.Pair.Base, Amount: spend.Amount}
	} else {
		inv, invErr := order.EffectiveRate.Invert()
		if invErr != nil {
			return money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, invErr
		}
		baseAmt, applyErr := inv.Apply(spend.Amount)
		if applyErr != nil {
			return money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, applyErr
		}
		baseAmount = money.Money{Currency: order.Pair.Base, Amount: baseAmt}
	}

	within, boundsErr := order.Bounds.Contains(baseAmount)
	if boundsErr != nil {
		return money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, boundsErr
	}
	if !within {
		return money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, fmt.Errorf("%w: fill of %s falls outside order bounds [%s, %s]", ErrInvalidInput, baseAmount, order.Bounds.Min, order.Bounds.Max)
	}

	_, grossBase, quote, breakdown, err := EvalFill(order, baseAmount)
	if err != nil {
		return money.Money{}, money.Money{}, orderbook.FeeBreakdown{}, err
	}

	if edge.Side == orderbook.BUY {
		return grossBase, quote, breakdown, nil
	}

	return quote, grossBase, breakdown, nil
}
