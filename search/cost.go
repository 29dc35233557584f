package search

import (
	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/pathgraph"
)

// edgeCostContribution computes the additive amount an edge adds to a
// path's PathCost: the deviation of the edge's fee-inclusive
// spend-to-receive ratio (at its capacity ceiling) from parity, i.e.
// spendMax/receiveMax - 1. A favorable edge (net gain after fees)
// contributes a negative amount; an edge that costs more to cross than
// it returns contributes a positive one. See DESIGN.md for why this,
// rather than a strictly non-negative per-hop toll, is the model that
// reproduces "a cheaper multi-hop route outranks a pricier direct one".
func edgeCostContribution(edge *pathgraph.GraphEdge) (money.Decimal, error) {
	spend := edge.SpendMeasure().Max
	receive := edge.ReceiveMeasure().Max

	if receive.Amount.IsZero() {
		return money.Decimal{}, money.ErrDivisionByZero
	}

	ratio, err := spend.Amount.DivRound(receive.Amount, CostScale)
	if err != nil {
		return money.Decimal{}, err
	}

	one, err := money.NewDecimalFromInt(1, CostScale)
	if err != nil {
		return money.Decimal{}, err
	}

	return ratio.Sub(one), nil
}
