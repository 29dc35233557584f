package pathresult

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/pathgraph"
	"github.com/katalvlaran/orderpath/search"
)

// Materialise walks candidate's edges from source forward, spending
// exactly spendAmount (denominated in the source currency), and produces
// the fully-costed PathResult spec.md §4.9 describes:
//
//  1. for leg i, EvalFillAtSpend recomputes the order's exact, fee-aware
//     spent/received amounts for the propagated spend;
//  2. the chain rule carries S_{i+1} = received_i forward;
//  3. totalSpent/totalReceived are the first leg's spend and the last
//     leg's receipt;
//  4. fees aggregate into a MoneyMap keyed by currency, sorted on read;
//  5. residualTolerance is tolerance minus whatever fraction of the
//     tolerance budget this candidate's cost already consumed relative
//     to the best-known cost at the moment it was accepted.
//
// A spend that falls outside an edge's fillable bounds is not a fatal
// error: it means this particular candidate path is not realisable at
// spendAmount, and Materialise returns ErrNoCandidate so the caller can
// skip it (spec.md §4.9 "Error conditions").
func Materialise(candidate search.CandidatePath, spendAmount money.Money, tolerance money.Decimal) (PathResult, error) {
	if len(candidate.PathEdges) == 0 {
		return PathResult{}, fmt.Errorf("%w: candidate has no edges", ErrInvalidInput)
	}

	legs := make([]PathLeg, 0, len(candidate.PathEdges))
	fees := MoneyMap{}
	current := spendAmount

	for _, edge := range candidate.PathEdges {
		if current.Amount.Sign() < 0 {
			return PathResult{}, fmt.Errorf("%w: negative spend %s entering %s", ErrInvalidInput, current, edge.From)
		}

		spent, received, breakdown, err := pathgraph.EvalFillAtSpend(edge, current)
		if err != nil {
			switch {
			case errors.Is(err, pathgraph.ErrInvalidInput):
				return PathResult{}, fmt.Errorf("%w: %v", ErrNoCandidate, err)
			case errors.Is(err, pathgraph.ErrUnknownCurrency):
				return PathResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			default:
				return PathResult{}, fmt.Errorf("%w: %v", ErrPrecision, err)
			}
		}

		legFees := MoneyMap{}
		if breakdown.BaseFee != nil {
			legFees, err = legFees.Add(*breakdown.BaseFee)
			if err != nil {
				return PathResult{}, fmt.Errorf("%w: %v", ErrPrecision, err)
			}
		}
		if breakdown.QuoteFee != nil {
			legFees, err = legFees.Add(*breakdown.QuoteFee)
			if err != nil {
				return PathResult{}, fmt.Errorf("%w: %v", ErrPrecision, err)
			}
		}

		fees, err = fees.Merge(legFees)
		if err != nil {
			return PathResult{}, fmt.Errorf("%w: %v", ErrPrecision, err)
		}

		legs = append(legs, PathLeg{
			From:     edge.From,
			To:       edge.To,
			Spent:    spent,
			Received: received,
			Fees:     legFees,
			Order:    edge.Order,
		})

		current = received
	}

	totalSpent := legs[0].Spent
	totalReceived := legs[len(legs)-1].Received
	if err := validateChain(legs, totalSpent, totalReceived); err != nil {
		return PathResult{}, err
	}

	residual, err := residualTolerance(candidate, tolerance)
	if err != nil {
		return PathResult{}, fmt.Errorf("%w: %v", ErrPrecision, err)
	}

	return PathResult{
		TotalSpent:        totalSpent,
		TotalReceived:     totalReceived,
		ResidualTolerance: residual,
		FeeBreakdown:      fees,
		Legs:              legs,
		Cost:              candidate.Cost.Decimal(),
		Hops:              candidate.Hops,
		RouteSignature:    string(candidate.RouteSignature()),
		InsertionOrder:    candidate.InsertionOrder,
	}, nil
}

// residualTolerance computes the remainder of the tolerance budget after
// accepting candidate: tolerance minus (cost - best) / best, where best
// is the best-known cost at the moment it was accepted, clamped to
// [0, tolerance] (spec.md §4.9 step 5, an implementation-defined quantity
// per spec.md's own note). With no prior best, or a zero best, the full
// tolerance is returned.
func residualTolerance(candidate search.CandidatePath, tolerance money.Decimal) (money.Decimal, error) {
	scale := search.CostScale

	if candidate.BestCostAtAcceptance == nil {
		// This candidate set the best-known cost itself: no budget spent.
		return tolerance.Rescale(scale)
	}

	best := candidate.BestCostAtAcceptance.Decimal()
	if best.IsZero() {
		return tolerance.Rescale(scale)
	}

	diff := candidate.Cost.Decimal().Sub(best)
	consumed, err := diff.DivRound(best, scale)
	if err != nil {
		return money.Decimal{}, err
	}
	if consumed.Sign() < 0 {
		zero, zerr := money.Zero(scale)
		if zerr != nil {
			return money.Decimal{}, zerr
		}
		consumed = zero
	}

	toleranceAtScale, err := tolerance.Rescale(scale)
	if err != nil {
		return money.Decimal{}, err
	}
	residual := toleranceAtScale.Sub(consumed)
	if residual.Sign() < 0 {
		return money.Zero(scale)
	}

	return residual, nil
}
