package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/katalvlaran/orderpath/pathgraph"
)

// AcceptancePredicate decides whether a CandidatePath should be offered
// to the result collector. Rejections still update the best-known cost
// used for tolerance pruning (spec.md §6).
type AcceptancePredicate func(CandidatePath) bool

// CandidateSink receives accepted candidates, in the order the engine
// discovers them. pathresult.Sink implements this by materialising each
// candidate and feeding it to a Collector; search itself never imports
// pathresult (spec.md §9 design note: candidate emission is an internal
// callback, not a public streaming API).
type CandidateSink interface {
	Offer(CandidatePath)
}

// Config is the best-first engine's tuning knobs (spec.md §4.8).
type Config struct {
	MaxHops int
	// Tolerance is in [0, 1]; newCost is pruned once it exceeds
	// bestCost * (1 + Tolerance).
	Tolerance money.Decimal
	Guards    GuardLimits
}

// Engine runs a best-first search over a fixed Graph.
type Engine struct {
	graph  *pathgraph.Graph
	config Config
}

// NewEngine validates config and constructs an Engine bound to graph.
func NewEngine(graph *pathgraph.Graph, config Config) (*Engine, error) {
	if config.MaxHops < 0 {
		return nil, ErrInvalidInput
	}
	if sign := config.Tolerance.Sign(); sign < 0 {
		return nil, ErrInvalidInput
	}
	one, err := money.NewDecimalFromInt(1, config.Tolerance.Scale())
	if err != nil {
		return nil, err
	}
	cmp, err := config.Tolerance.Compare(one, config.Tolerance.Scale())
	if err != nil {
		return nil, err
	}
	if cmp > 0 {
		return nil, ErrInvalidInput
	}

	return &Engine{graph: graph, config: config}, nil
}

// Run executes the bootstrap + best-first main loop described in
// spec.md §4.8, from sourceAsset to targetAsset, honoring constraints,
// predicate and feeding accepted candidates to sink.
func (e *Engine) Run(sourceAsset, targetAsset string, constraints pathgraph.SpendConstraints, predicate AcceptancePredicate, sink CandidateSink) (SearchGuardReport, error) {
	guards := NewGuards(e.config.Guards)
	registry := NewRegistry()
	pq := newNodePQ()
	insertionOrder := 0

	zeroCost, err := ZeroCost()
	if err != nil {
		return SearchGuardReport{}, err
	}
	one, err := money.NewDecimalFromInt(1, CostScale)
	if err != nil {
		return SearchGuardReport{}, err
	}

	sig, err := BuildSignature(constraints, constraints.Desired)
	if err != nil {
		return SearchGuardReport{}, err
	}

	bootstrap := SearchState{
		CurrentNode:    sourceAsset,
		Cost:           zeroCost,
		Product:        one,
		Hops:           0,
		PathEdges:      nil,
		Range:          constraints,
		Signature:      sig,
		InsertionOrder: insertionOrder,
	}

	pq.push(pqEntry{
		state: bootstrap,
		priority: priority{
			cost:           zeroCost,
			hops:           0,
			routeSignature: "",
			insertionOrder: insertionOrder,
		},
	})
	insertionOrder++

	var bestKnownCost *PathCost

	for pq.Len() > 0 && guards.CanExpand() {
		entry, ok := pq.popMin()
		if !ok {
			break
		}
		if pq.err != nil {
			return SearchGuardReport{}, pq.err
		}
		guards.RecordExpansion()
		state := entry.state

		if state.CurrentNode == targetAsset && state.Hops >= 1 {
			candidate, err := NewCandidatePath(state)
			if err != nil {
				return SearchGuardReport{}, err
			}
			priorBest := bestKnownCost
			candidate.BestCostAtAcceptance = priorBest

			observed := state.Cost
			if bestKnownCost == nil {
				bestKnownCost = &observed
			} else {
				cmp, err := observed.Compare(*bestKnownCost)
				if err != nil {
					return SearchGuardReport{}, err
				}
				if cmp < 0 {
					bestKnownCost = &observed
				}
			}
			if predicate == nil || predicate(candidate) {
				sink.Offer(candidate)
			}

			continue
		}

		if state.Hops == e.config.MaxHops {
			continue
		}

		node, ok := e.graph.Node(state.CurrentNode)
		if !ok {
			continue
		}

		for _, edge := range node.Out {
			newRange, err := state.Range.ProjectRange(edge)
			if err != nil {
				return SearchGuardReport{}, err
			}
			empty, err := newRange.IsEmpty()
			if err != nil {
				return SearchGuardReport{}, err
			}
			if empty {
				continue
			}

			contribution, err := edgeCostContribution(edge)
			if errors.Is(err, money.ErrDivisionByZero) {
				continue // zero-capacity edge: not usable, not fatal
			}
			if err != nil {
				return SearchGuardReport{}, fmt.Errorf("%w: %v", ErrPrecision, err)
			}
			newCost, err := state.Cost.Add(contribution)
			if err != nil {
				return SearchGuardReport{}, err
			}

			if bestKnownCost != nil {
				threshold, err := bestKnownCost.Decimal().MulRound(
					mustOnePlus(e.config.Tolerance), CostScale)
				if err != nil {
					return SearchGuardReport{}, err
				}
				cmp, err := newCost.Decimal().Compare(threshold, CostScale)
				if err != nil {
					return SearchGuardReport{}, err
				}
				if cmp > 0 {
					continue
				}
			}

			newProduct, err := productAfterEdge(state.Product, edge.Order.EffectiveRate.Rate, edge)
			if err != nil {
				return SearchGuardReport{}, err
			}

			newEdges := append(append([]*pathgraph.GraphEdge(nil), state.PathEdges...), edge)
			newSig, err := BuildSignature(newRange, newRange.Desired)
			if err != nil {
				return SearchGuardReport{}, err
			}

			newState := SearchState{
				CurrentNode:    edge.To,
				Cost:           newCost,
				Product:        newProduct,
				Hops:           state.Hops + 1,
				PathEdges:      newEdges,
				Range:          newRange,
				Signature:      newSig,
				InsertionOrder: insertionOrder,
			}

			record := newState.Record()
			dominated, err := registry.Dominated(edge.To, record)
			if err != nil {
				return SearchGuardReport{}, err
			}
			if dominated {
				continue
			}

			var admitted bool
			var delta int
			registry, admitted, delta, err = registry.Register(edge.To, record)
			if err != nil {
				return SearchGuardReport{}, err
			}
			if !admitted {
				continue
			}
			if !guards.OfferVisitedState(delta) {
				continue
			}

			pq.push(pqEntry{
				state: newState,
				priority: priority{
					cost:           newState.Cost,
					hops:           newState.Hops,
					routeSignature: newState.RouteSignature(),
					insertionOrder: insertionOrder,
				},
			})
			insertionOrder++
		}
	}

	return guards.Finalize(), nil
}

func mustOnePlus(tolerance money.Decimal) money.Decimal {
	one, _ := money.NewDecimalFromInt(1, tolerance.Scale())

	return one.Add(tolerance)
}

// productAfterEdge folds rate into the running product, inverting it
// for SELL edges (Order.EffectiveRate is always Base->Quote).
func productAfterEdge(product, rate money.Decimal, edge *pathgraph.GraphEdge) (money.Decimal, error) {
	r := rate
	if edge.Side == orderbook.SELL {
		inv, err := edge.Order.EffectiveRate.Invert()
		if err != nil {
			return money.Decimal{}, err
		}
		r = inv.Rate
	}
	scale := product.Scale()
	if r.Scale() > scale {
		scale = r.Scale()
	}

	return product.MulRound(r, scale)
}
