package pathgraph

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
)

// BuildGraph constructs an immutable Graph from orders, in a single
// deterministic pass: order i produces edge i; no order is dropped or
// reordered. BuildGraph never mutates its input.
func BuildGraph(orders []orderbook.Order) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*GraphNode)}

	for i, order := range orders {
		edge, err := buildEdge(order, i)
		if err != nil {
			return nil, fmt.Errorf("pathgraph: order %d: %w", i, err)
		}
		g.edges = append(g.edges, edge)

		from := ensureNode(g, edge.From)
		ensureNode(g, edge.To)
		from.Out = append(from.Out, edge)
	}

	for _, n := range g.nodes {
		n.Out = canonicalOrder(n.Out)
	}

	return g, nil
}

func ensureNode(g *Graph, currency string) *GraphNode {
	n, ok := g.nodes[currency]
	if !ok {
		n = &GraphNode{Currency: currency}
		g.nodes[currency] = n
	}

	return n
}

func buildEdge(order orderbook.Order, index int) (*GraphEdge, error) {
	from, to := order.FromTo()

	lo := order.Bounds.Min
	hi := order.Bounds.Max

	_, grossLo, quoteLo, err := evalEdgeAt(order, lo)
	if err != nil {
		return nil, err
	}
	_, grossHi, quoteHi, err := evalEdgeAt(order, hi)
	if err != nil {
		return nil, err
	}

	edge := &GraphEdge{
		From:              from,
		To:                to,
		Side:              order.Side,
		Order:             order,
		OrderIndex:        index,
		BaseCapacity:      Interval{Min: lo, Max: hi},
		GrossBaseCapacity: Interval{Min: grossLo, Max: grossHi},
		QuoteCapacity:     Interval{Min: quoteLo, Max: quoteHi},
	}

	raw, err := buildSegments(order, lo, hi)
	if err != nil {
		return nil, err
	}
	edge.Segments = raw

	return edge, nil
}

// buildSegments emits the raw, pre-prune segment list for an order: a
// mandatory floor segment [0, min] when min > 0, followed by an optional
// headroom segment [min, max] (spec.md §4.4).
func buildSegments(order orderbook.Order, lo, hi money.Money) ([]EdgeSegment, error) {
	var out []EdgeSegment

	if lo.Amount.Sign() > 0 {
		zero, err := money.Zero(lo.Amount.Scale())
		if err != nil {
			return nil, err
		}
		baseZero := money.Money{Currency: lo.Currency, Amount: zero}

		seg, err := evalSegment(order, baseZero, lo, true)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}

	seg, err := evalSegment(order, lo, hi, false)
	if err != nil {
		return nil, err
	}
	out = append(out, seg)

	return out, nil
}

func evalSegment(order orderbook.Order, lo, hi money.Money, mandatory bool) (EdgeSegment, error) {
	_, grossLo, quoteLo, err := evalEdgeAt(order, lo)
	if err != nil {
		return EdgeSegment{}, err
	}
	_, grossHi, quoteHi, err := evalEdgeAt(order, hi)
	if err != nil {
		return EdgeSegment{}, err
	}

	return EdgeSegment{
		Mandatory:         mandatory,
		BaseInterval:      Interval{Min: lo, Max: hi},
		GrossBaseInterval: Interval{Min: grossLo, Max: grossHi},
		QuoteInterval:     Interval{Min: quoteLo, Max: quoteHi},
	}, nil
}

// canonicalOrder sorts a node's outgoing edges by destination currency,
// then by OrderIndex, ascending (spec.md §4.8 step 4).
func canonicalOrder(edges GraphEdgeCollection) GraphEdgeCollection {
	out := append(GraphEdgeCollection(nil), edges...)
	sortEdges(out)

	return out
}
