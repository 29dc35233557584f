package pathgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
)

// Interval is an inclusive [Min, Max] Money range. Both ends share a
// currency; Min <= Max always holds for an Interval returned by this
// package.
type Interval struct {
	Min money.Money
	Max money.Money
}

// IsZero reports whether the interval has zero width and a zero floor,
// i.e. it carries no usable capacity at all.
func (iv Interval) IsZero() bool {
	return iv.Min.IsZero() && iv.Max.IsZero()
}

// Width returns Max - Min.
func (iv Interval) Width() (money.Money, error) {
	d := iv.Max.Amount.Sub(iv.Min.Amount)

	return money.Money{Currency: iv.Max.Currency, Amount: d}, nil
}

// Measure selects which of an edge's three capacity dimensions a
// segment-aware computation should read (spec.md §4.4: "a measure ∈
// {base, quote, grossBase}").
type Measure int

const (
	// MeasureBase reads EdgeSegment.BaseInterval / GraphEdge.BaseCapacity.
	MeasureBase Measure = iota
	// MeasureGrossBase reads EdgeSegment.GrossBaseInterval / GraphEdge.GrossBaseCapacity.
	MeasureGrossBase
	// MeasureQuote reads EdgeSegment.QuoteInterval / GraphEdge.QuoteCapacity.
	MeasureQuote
)

// EdgeSegment is one usable slice of an edge's capacity, expressed in all
// three measures simultaneously (spec.md §4.4). Mandatory segments must
// be consumed before optional ones; at most one mandatory and one
// optional segment are ever produced per edge by this package's builder,
// though PruneSegments accepts and normalizes arbitrary segment lists.
type EdgeSegment struct {
	Mandatory         bool
	BaseInterval      Interval
	GrossBaseInterval Interval
	QuoteInterval     Interval
}

// Interval returns the segment's capacity interval under the requested
// measure.
func (s EdgeSegment) Interval(measure Measure) Interval {
	switch measure {
	case MeasureGrossBase:
		return s.GrossBaseInterval
	case MeasureQuote:
		return s.QuoteInterval
	default:
		return s.BaseInterval
	}
}

// GraphEdge is one directed, capacity-bounded conversion step derived
// from a single orderbook.Order (spec.md §3, §4.3).
type GraphEdge struct {
	From  string
	To    string
	Side  orderbook.Side
	Order orderbook.Order

	// OrderIndex is the position of Order within the slice BuildGraph was
	// given; it is a value-type handle used for tie-breaking and tracing,
	// never a live pointer back into caller state.
	OrderIndex int

	// BaseCapacity is the order's own raw base fill-amount range,
	// independent of side or fees.
	BaseCapacity Interval

	// GrossBaseCapacity is the base-currency-denominated quantity the
	// taker actually faces: gross spend for BUY, net receipt for SELL.
	GrossBaseCapacity Interval

	// QuoteCapacity is the quote-currency-denominated quantity the taker
	// actually faces: net receipt for BUY, gross spend for SELL.
	QuoteCapacity Interval

	// Segments is the unpruned raw segment list BuildGraph derived from
	// Order.Bounds (spec.md §4.4): a mandatory floor ([0, Bounds.Min])
	// when Bounds.Min > 0, followed by an optional headroom
	// ([Bounds.Min, Bounds.Max]). Pruning is measure-specific (dropping
	// zero-capacity optional segments under one measure need not drop
	// them under another), so it is not precomputed once at build time;
	// CapacityFor calls PruneSegments(Segments, measure) on demand, and
	// that pruned, sorted list is what the search and materialiser
	// actually consume.
	Segments []EdgeSegment
}

// CapacityFor derives the edge's usable [floor, ceiling] interval under
// measure directly from its pruned, sorted Segments (spec.md §4.4):
// the floor is the mandatory segment's ceiling under measure (the
// order's minimum fill, expressed in measure's units) if a mandatory
// segment survives pruning, else the lowest surviving optional
// segment's floor; the ceiling is the highest Max across every
// surviving segment. Mandatory segments are consumed before optional
// ones, matching spec.md §4.4's "mandatory segments must be consumed
// before optional" framing — SpendMeasure/ReceiveMeasure read this
// instead of the raw BaseCapacity/GrossBaseCapacity/QuoteCapacity
// fields, so the segment pruner is a live step in every capacity check,
// not just a value computed and discarded at build time.
func (e GraphEdge) CapacityFor(measure Measure) Interval {
	segs := PruneSegments(e.Segments, measure)
	if len(segs) == 0 {
		return Interval{}
	}

	var floor, ceiling money.Money
	haveFloor, haveCeiling := false, false
	for _, s := range segs {
		iv := s.Interval(measure)
		if s.Mandatory {
			if !haveFloor || mustCompare(iv.Max, floor) > 0 {
				floor = iv.Max
				haveFloor = true
			}
		} else if !haveFloor {
			floor = iv.Min
			haveFloor = true
		}
		if !haveCeiling || mustCompare(iv.Max, ceiling) > 0 {
			ceiling = iv.Max
			haveCeiling = true
		}
	}

	return Interval{Min: floor, Max: ceiling}
}

// SpendMeasure returns the capacity interval denominated in the edge's
// From currency: the quantity actually debited from the taker's holding
// of that currency when this edge is used.
func (e GraphEdge) SpendMeasure() Interval {
	if e.Side == orderbook.BUY {
		return e.CapacityFor(MeasureGrossBase)
	}

	return e.CapacityFor(MeasureQuote)
}

// ReceiveMeasure returns the capacity interval denominated in the edge's
// To currency: the quantity credited to the taker when this edge is used.
func (e GraphEdge) ReceiveMeasure() Interval {
	if e.Side == orderbook.BUY {
		return e.CapacityFor(MeasureQuote)
	}

	return e.CapacityFor(MeasureGrossBase)
}

// ID is a deterministic, human-readable identifier for the edge:
// "<From>-><To>#<OrderIndex>". Canonical ordering does not use it; it
// sorts on To (and From) and OrderIndex directly.
func (e GraphEdge) ID() string {
	return fmt.Sprintf("%s->%s#%d", e.From, e.To, e.OrderIndex)
}

// GraphEdgeCollection is an ordered, read-only view of edges leaving one
// node. The order is canonical (spec.md §4.8 step 4): sorted by
// destination currency, then by OrderIndex, ascending.
type GraphEdgeCollection []*GraphEdge

// GraphNode is one currency vertex and its canonically-ordered outgoing
// edges.
type GraphNode struct {
	Currency string
	Out      GraphEdgeCollection
}

// Graph is an immutable directed multigraph over currencies. It is only
// ever constructed by BuildGraph; there is no exported mutator.
type Graph struct {
	nodes map[string]*GraphNode
	edges []*GraphEdge // OrderIndex order (the order BuildGraph received)
}

// Node returns the node for currency, or (nil, false) if the currency
// never appears in the graph.
func (g *Graph) Node(currency string) (*GraphNode, bool) {
	n, ok := g.nodes[currency]

	return n, ok
}

// Edges returns the full edge list in OrderIndex order, i.e. the order
// of the orders BuildGraph was given; CanonicalEdges returns it sorted by
// (From, To, OrderIndex). The returned slice must not be mutated by
// callers.
func (g *Graph) Edges() []*GraphEdge { return g.edges }

// Currencies returns every currency with at least one node, sorted
// lexicographically.
func (g *Graph) Currencies() []string {
	out := make([]string, 0, len(g.nodes))
	for c := range g.nodes {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}
