// SPDX-License-Identifier: MIT
//
// Package pathgraph turns a collection of orderbook.Order values into an
// immutable directed multigraph of GraphEdge values, and provides the
// segment pruner that trims each edge's capacity segments down to the
// ones a search can actually use.
//
// Graph construction (BuildGraph) is a one-shot, deterministic operation:
// orders are consumed once, in iteration order, and produce edges in the
// same order; a Graph is never mutated after BuildGraph returns (spec.md
// §3: "Graphs are immutable after construction"). This is a deliberate
// divergence from the teacher (katalvlaran/lvlath)'s core.Graph, which is
// a long-lived, concurrently-mutated structure behind sync.RWMutex — see
// DESIGN.md for why no locking is carried over here.
//
// Edge capacity model (spec.md §4.3): each edge stores three capacity
// intervals —
//
//	BaseCapacity      — the order's own raw base-amount fill range,
//	                    independent of side or fees.
//	GrossBaseCapacity — the base-currency-denominated quantity the taker
//	                    actually faces: gross spend (BUY, base+baseFee)
//	                    or net receipt (SELL, base-baseFee).
//	QuoteCapacity     — the quote-currency-denominated quantity the taker
//	                    actually faces: net receipt (BUY, quote-quoteFee)
//	                    or gross spend (SELL, quote+quoteFee).
//
// Each edge additionally carries a list of EdgeSegment, splitting its
// usable base-amount range into a mandatory floor ([0, order.Bounds.Min])
// and an optional headroom ([order.Bounds.Min, order.Bounds.Max]). This
// list is stored unpruned: whether a given optional segment is usable
// depends on which of the three measures (base, grossBase, quote) a
// caller cares about, so BuildGraph cannot decide it once and for all at
// construction time. GraphEdge.CapacityFor(measure) calls PruneSegments
// (spec.md §4.4) on demand for the requested measure, discarding
// zero-capacity optional headroom and producing a deterministic, sorted
// segment list; SpendMeasure and ReceiveMeasure are thin wrappers over
// CapacityFor, so the pruner runs on every capacity check the search and
// materialiser perform, not just once at build time.
package pathgraph
