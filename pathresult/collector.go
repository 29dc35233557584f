package pathresult

import "fmt"

// Collector maintains up to K accepted PathResults, ordered by a
// PathOrderStrategy, evicting the current worst entry whenever a better
// one arrives once the collector is full (spec.md §4.10). Collector is
// not safe for concurrent use — the engine that feeds it is itself
// single-threaded (spec.md §5).
type Collector struct {
	k        int
	strategy PathOrderStrategy
	entries  []PathResult
}

// NewCollector constructs a Collector holding at most k entries, ranked
// by strategy. k must be >= 1.
func NewCollector(k int, strategy PathOrderStrategy) (*Collector, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: topK must be >= 1, got %d", ErrInvalidInput, k)
	}
	if strategy == nil {
		strategy = DefaultStrategy{}
	}

	return &Collector{k: k, strategy: strategy}, nil
}

// Offer inserts result per spec.md §4.10's rule:
//   - if the collector holds fewer than K entries, insert unconditionally;
//   - else, if result sorts strictly before the current worst entry, evict
//     the worst and insert result;
//   - else, drop result.
//
// Offer swallows comparison errors so that Sink (which adapts a Collector
// into a search.CandidateSink) has a trivial, error-free call site;
// production code that needs to observe a strategy failure should call
// OfferResult directly instead.
func (c *Collector) Offer(result PathResult) {
	_ = c.OfferResult(result)
}

// OfferResult is Offer with the comparison error surfaced, for callers
// that want to treat a strategy failure as fatal rather than silently
// dropping the candidate.
func (c *Collector) OfferResult(result PathResult) error {
	if len(c.entries) < c.k {
		c.insertSorted(result)

		return nil
	}

	worstIdx := len(c.entries) - 1
	less, err := c.strategy.Less(result, c.entries[worstIdx])
	if err != nil {
		return err
	}
	if !less {
		return nil
	}

	c.entries = c.entries[:worstIdx]
	c.insertSorted(result)

	return nil
}

// insertSorted inserts result into c.entries at its correctly-sorted
// position. Entry counts handled by this collector are bounded by K,
// typically small (single digits to low hundreds), so a linear insertion
// is simpler and plenty fast; no log-structured heap is warranted here.
func (c *Collector) insertSorted(result PathResult) {
	idx := len(c.entries)
	for i, existing := range c.entries {
		less, err := c.strategy.Less(result, existing)
		if err != nil {
			// A malformed-scale comparison here would already have
			// surfaced from OfferResult's worst-entry check above for any
			// entry that matters; a failure against an interior entry is
			// appended defensively at the end rather than silently lost.
			continue
		}
		if less {
			idx = i

			break
		}
	}
	c.entries = append(c.entries, PathResult{})
	copy(c.entries[idx+1:], c.entries[idx:])
	c.entries[idx] = result
}

// Results returns the collected PathResults in ascending order (spec.md
// §4.10 "On read, entries are emitted in ascending order"). The returned
// slice is a defensive copy; mutating it does not affect the collector.
func (c *Collector) Results() []PathResult {
	out := make([]PathResult, len(c.entries))
	copy(out, c.entries)

	return out
}

// Len returns the number of entries currently held.
func (c *Collector) Len() int { return len(c.entries) }
