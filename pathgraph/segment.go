package pathgraph

import (
	"sort"

	"github.com/katalvlaran/orderpath/money"
)

// PruneSegments normalizes a raw segment list under measure (spec.md §4.4):
//
//  1. any optional segment that is unusable under measure is dropped — a
//     segment is unusable when its Interval(measure) carries zero width
//     (Max == Min, no incremental headroom beyond the mandatory floor) or
//     when its Interval(measure).Max is itself zero (the measure's fee
//     policy collapsed the segment to nothing, even though it may still
//     carry real width under a different measure);
//  2. the remaining segments are sorted mandatory-first, then by descending
//     Interval(measure).Max, then by descending Interval(measure).Min;
//  3. ties (equal on every key above) preserve the input's relative order,
//     so the result is fully deterministic for a given input.
//
// An edge whose only segment is an unusable optional one is left with that
// single segment intact — BuildGraph uses this to represent a structurally
// valid but currently unusable order (spec.md §4.4 edge case: "an all-zero
// edge produces a single zero-capacity optional segment").
//
// Pruning is measure-specific: a fee policy can zero out an edge's quote or
// gross-base capacity while its base capacity stays positive, so the same
// segment list can prune differently depending on which measure a caller
// cares about. Callers never cache a pruned result across measures.
func PruneSegments(segments []EdgeSegment, measure Measure) []EdgeSegment {
	if len(segments) <= 1 {
		return append([]EdgeSegment(nil), segments...)
	}

	kept := make([]EdgeSegment, 0, len(segments))
	for _, s := range segments {
		if !s.Mandatory && unusable(s, measure) {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		// Every segment was an unusable optional one: keep exactly the
		// first as the canonical "unusable edge" marker.
		return []EdgeSegment{segments[0]}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].Interval(measure), kept[j].Interval(measure)
		if kept[i].Mandatory != kept[j].Mandatory {
			return kept[i].Mandatory // mandatory sorts before optional
		}
		if cmp := mustCompare(a.Max, b.Max); cmp != 0 {
			return cmp > 0 // descending max
		}
		if cmp := mustCompare(a.Min, b.Min); cmp != 0 {
			return cmp > 0 // descending min
		}

		return false // preserve input order
	})

	return kept
}

// unusable reports whether an optional segment contributes no usable
// headroom under measure: either its interval has zero width (no
// incremental capacity beyond the mandatory floor) or its ceiling is zero
// (the measure's fee policy collapsed it to nothing).
func unusable(s EdgeSegment, measure Measure) bool {
	iv := s.Interval(measure)

	return iv.Max.IsZero() || mustCompare(iv.Max, iv.Min) == 0
}

// mustCompare compares two same-currency Money values; both arguments
// are always produced internally by this package with matching
// currencies, so an error here indicates a builder bug rather than bad
// input, and it is safe to treat as "equal" for sort stability rather
// than panic.
func mustCompare(a, b money.Money) int {
	cmp, err := a.Compare(b)
	if err != nil {
		return 0
	}

	return cmp
}
