package pathresult

import "github.com/katalvlaran/orderpath/search"

// PathOrderStrategy compares two PathResults for ranking purposes,
// spec.md §9's "small, pure capability" closed trait. Less reports
// whether a sorts strictly before b, or an error if the comparison
// itself fails (a malformed decimal scale, never a business condition).
type PathOrderStrategy interface {
	Less(a, b PathResult) (bool, error)
}

// DefaultStrategy implements spec.md §4.10's default ordering: cost
// ascending, then hops ascending, then route signature ascending, then
// insertion order ascending — the same four keys search's priority queue
// orders the frontier by (spec.md §4.6).
type DefaultStrategy struct{}

// Less implements PathOrderStrategy.
func (DefaultStrategy) Less(a, b PathResult) (bool, error) {
	cmp, err := a.Cost.Compare(b.Cost, search.CostScale)
	if err != nil {
		return false, err
	}
	if cmp != 0 {
		return cmp < 0, nil
	}
	if a.Hops != b.Hops {
		return a.Hops < b.Hops, nil
	}
	if a.RouteSignature != b.RouteSignature {
		return a.RouteSignature < b.RouteSignature, nil
	}

	return a.InsertionOrder < b.InsertionOrder, nil
}
