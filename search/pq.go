package search

import "container/heap"

// priority is the four-key lexicographic ordering a pqEntry is ranked
// by (spec.md §4.6): cost ascending, hops ascending, route signature
// ascending, insertion order ascending.
type priority struct {
	cost           PathCost
	hops           int
	routeSignature RouteSignature
	insertionOrder int
}

// less reports whether p sorts strictly before other.
func (p priority) less(other priority) (bool, error) {
	cmp, err := p.cost.Compare(other.cost)
	if err != nil {
		return false, err
	}
	if cmp != 0 {
		return cmp < 0, nil
	}
	if p.hops != other.hops {
		return p.hops < other.hops, nil
	}
	if p.routeSignature != other.routeSignature {
		return p.routeSignature < other.routeSignature, nil
	}

	return p.insertionOrder < other.insertionOrder, nil
}

// pqEntry pairs a SearchState with the priority it was pushed at. The
// priority is computed once, at push time, and never recomputed — the
// same "lazy decrease-key via push-only heap" discipline the teacher's
// dijkstra.nodePQ uses: a state is pushed once per (edge, predecessor)
// pairing and stale entries are never revisited after pop.
type pqEntry struct {
	state    SearchState
	priority priority
}

// nodePQ is a container/heap.Interface min-heap over pqEntry, ordered by
// priority.less. Any comparison error encountered while heapifying is
// latched into the heap's err field and surfaced by the engine after
// the next heap operation, since heap.Interface methods cannot return
// errors themselves.
type nodePQ struct {
	entries []pqEntry
	err     error
}

func newNodePQ() *nodePQ { return &nodePQ{} }

func (pq *nodePQ) Len() int { return len(pq.entries) }

func (pq *nodePQ) Less(i, j int) bool {
	less, err := pq.entries[i].priority.less(pq.entries[j].priority)
	if err != nil && pq.err == nil {
		pq.err = err
	}

	return less
}

func (pq *nodePQ) Swap(i, j int) {
	pq.entries[i], pq.entries[j] = pq.entries[j], pq.entries[i]
}

func (pq *nodePQ) Push(x any) {
	pq.entries = append(pq.entries, x.(pqEntry))
}

func (pq *nodePQ) Pop() any {
	old := pq.entries
	n := len(old)
	item := old[n-1]
	pq.entries = old[:n-1]

	return item
}

// push pushes entry onto the heap.
func (pq *nodePQ) push(entry pqEntry) {
	heap.Push(pq, entry)
}

// popMin pops the minimum-priority entry.
func (pq *nodePQ) popMin() (pqEntry, bool) {
	if pq.Len() == 0 {
		return pqEntry{}, false
	}

	return heap.Pop(pq).(pqEntry), true
}
