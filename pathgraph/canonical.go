package pathgraph

import "sort"

// sortEdges sorts edges by destination currency then OrderIndex,
// ascending, in place.
func sortEdges(edges GraphEdgeCollection) {
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}

		return edges[i].OrderIndex < edges[j].OrderIndex
	})
}

// CanonicalEdges returns the graph's global edge list sorted by (From,
// To, OrderIndex) ascending. The search engine does not call it: it
// iterates each GraphNode's Out list, which BuildGraph already sorts by
// (To, OrderIndex).
func CanonicalEdges(g *Graph) []*GraphEdge {
	out := append([]*GraphEdge(nil), g.edges...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].OrderIndex < out[j].OrderIndex
	})

	return out
}
