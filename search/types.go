package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/pathgraph"
)

// CostScale is the fixed normalisation scale for PathCost arithmetic.
const CostScale = 18

// PathCost is an arbitrary-precision decimal normalised to CostScale. It
// is additive across hops: a lower cost is always preferred.
type PathCost struct {
	d money.Decimal
}

// ZeroCost returns the PathCost for a bootstrap state (no edges crossed).
func ZeroCost() (PathCost, error) {
	d, err := money.Zero(CostScale)
	if err != nil {
		return PathCost{}, err
	}

	return PathCost{d: d}, nil
}

// NewPathCost rescales d to CostScale.
func NewPathCost(d money.Decimal) (PathCost, error) {
	r, err := d.Rescale(CostScale)
	if err != nil {
		return PathCost{}, err
	}

	return PathCost{d: r}, nil
}

// Decimal returns the underlying scale-18 Decimal.
func (c PathCost) Decimal() money.Decimal { return c.d }

// Add returns c + contribution, rescaled to CostScale.
func (c PathCost) Add(contribution money.Decimal) (PathCost, error) {
	sum := c.d.Add(contribution)

	return NewPathCost(sum)
}

// Compare compares two costs at CostScale.
func (c PathCost) Compare(other PathCost) (int, error) {
	return c.d.Compare(other.d, CostScale)
}

// String renders the cost at its fixed scale.
func (c PathCost) String() string { return c.d.String() }

// RouteSignature is a list of trimmed, non-empty node symbols joined by
// "->"; the empty route (bootstrap state) renders as "".
type RouteSignature string

// BuildRouteSignature joins nodes, trimming whitespace and dropping any
// blank entries, in input order.
func BuildRouteSignature(nodes []string) RouteSignature {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		t := strings.TrimSpace(n)
		if t == "" {
			continue
		}
		parts = append(parts, t)
	}

	return RouteSignature(strings.Join(parts, "->"))
}

// SearchStateSignature is a stable fingerprint of a state's propagated
// spend range (and, if present, a desired amount), used as the
// dominance-registry key. Segments are "label:value" pairs joined by
// "|"; neither "|" nor ":" may appear inside a value, and no segment may
// be blank (spec.md §3).
type SearchStateSignature string

// BuildSignature constructs the canonical signature for a propagated
// range and optional desired amount.
func BuildSignature(rng pathgraph.SpendConstraints, desired *money.Money) (SearchStateSignature, error) {
	segments := []string{
		"cur:" + rng.Currency,
		"min:" + rng.Min.Amount.String(),
		"max:" + rng.Max.Amount.String(),
	}
	if desired != nil {
		segments = append(segments, "desired:"+desired.Amount.String())
	}

	for _, seg := range segments {
		if seg == "" {
			return "", fmt.Errorf("%w: blank signature segment", ErrInvalidInput)
		}
		if _, value, _ := strings.Cut(seg, ":"); strings.ContainsAny(value, "|:") {
			return "", fmt.Errorf("%w: signature value contains '|' or ':'", ErrInvalidInput)
		}
	}

	return SearchStateSignature(strings.Join(segments, "|")), nil
}

// SearchStateRecord is the dominance registry's per-(node,signature)
// payload: just enough to decide dominance without holding the full
// SearchState (and its edge history) alive.
type SearchStateRecord struct {
	Cost      PathCost
	Hops      int
	Signature SearchStateSignature
}

// Dominates reports whether r dominates other: r.cost <= other.cost AND
// r.hops <= other.hops, with at least one strictly less (spec.md §4.5).
func (r SearchStateRecord) Dominates(other SearchStateRecord) (bool, error) {
	costCmp, err := r.Cost.Compare(other.Cost)
	if err != nil {
		return false, err
	}
	if costCmp > 0 || r.Hops > other.Hops {
		return false, nil
	}

	return costCmp < 0 || r.Hops < other.Hops, nil
}

// SearchState is one node in the search frontier: immutable once
// created, transitioned only by producing a new SearchState via an
// outgoing GraphEdge.
type SearchState struct {
	CurrentNode string
	Cost        PathCost
	Product     money.Decimal
	Hops        int
	PathEdges   []*pathgraph.GraphEdge
	Range       pathgraph.SpendConstraints
	Signature   SearchStateSignature

	// InsertionOrder is the monotonically increasing counter value this
	// state was pushed with; carried through to CandidatePath so the
	// top-K collector can apply the same FIFO tiebreak the priority
	// queue uses (spec.md §4.6, §4.10).
	InsertionOrder int
}

// Record projects the state down to its dominance-registry record.
func (s SearchState) Record() SearchStateRecord {
	return SearchStateRecord{Cost: s.Cost, Hops: s.Hops, Signature: s.Signature}
}

// RouteSignature renders the sequence of destination nodes s.PathEdges
// visits; a state with no edges (the bootstrap state) renders as "".
func (s SearchState) RouteSignature() RouteSignature {
	nodes := make([]string, 0, len(s.PathEdges))
	for _, e := range s.PathEdges {
		nodes = append(nodes, e.To)
	}

	return BuildRouteSignature(nodes)
}

// CandidatePath is a terminal state reified as a search result: a state
// whose CurrentNode reached the target with at least one hop.
type CandidatePath struct {
	Cost      PathCost
	Product   money.Decimal
	Hops      int
	PathEdges []*pathgraph.GraphEdge
	Range     pathgraph.SpendConstraints

	// InsertionOrder carries the originating SearchState's heap-insertion
	// counter forward, so pathresult's top-K collector can apply the same
	// FIFO tiebreak the priority queue used during search (spec.md §4.6,
	// §4.10).
	InsertionOrder int

	// BestCostAtAcceptance is the best-known cost observed at the target
	// node strictly before this candidate was popped, or nil if this is
	// the first candidate the engine has ever produced. pathresult's
	// materialiser uses it to compute the candidate's residual tolerance
	// budget (spec.md §4.9 step 5).
	BestCostAtAcceptance *PathCost
}

// RouteSignature renders the sequence of destination nodes c.PathEdges
// visits, identically to SearchState.RouteSignature.
func (c CandidatePath) RouteSignature() RouteSignature {
	nodes := make([]string, 0, len(c.PathEdges))
	for _, e := range c.PathEdges {
		nodes = append(nodes, e.To)
	}

	return BuildRouteSignature(nodes)
}

// NewCandidatePath builds a CandidatePath from a terminal SearchState,
// validating that its edge count matches its hop count.
func NewCandidatePath(state SearchState) (CandidatePath, error) {
	if state.Hops != len(state.PathEdges) {
		return CandidatePath{}, fmt.Errorf("%w: hops %d does not match edge count %d", ErrInvalidInput, state.Hops, len(state.PathEdges))
	}

	return CandidatePath{
		Cost:           state.Cost,
		Product:        state.Product,
		Hops:           state.Hops,
		PathEdges:      state.PathEdges,
		Range:          state.Range,
		InsertionOrder: state.InsertionOrder,
	}, nil
}

// GuardLimits is the configured ceiling for each guard rail. A nil
// TimeBudgetMs means no time limit is enforced. Field tags match
// spec.md §6's serialised "limits" object.
type GuardLimits struct {
	MaxExpansions    int    `json:"expansions"`
	MaxVisitedStates int    `json:"visited_states"`
	TimeBudgetMs     *int64 `json:"time_budget_ms"`
}

// GuardMetrics is the observed counters at the end of a search. Field
// tags match spec.md §6's serialised "metrics" object.
type GuardMetrics struct {
	Expansions    int     `json:"expansions"`
	VisitedStates int     `json:"visited_states"`
	ElapsedMs     float64 `json:"elapsed_ms"`
}

// GuardBreached flags which limits were actually reached. Field tags
// match spec.md §6's serialised "breached" object.
type GuardBreached struct {
	Expansions    bool `json:"expansions"`
	VisitedStates bool `json:"visited_states"`
	TimeBudget    bool `json:"time_budget"`
	Any           bool `json:"any"`
}

// SearchGuardReport is the full, immutable guard-rail outcome of a
// completed search. Field tags match spec.md §6's serialised "guards"
// object.
type SearchGuardReport struct {
	Limits   GuardLimits   `json:"limits"`
	Metrics  GuardMetrics  `json:"metrics"`
	Breached GuardBreached `json:"breached"`
}
