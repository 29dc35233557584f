package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/katalvlaran/orderpath/pathgraph"
	"github.com/katalvlaran/orderpath/pathresult"
	"github.com/katalvlaran/orderpath/search"
)

// SearchRequest bundles everything PathSearch needs: the raw order
// iterable, source/target assets, a spend range, and the best-first
// engine's tuning knobs (spec.md §6's Core API shape).
type SearchRequest struct {
	Orders []orderbook.Order
	Source string
	Target string

	Constraints pathgraph.SpendConstraints

	MaxHops   int
	Tolerance money.Decimal
	TopK      int
	Guards    search.GuardLimits

	// Predicate, if non-nil, is consulted for every candidate the engine
	// discovers; rejections still feed best-cost tracking (spec.md §6).
	Predicate search.AcceptancePredicate

	// Strategy orders accepted results; DefaultStrategy is used if nil.
	Strategy pathresult.PathOrderStrategy

	// StrictGuards, if true, turns any breached guard limit into
	// ErrGuardLimitExceeded after the search completes rather than
	// returning a partial SearchOutcome (spec.md §7's optional strict mode).
	StrictGuards bool

	// SpendAmount overrides the amount the materialiser walks forward
	// from the source currency. If nil, PathSearch uses
	// Constraints.Desired when present, otherwise Constraints.Max
	// (documented open-implementation choice; see DESIGN.md).
	SpendAmount *money.Money
}

// validate checks the structural preconditions PathSearch requires
// before touching the graph builder or engine.
func (r SearchRequest) validate() error {
	if err := money.ValidateCurrency(r.Source); err != nil {
		return fmt.Errorf("%w: source: %v", ErrInvalidInput, err)
	}
	if err := money.ValidateCurrency(r.Target); err != nil {
		return fmt.Errorf("%w: target: %v", ErrInvalidInput, err)
	}
	if r.TopK < 1 {
		return fmt.Errorf("%w: topK must be >= 1, got %d", ErrInvalidInput, r.TopK)
	}
	if r.MaxHops < 0 {
		return fmt.Errorf("%w: maxHops must be >= 0, got %d", ErrInvalidInput, r.MaxHops)
	}

	return nil
}

// resolveSpendAmount picks the amount the materialiser walks forward
// from the source currency, per the rule documented on SpendAmount.
func (r SearchRequest) resolveSpendAmount() money.Money {
	if r.SpendAmount != nil {
		return *r.SpendAmount
	}
	if r.Constraints.Desired != nil {
		return *r.Constraints.Desired
	}

	return r.Constraints.Max
}

// SearchOutcome is the complete, externally-serialisable result of a
// PathSearch call: up to TopK ranked PathResults plus the guard-rail
// report (spec.md §6's serialised-form contract).
type SearchOutcome struct {
	Paths  []pathresult.PathResult  `json:"paths"`
	Guards search.SearchGuardReport `json:"guards"`
}
