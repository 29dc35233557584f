package search

import "time"

// Guards tracks the engine's resource ceilings and decides, on demand,
// whether another expansion is permitted (spec.md §4.7). MaxExpansions
// and MaxVisitedStates are always enforced, including when set to 0 —
// spec.md §8 requires a zero guard limit to stop the search immediately
// after bootstrap with its breach flag set, not to mean "unbounded". Only
// TimeBudgetMs uses nil to mean "not configured", since it is the one
// guard documented as optional (spec.md §4.7, §6).
type Guards struct {
	limits GuardLimits

	expansionCount    int
	visitedStateCount int
	startedAt         time.Time

	visitedGuardReached bool
}

// NewGuards constructs a Guards tracker with the given limits, starting
// its monotonic clock now.
func NewGuards(limits GuardLimits) *Guards {
	return &Guards{limits: limits, startedAt: time.Now()}
}

// elapsedMs returns the wall-clock duration since construction, in
// milliseconds, using the monotonic clock reading time.Since preserves.
func (g *Guards) elapsedMs() float64 {
	return float64(time.Since(g.startedAt)) / float64(time.Millisecond)
}

// CanExpand reports whether another expansion is permitted: it returns
// false as soon as any configured limit is currently reached.
func (g *Guards) CanExpand() bool {
	if g.limits.TimeBudgetMs != nil && g.elapsedMs() >= float64(*g.limits.TimeBudgetMs) {
		return false
	}
	if g.expansionCount >= g.limits.MaxExpansions {
		return false
	}
	if g.visitedStateCount >= g.limits.MaxVisitedStates {
		return false
	}

	return true
}

// RecordExpansion increments the expansion counter.
func (g *Guards) RecordExpansion() {
	g.expansionCount++
}

// OfferVisitedState accounts for a genuinely new (node, signature) key
// (delta == 1 from Registry.Register). It reports whether the state may
// be admitted: if the count has already reached MaxVisitedStates (so
// admitting it would exceed the limit), the visited-guard-reached flag is
// latched and the state is rejected.
func (g *Guards) OfferVisitedState(delta int) bool {
	if delta == 0 {
		return true
	}
	if g.visitedStateCount >= g.limits.MaxVisitedStates {
		g.visitedGuardReached = true

		return false
	}
	g.visitedStateCount++

	return true
}

// Finalize produces the immutable SearchGuardReport for a completed
// search. MaxExpansions and MaxVisitedStates are always-enforced limits,
// so they count as breached whenever the observed metric meets or
// exceeds them, including the literal 0 case; TimeBudget only counts as
// breached when it is configured (non-nil) and exceeded.
func (g *Guards) Finalize() SearchGuardReport {
	elapsed := g.elapsedMs()

	breachedExpansions := g.expansionCount >= g.limits.MaxExpansions
	breachedVisited := g.visitedGuardReached || g.visitedStateCount >= g.limits.MaxVisitedStates
	breachedTime := g.limits.TimeBudgetMs != nil && elapsed >= float64(*g.limits.TimeBudgetMs)

	return SearchGuardReport{
		Limits: g.limits,
		Metrics: GuardMetrics{
			Expansions:    g.expansionCount,
			VisitedStates: g.visitedStateCount,
			ElapsedMs:     elapsed,
		},
		Breached: GuardBreached{
			Expansions:    breachedExpansions,
			VisitedStates: breachedVisited,
			TimeBudget:    breachedTime,
			Any:           breachedExpansions || breachedVisited || breachedTime,
		},
	}
}
