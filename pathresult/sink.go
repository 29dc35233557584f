package pathresult

import (
	"errors"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/search"
)

// Sink adapts a Collector into a search.CandidateSink: every accepted
// CandidatePath the engine offers is materialised at SpendAmount and fed
// to the wrapped Collector, matching the control-flow order spec.md §2
// names — "engine ... -> candidate -> materialiser -> ordered result
// set". The first materialisation error encountered is latched and
// surfaced by Err(); per spec.md §7, a fee/precision failure must
// propagate rather than be swallowed as ordinary pruning.
type Sink struct {
	Collector   *Collector
	SpendAmount money.Money
	Tolerance   money.Decimal

	err error
}

// NewSink constructs a Sink feeding collector, materialising every
// offered candidate as a spend of spendAmount against the given
// tolerance budget.
func NewSink(collector *Collector, spendAmount money.Money, tolerance money.Decimal) *Sink {
	return &Sink{Collector: collector, SpendAmount: spendAmount, Tolerance: tolerance}
}

// Offer implements search.CandidateSink.
func (s *Sink) Offer(candidate search.CandidatePath) {
	if s.err != nil {
		return
	}
	result, err := Materialise(candidate, s.SpendAmount, s.Tolerance)
	if err != nil {
		// ErrNoCandidate means this particular fill is not realisable at
		// SpendAmount: spec.md §4.9 treats that as "no candidate for that
		// fill", i.e. ordinary pruning, not a fatal error.
		if errors.Is(err, ErrNoCandidate) {
			return
		}
		s.err = err

		return
	}
	s.Collector.Offer(result)
}

// Err returns the first fatal materialisation error encountered, if any.
func (s *Sink) Err() error { return s.err }
