package pathsearch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/orderpath/pathgraph"
	"github.com/katalvlaran/orderpath/pathresult"
	"github.com/katalvlaran/orderpath/search"
)

// PathSearch is the sole public entry point (spec.md §6): it builds a
// graph from request.Orders, runs the best-first engine from
// request.Source to request.Target, materialises and ranks accepted
// candidates, and returns the SearchOutcome. Errors from graph
// construction, engine configuration, or a fatal materialisation
// failure propagate unchanged (spec.md §7's "validation/precision
// failures abort and propagate"); guard-rail breaches are reported in
// the outcome rather than raised, unless request.StrictGuards is set.
//
// ctx is honored only at the single point a synchronous, non-blocking
// engine can meaningfully observe it: before the search begins. The
// engine's own cancellation mechanism is its time budget (spec.md §5);
// there is no mid-search cancel signal.
func PathSearch(ctx context.Context, request SearchRequest) (SearchOutcome, error) {
	if err := ctx.Err(); err != nil {
		return SearchOutcome{}, err
	}
	if err := request.validate(); err != nil {
		return SearchOutcome{}, err
	}

	graph, err := pathgraph.BuildGraph(request.Orders)
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("pathsearch: building graph: %w", err)
	}

	engine, err := search.NewEngine(graph, search.Config{
		MaxHops:   request.MaxHops,
		Tolerance: request.Tolerance,
		Guards:    request.Guards,
	})
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("pathsearch: configuring engine: %w", err)
	}

	strategy := request.Strategy
	if strategy == nil {
		strategy = pathresult.DefaultStrategy{}
	}
	collector, err := pathresult.NewCollector(request.TopK, strategy)
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("pathsearch: configuring collector: %w", err)
	}

	sink := pathresult.NewSink(collector, request.resolveSpendAmount(), request.Tolerance)

	report, err := engine.Run(request.Source, request.Target, request.Constraints, request.Predicate, sink)
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("pathsearch: running search: %w", err)
	}
	if sink.Err() != nil {
		return SearchOutcome{}, fmt.Errorf("pathsearch: materialising candidate: %w", sink.Err())
	}

	if request.StrictGuards && report.Breached.Any {
		return SearchOutcome{}, fmt.Errorf("%w: %+v", ErrGuardLimitExceeded, report.Breached)
	}

	return SearchOutcome{Paths: collector.Results(), Guards: report}, nil
}

// TraceID returns a fresh, random correlation id a caller can attach to
// a PathSearch invocation. It is purely observational: PathSearch never
// calls it and SearchOutcome carries no trace id (spec.md §5: the engine
// performs no incidental I/O).
func TraceID() string {
	return uuid.NewString()
}
