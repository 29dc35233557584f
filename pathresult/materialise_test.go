package pathresult

import (
	"testing"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/katalvlaran/orderpath/pathgraph"
	"github.com/katalvlaran/orderpath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSink struct {
	got []search.CandidatePath
}

func (s *sliceSink) Offer(c search.CandidatePath) { s.got = append(s.got, c) }

func runSearch(t *testing.T, eng *search.Engine, source, target string, spend money.Money) []search.CandidatePath {
	t.Helper()
	sc, err := pathgraph.NewSpendConstraints(spend.Currency, spend, spend, nil)
	require.NoError(t, err)
	sink := &sliceSink{}
	_, err = eng.Run(source, target, sc, nil, sink)
	require.NoError(t, err)

	return sink.got
}

func TestMaterialise_DirectPath(t *testing.T) {
	order := mustOrder(t, orderbook.BUY, "USD", "EUR", "50", "150", "0.92")
	g := mustGraph(t, order)
	eng := mustEngine(t, g, 1, "0")

	candidates := runSearch(t, eng, "USD", "EUR", money.MustMoney("USD", "100", 2))
	require.Len(t, candidates, 1)

	tol, err := money.NewDecimal("0", 2)
	require.NoError(t, err)
	result, err := Materialise(candidates[0], money.MustMoney("USD", "100", 2), tol)
	require.NoError(t, err)

	assert.Equal(t, "100.00", result.TotalSpent.Amount.String())
	assert.Equal(t, "USD", result.TotalSpent.Currency)
	assert.Equal(t, "92.00000000", result.TotalReceived.Amount.String())
	assert.Equal(t, "EUR", result.TotalReceived.Currency)
	require.Len(t, result.Legs, 1)
}

func TestMaterialise_TwoHopBeatsDirect(t *testing.T) {
	usdEur := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "1000", "0.90")
	usdGbp := mustOrder(t, orderbook.BUY, "USD", "GBP", "0", "1000", "0.80")
	gbpEur := mustOrder(t, orderbook.BUY, "GBP", "EUR", "0", "1000", "1.20")
	g := mustGraph(t, usdEur, usdGbp, gbpEur)
	eng := mustEngine(t, g, 2, "0")

	candidates := runSearch(t, eng, "USD", "EUR", money.MustMoney("USD", "100", 2))
	require.NotEmpty(t, candidates)

	tol, err := money.NewDecimal("0", 2)
	require.NoError(t, err)

	collector, err := NewCollector(2, DefaultStrategy{})
	require.NoError(t, err)
	for _, c := range candidates {
		r, err := Materialise(c, money.MustMoney("USD", "100", 2), tol)
		require.NoError(t, err)
		collector.Offer(r)
	}

	results := collector.Results()
	require.NotEmpty(t, results)
	best := results[0]
	assert.Equal(t, "EUR", best.TotalReceived.Currency)
	assert.Equal(t, "96.00000000", best.TotalReceived.Amount.String())
	assert.Len(t, best.Legs, 2)
}

func TestMaterialise_FeeAggregation(t *testing.T) {
	baseRate, err := money.NewDecimal("0.001", 4)
	require.NoError(t, err)
	pair, err := orderbook.NewAssetPair("USD", "EUR")
	require.NoError(t, err)
	bounds, err := orderbook.NewOrderBounds(money.MustMoney("USD", "0", 2), money.MustMoney("USD", "1000", 2))
	require.NoError(t, err)
	rate, err := money.NewDecimal("0.92", 8)
	require.NoError(t, err)
	er, err := money.NewExchangeRate("USD", "EUR", rate)
	require.NoError(t, err)
	order, err := orderbook.NewOrder(orderbook.BUY, pair, bounds, er, orderbook.PercentageFee{BaseRate: &baseRate})
	require.NoError(t, err)

	g := mustGraph(t, order)
	eng := mustEngine(t, g, 1, "0")
	candidates := runSearch(t, eng, "USD", "EUR", money.MustMoney("USD", "100", 2))
	require.Len(t, candidates, 1)

	tol, err := money.NewDecimal("0", 2)
	require.NoError(t, err)
	result, err := Materialise(candidates[0], money.MustMoney("USD", "100", 2), tol)
	require.NoError(t, err)

	require.Contains(t, result.FeeBreakdown, "USD")
	assert.Equal(t, "0.10", result.FeeBreakdown["USD"].Amount.String())
}

func TestMoneyMap_MergeIdempotent(t *testing.T) {
	m := MoneyMap{}
	m, err := m.Add(money.MustMoney("USD", "1.00", 2))
	require.NoError(t, err)

	merged, err := m.Merge(MoneyMap{})
	require.NoError(t, err)
	assert.Equal(t, m["USD"].Amount.String(), merged["USD"].Amount.String())
}

func TestCollector_TopKEviction(t *testing.T) {
	collector, err := NewCollector(1, DefaultStrategy{})
	require.NoError(t, err)

	cheap := PathResult{Cost: mustDec(t, "1"), Hops: 1, RouteSignature: "A->B"}
	expensive := PathResult{Cost: mustDec(t, "5"), Hops: 1, RouteSignature: "A->C"}

	collector.Offer(expensive)
	collector.Offer(cheap)

	results := collector.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "A->B", results[0].RouteSignature)
}

func mustDec(t *testing.T, s string) money.Decimal {
	t.Helper()
	d, err := money.NewDecimal(s, search.CostScale)
	require.NoError(t, err)

	return d
}
