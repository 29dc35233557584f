package search

import (
	"testing"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/katalvlaran/orderpath/pathgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSink struct {
	got []CandidatePath
}

func (s *sliceSink) Offer(c CandidatePath) { s.got = append(s.got, c) }

func mustOrder(t *testing.T, side orderbook.Side, base, quote, min, max, rate string) orderbook.Order {
	t.Helper()
	pair, err := orderbook.NewAssetPair(base, quote)
	require.NoError(t, err)
	bounds, err := orderbook.NewOrderBounds(money.MustMoney(base, min, 2), money.MustMoney(base, max, 2))
	require.NoError(t, err)
	rd, err := money.NewDecimal(rate, 8)
	require.NoError(t, err)
	r, err := money.NewExchangeRate(base, quote, rd)
	require.NoError(t, err)
	o, err := orderbook.NewOrder(side, pair, bounds, r, nil)
	require.NoError(t, err)

	return o
}

func zeroTolerance(t *testing.T) money.Decimal {
	t.Helper()
	d, err := money.NewDecimal("0", 2)
	require.NoError(t, err)

	return d
}

// TestEngine_MaxHopsZeroYieldsNoResults covers spec.md §8's boundary
// behaviour: maxHops=0 is a valid configuration, not a rejected input —
// the bootstrap state is expanded once (it sits at Hops==MaxHops and is
// never extended) and the search reports zero candidates, no breach.
func TestEngine_MaxHopsZeroYieldsNoResults(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "50", "150", "0.92")
	g, err := pathgraph.BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)

	eng, err := NewEngine(g, Config{MaxHops: 0, Tolerance: zeroTolerance(t), Guards: GuardLimits{MaxExpansions: 100, MaxVisitedStates: 100}})
	require.NoError(t, err)

	sc, err := pathgraph.NewSpendConstraints("USD", money.MustMoney("USD", "100", 2), money.MustMoney("USD", "100", 2), nil)
	require.NoError(t, err)

	sink := &sliceSink{}
	report, err := eng.Run("USD", "EUR", sc, nil, sink)
	require.NoError(t, err)
	assert.Empty(t, sink.got)
	assert.False(t, report.Breached.Any)
	assert.Equal(t, 1, report.Metrics.Expansions)
}

func TestEngine_DirectPath(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "50", "150", "0.92")
	g, err := pathgraph.BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)

	eng, err := NewEngine(g, Config{MaxHops: 1, Tolerance: zeroTolerance(t), Guards: GuardLimits{MaxExpansions: 100, MaxVisitedStates: 100}})
	require.NoError(t, err)

	sc, err := pathgraph.NewSpendConstraints("USD", money.MustMoney("USD", "100", 2), money.MustMoney("USD", "100", 2), nil)
	require.NoError(t, err)

	sink := &sliceSink{}
	report, err := eng.Run("USD", "EUR", sc, nil, sink)
	require.NoError(t, err)
	assert.False(t, report.Breached.Any)
	require.Len(t, sink.got, 1)
	assert.Equal(t, 1, sink.got[0].Hops)
	assert.Equal(t, "EUR", sink.got[0].PathEdges[0].To)
}

func TestEngine_HopLimitPrunesTwoHop(t *testing.T) {
	usdEur := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "1000", "0.90")
	usdGbp := mustOrder(t, orderbook.BUY, "USD", "GBP", "0", "1000", "0.80")
	gbpEur := mustOrder(t, orderbook.BUY, "GBP", "EUR", "0", "1000", "1.20")
	g, err := pathgraph.BuildGraph([]orderbook.Order{usdEur, usdGbp, gbpEur})
	require.NoError(t, err)

	eng, err := NewEngine(g, Config{MaxHops: 1, Tolerance: zeroTolerance(t), Guards: GuardLimits{MaxExpansions: 1000, MaxVisitedStates: 1000}})
	require.NoError(t, err)

	sc, err := pathgraph.NewSpendConstraints("USD", money.MustMoney("USD", "100", 2), money.MustMoney("USD", "100", 2), nil)
	require.NoError(t, err)

	sink := &sliceSink{}
	_, err = eng.Run("USD", "EUR", sc, nil, sink)
	require.NoError(t, err)
	require.Len(t, sink.got, 1)
	assert.Equal(t, 1, sink.got[0].Hops)
}

func TestEngine_TwoHopReachableWithHigherMaxHops(t *testing.T) {
	usdEur := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "1000", "0.90")
	usdGbp := mustOrder(t, orderbook.BUY, "USD", "GBP", "0", "1000", "0.80")
	gbpEur := mustOrder(t, orderbook.BUY, "GBP", "EUR", "0", "1000", "1.20")
	g, err := pathgraph.BuildGraph([]orderbook.Order{usdEur, usdGbp, gbpEur})
	require.NoError(t, err)

	eng, err := NewEngine(g, Config{MaxHops: 2, Tolerance: zeroTolerance(t), Guards: GuardLimits{MaxExpansions: 1000, MaxVisitedStates: 1000}})
	require.NoError(t, err)

	sc, err := pathgraph.NewSpendConstraints("USD", money.MustMoney("USD", "100", 2), money.MustMoney("USD", "100", 2), nil)
	require.NoError(t, err)

	sink := &sliceSink{}
	_, err = eng.Run("USD", "EUR", sc, nil, sink)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(sink.got), 1)

	var sawTwoHop bool
	for _, c := range sink.got {
		if c.Hops == 2 {
			sawTwoHop = true
		}
	}
	assert.True(t, sawTwoHop)
}

func TestEngine_GuardBreachStopsExpansion(t *testing.T) {
	var orders []orderbook.Order
	hubs := []string{"A1", "A2", "A3", "A4", "A5", "A6"}
	for _, h := range hubs {
		orders = append(orders, mustOrder(t, orderbook.BUY, "USD", h, "0", "1000", "0.9"))
		orders = append(orders, mustOrder(t, orderbook.BUY, h, "EUR", "0", "1000", "0.9"))
	}
	g, err := pathgraph.BuildGraph(orders)
	require.NoError(t, err)

	eng, err := NewEngine(g, Config{MaxHops: 3, Tolerance: zeroTolerance(t), Guards: GuardLimits{MaxExpansions: 5, MaxVisitedStates: 1000}})
	require.NoError(t, err)

	sc, err := pathgraph.NewSpendConstraints("USD", money.MustMoney("USD", "100", 2), money.MustMoney("USD", "100", 2), nil)
	require.NoError(t, err)

	sink := &sliceSink{}
	report, err := eng.Run("USD", "EUR", sc, nil, sink)
	require.NoError(t, err)
	assert.True(t, report.Breached.Expansions)
	assert.Equal(t, 5, report.Metrics.Expansions)
}
