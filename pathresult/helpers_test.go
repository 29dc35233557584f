package pathresult

import (
	"testing"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/katalvlaran/orderpath/pathgraph"
	"github.com/katalvlaran/orderpath/search"
	"github.com/stretchr/testify/require"
)

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

func mustGraph(t *testing.T, orders ...orderbook.Order) *pathgraph.Graph {
	t.Helper()
	g, err := pathgraph.BuildGraph(orders)
	require.NoError(t, err)

	return g
}

func mustEngine(t *testing.T, g *pathgraph.Graph, maxHops int, tolerance string) *search.Engine {
	t.Helper()
	tol, err := money.NewDecimal(tolerance, 2)
	require.NoError(t, err)
	eng, err := search.NewEngine(g, search.Config{
		MaxHops:   maxHops,
		Tolerance: tol,
		Guards:    search.GuardLimits{MaxExpansions: 1000, MaxVisitedStates: 1000},
	})
	require.NoError(t, err)

	return eng
}
