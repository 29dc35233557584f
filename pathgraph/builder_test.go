package pathgraph

import (
	"testing"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, side orderbook.Side, base, quote, min, max, rate string, fee orderbook.FeePolicy) orderbook.Order {
	t.Helper()
	pair, err := orderbook.NewAssetPair(base, quote)
	require.NoError(t, err)
	bounds, err := orderbook.NewOrderBounds(money.MustMoney(base, min, 2), money.MustMoney(base, max, 2))
	require.NoError(t, err)
	rd, err := money.NewDecimal(rate, 8)
	require.NoError(t, err)
	r, err := money.NewExchangeRate(base, quote, rd)
	require.NoError(t, err)
	o, err := orderbook.NewOrder(side, pair, bounds, r, fee)
	require.NoError(t, err)

	return o
}

func TestBuildGraph_SingleOrder(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "10", "100", "0.92", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)
	require.Len(t, g.Edges(), 1)

	e := g.Edges()[0]
	assert.Equal(t, "USD", e.From)
	assert.Equal(t, "EUR", e.To)
	assert.Equal(t, "10.00", e.BaseCapacity.Min.Amount.String())
	assert.Equal(t, "100.00", e.BaseCapacity.Max.Amount.String())

	node, ok := g.Node("USD")
	require.True(t, ok)
	require.Len(t, node.Out, 1)
}

func TestBuildGraph_EmptyOrdersYieldsEmptyGraph(t *testing.T) {
	g, err := BuildGraph(nil)
	require.NoError(t, err)
	require.Len(t, g.Edges(), 0)
	require.Len(t, g.Currencies(), 0)
}

func TestBuildGraph_SegmentsMandatoryThenOptional(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "10", "100", "0.92", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)

	segs := g.Edges()[0].Segments
	require.Len(t, segs, 2)
	assert.True(t, segs[0].Mandatory)
	assert.False(t, segs[1].Mandatory)
	assert.Equal(t, "0.00", segs[0].BaseInterval.Min.Amount.String())
	assert.Equal(t, "10.00", segs[0].BaseInterval.Max.Amount.String())
	assert.Equal(t, "10.00", segs[1].BaseInterval.Min.Amount.String())
	assert.Equal(t, "100.00", segs[1].BaseInterval.Max.Amount.String())
}

func TestBuildGraph_ZeroMinOrderHasOneOptionalSegment(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "50", "0.92", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)

	segs := g.Edges()[0].Segments
	require.Len(t, segs, 1)
	assert.False(t, segs[0].Mandatory)
}

func TestBuildGraph_SellSideDirection(t *testing.T) {
	o := mustOrder(t, orderbook.SELL, "USD", "EUR", "10", "100", "0.92", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)

	e := g.Edges()[0]
	assert.Equal(t, "EUR", e.From)
	assert.Equal(t, "USD", e.To)
}

func TestBuildGraph_CanonicalOrderDeterministic(t *testing.T) {
	o1 := mustOrder(t, orderbook.BUY, "USD", "EUR", "1", "10", "0.9", nil)
	o2 := mustOrder(t, orderbook.BUY, "USD", "GBP", "1", "10", "0.8", nil)
	g, err := BuildGraph([]orderbook.Order{o1, o2})
	require.NoError(t, err)

	node, ok := g.Node("USD")
	require.True(t, ok)
	require.Len(t, node.Out, 2)
	assert.Equal(t, "EUR", node.Out[0].To)
	assert.Equal(t, "GBP", node.Out[1].To)
}

func TestBuildGraph_FeeAffectsGrossBaseCapacity(t *testing.T) {
	rate, _ := money.NewDecimal("0.001", 4)
	fee := orderbook.PercentageFee{BaseRate: &rate}
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "100", "0.92", fee)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)

	e := g.Edges()[0]
	// gross spend at max = 100 + 0.1% * 100 = 100.10
	assert.Equal(t, "100.10", e.GrossBaseCapacity.Max.Amount.String())
}
