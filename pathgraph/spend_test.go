package pathgraph

import (
	"testing"

	"github.com/katalvlaran/orderpath/money"
	"github.com/katalvlaran/orderpath/orderbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRange_BuyMapsForward(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "100", "0.5", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)
	edge := g.Edges()[0]

	sc, err := NewSpendConstraints("USD", money.MustMoney("USD", "0", 2), money.MustMoney("USD", "100", 2), nil)
	require.NoError(t, err)

	next, err := sc.ProjectRange(edge)
	require.NoError(t, err)
	assert.Equal(t, "EUR", next.Currency)
	assert.Equal(t, "0.00000000", next.Min.Amount.String())
	assert.Equal(t, "50.00000000", next.Max.Amount.String())
}

func TestProjectRange_WrongCurrencyErrors(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "0", "100", "0.5", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)
	edge := g.Edges()[0]

	sc, err := NewSpendConstraints("EUR", money.MustMoney("EUR", "0", 2), money.MustMoney("EUR", "10", 2), nil)
	require.NoError(t, err)

	_, err = sc.ProjectRange(edge)
	require.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestProjectRange_NoOverlapProducesEmpty(t *testing.T) {
	o := mustOrder(t, orderbook.BUY, "USD", "EUR", "50", "100", "0.5", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)
	edge := g.Edges()[0]

	sc, err := NewSpendConstraints("USD", money.MustMoney("USD", "0", 2), money.MustMoney("USD", "10", 2), nil)
	require.NoError(t, err)

	next, err := sc.ProjectRange(edge)
	require.NoError(t, err)
	empty, err := next.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestProjectRange_SellInvertsRate(t *testing.T) {
	o := mustOrder(t, orderbook.SELL, "USD", "EUR", "0", "100", "0.5", nil)
	g, err := BuildGraph([]orderbook.Order{o})
	require.NoError(t, err)
	edge := g.Edges()[0] // From=EUR, To=USD

	sc, err := NewSpendConstraints("EUR", money.MustMoney("EUR", "0", 2), money.MustMoney("EUR", "50", 2), nil)
	require.NoError(t, err)

	next, err := sc.ProjectRange(edge)
	require.NoError(t, err)
	assert.Equal(t, "USD", next.Currency)
	// inverse rate of 0.5 is 2.0: 50 EUR -> 100 USD
	assert.Equal(t, "100.00000000", next.Max.Amount.String())
}
