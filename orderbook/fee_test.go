package orderbook

import (
	"testing"

	"github.com/katalvlaran/orderpath/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoFee(t *testing.T) {
	var f NoFee
	bd, err := f.Calculate(BUY, money.MustMoney("USD", "100", 2), money.MustMoney("EUR", "92", 2))
	require.NoError(t, err)
	assert.Nil(t, bd.BaseFee)
	assert.Nil(t, bd.QuoteFee)
	assert.Equal(t, "none", f.Fingerprint())
}

func TestPercentageFee(t *testing.T) {
	rate, _ := money.NewDecimal("0.001", 4)
	f := PercentageFee{BaseRate: &rate}
	bd, err := f.Calculate(BUY, money.MustMoney("USD", "100.00", 2), money.MustMoney("EUR", "92.00", 2))
	require.NoError(t, err)
	require.NotNil(t, bd.BaseFee)
	assert.Equal(t, "0.10", bd.BaseFee.Amount.String())
	assert.Nil(t, bd.QuoteFee)
}

func TestPercentageFee_FingerprintDeterministic(t *testing.T) {
	rate1, _ := money.NewDecimal("0.001", 4)
	rate2, _ := money.NewDecimal("0.001", 4)
	f1 := PercentageFee{BaseRate: &rate1}
	f2 := PercentageFee{BaseRate: &rate2}
	assert.Equal(t, f1.Fingerprint(), f2.Fingerprint())
	assert.NotEmpty(t, f1.Fingerprint())
	assert.LessOrEqual(t, len(f1.Fingerprint()), 255)
}

func TestFlatFee(t *testing.T) {
	flat := money.MustMoney("USD", "0.50", 2)
	f := FlatFee{BaseFlat: &flat}
	bd, err := f.Calculate(SELL, money.MustMoney("USD", "100", 2), money.MustMoney("EUR", "92", 2))
	require.NoError(t, err)
	require.NotNil(t, bd.BaseFee)
	assert.Equal(t, "0.50", bd.BaseFee.Amount.String())
}
