package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekoa-labs/riskcore/pricing"
)

func constantRangeCandles(n int, rng float64) []pricing.Candle {
	candles := make([]pricing.Candle, n)
	for i := range candles {
		// Flat closes so the true range is exactly high-low.
		candles[i] = pricing.Candle{
			Open:  1.0,
			High:  1.0 + rng/2,
			Low:   1.0 - rng/2,
			Close: 1.0,
		}
	}
	return candles
}

func TestATRFunc_ConstantRange(t *testing.T) {
	t.Parallel()

	candles := constantRangeCandles(20, 0.0010)
	atr, err := ATRFunc(candles, 14)
	require.NoError(t, err)
	assert.InDelta(t, 0.0010, atr, 1e-9)
}

func TestATRFunc_Errors(t *testing.T) {
	t.Parallel()

	_, err := ATRFunc(constantRangeCandles(5, 0.001), 14)
	assert.Error(t, err)

	_, err = ATRFunc(constantRangeCandles(20, 0.001), 0)
	assert.Error(t, err)
}

func TestATR_StreamingMatchesBatch(t *testing.T) {
	t.Parallel()

	candles := []pricing.Candle{
		{Open: 1.1000, High: 1.1020, Low: 1.0990, Close: 1.1010},
		{Open: 1.1010, High: 1.1035, Low: 1.1000, Close: 1.1030},
		{Open: 1.1030, High: 1.1040, Low: 1.1010, Close: 1.1015},
		{Open: 1.1015, High: 1.1025, Low: 1.0995, Close: 1.1000},
		{Open: 1.1000, High: 1.1010, Low: 1.0980, Close: 1.0990},
		{Open: 1.0990, High: 1.1005, Low: 1.0985, Close: 1.1000},
		{Open: 1.1000, High: 1.1030, Low: 1.0995, Close: 1.1025},
	}

	batch, err := ATRFunc(candles, 3)
	require.NoError(t, err)

	streaming := NewATR(3)
	for _, c := range candles {
		streaming.Update(c)
	}

	assert.True(t, streaming.Ready())
	assert.InDelta(t, batch, streaming.Value(), 1e-12)
}

func TestATR_NotReadyDuringWarmup(t *testing.T) {
	t.Parallel()

	a := NewATR(14)
	assert.False(t, a.Ready())
	assert.Zero(t, a.Value())

	a.Update(pricing.Candle{High: 1.01, Low: 1.00, Close: 1.005})
	assert.False(t, a.Ready())
}
