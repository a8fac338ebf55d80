package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekoa-labs/riskcore/market"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolveStopDistance_FixedPips(t *testing.T) {
	t.Parallel()

	mkt := MarketContext{PipSize: dec("0.0001")}

	got, err := ResolveStopDistance(FixedPipsStop(dec("10")), market.Long, dec("1.0850"), mkt)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("0.0010")), "got %s", got)

	_, err = ResolveStopDistance(FixedPipsStop(dec("0")), market.Long, dec("1.0850"), mkt)
	assert.ErrorIs(t, err, ErrInvalidStopLoss)

	_, err = ResolveStopDistance(FixedPipsStop(dec("10")), market.Long, dec("1.0850"), MarketContext{})
	assert.ErrorIs(t, err, ErrInvalidStopLoss)
}

func TestResolveStopDistance_ATRMultiple(t *testing.T) {
	t.Parallel()

	mkt := MarketContext{ATR: dec("0.0008")}

	got, err := ResolveStopDistance(ATRMultipleStop(dec("1.5")), market.Long, dec("1.0850"), mkt)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("0.0012")), "got %s", got)

	_, err = ResolveStopDistance(ATRMultipleStop(dec("-2")), market.Long, dec("1.0850"), mkt)
	assert.ErrorIs(t, err, ErrInvalidStopLoss)

	_, err = ResolveStopDistance(ATRMultipleStop(dec("1.5")), market.Long, dec("1.0850"), MarketContext{})
	assert.ErrorIs(t, err, ErrInvalidStopLoss)
}

func TestResolveStopDistance_Technical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		side    market.Side
		entry   string
		level   string
		want    string
		wantErr bool
	}{
		{"long stop below entry", market.Long, "1.0850", "1.0800", "0.0050", false},
		{"short stop above entry", market.Short, "1.0850", "1.0900", "0.0050", false},
		{"long stop above entry", market.Long, "1.0850", "1.0900", "", true},
		{"short stop below entry", market.Short, "1.0850", "1.0800", "", true},
		{"stop at entry", market.Long, "1.0850", "1.0850", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mkt := MarketContext{TechnicalLevel: dec(tt.level)}
			got, err := ResolveStopDistance(TechnicalStop(), tt.side, dec(tt.entry), mkt)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStopLoss)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestResolveStopDistance_TechnicalMissingLevel(t *testing.T) {
	t.Parallel()

	_, err := ResolveStopDistance(TechnicalStop(), market.Long, dec("1.0850"), MarketContext{})
	assert.ErrorIs(t, err, ErrInvalidStopLoss)
}
