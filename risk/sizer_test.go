package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekoa-labs/riskcore/market"
)

func eurUsdRequest(riskPct string) Request {
	return Request{
		Instrument:  "EUR_USD",
		Side:        market.Long,
		EntryPrice:  dec("1.0850"),
		RiskPercent: dec(riskPct),
	}
}

func TestComputePositionSize_Scenario(t *testing.T) {
	t.Parallel()

	// 10 pips on EUR_USD, $10k balance, 1% risk: $100 risked over 0.0010
	// distance gives 100,000 units.
	got, err := ComputePositionSize(eurUsdRequest("1"), dec("10000"), dec("0.0010"))
	require.NoError(t, err)

	assert.True(t, got.RiskAmount.Equal(dec("100")), "risk amount %s", got.RiskAmount)
	assert.True(t, got.Size.Equal(dec("100000")), "size %s", got.Size)
	assert.True(t, got.StopDistance.Equal(dec("0.0010")))
	assert.True(t, got.TakeProfitPrice.IsZero())
}

func TestComputePositionSize_RiskPercentageBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		riskPct string
		wantErr bool
	}{
		{"zero", "0", true},
		{"negative", "-1", true},
		{"over hundred", "100.01", true},
		{"hundred", "100", false},
		{"tiny", "0.01", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ComputePositionSize(eurUsdRequest(tt.riskPct), dec("10000"), dec("0.0010"))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRiskPercentage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputePositionSize_ZeroStopDistance(t *testing.T) {
	t.Parallel()

	_, err := ComputePositionSize(eurUsdRequest("1"), dec("10000"), decimal.Zero)
	assert.ErrorIs(t, err, ErrZeroStopDistance)

	_, err = ComputePositionSize(eurUsdRequest("1"), dec("10000"), dec("-0.001"))
	assert.ErrorIs(t, err, ErrZeroStopDistance)
}

func TestComputePositionSize_UnknownInstrument(t *testing.T) {
	t.Parallel()

	req := eurUsdRequest("1")
	req.Instrument = "XAU_XAG"
	_, err := ComputePositionSize(req, dec("10000"), dec("0.0010"))
	assert.Error(t, err)
}

func TestComputePositionSize_RoundingNeverIncreasesRisk(t *testing.T) {
	t.Parallel()

	// Awkward stop distances force flooring; realized risk must stay at or
	// below the budgeted amount.
	stops := []string{"0.0007", "0.0013", "0.0029", "0.00031"}
	for _, s := range stops {
		got, err := ComputePositionSize(eurUsdRequest("1"), dec("10000"), dec(s))
		require.NoError(t, err)

		realized := got.Size.Mul(got.StopDistance)
		assert.True(t, realized.Cmp(got.RiskAmount) <= 0,
			"stop %s: realized %s exceeds budget %s", s, realized, got.RiskAmount)
	}
}

func TestComputePositionSize_FlooredToLotStep(t *testing.T) {
	t.Parallel()

	// BTC_USD has a 0.001 lot step.
	req := Request{
		Instrument:  "BTC_USD",
		Side:        market.Long,
		EntryPrice:  dec("60000"),
		RiskPercent: dec("1"),
	}
	got, err := ComputePositionSize(req, dec("10000"), dec("750"))
	require.NoError(t, err)

	// 100 / 750 = 0.1333... -> 0.133
	assert.True(t, got.Size.Equal(dec("0.133")), "size %s", got.Size)
}

func TestComputePositionSize_Idempotent(t *testing.T) {
	t.Parallel()

	a, err := ComputePositionSize(eurUsdRequest("2.5"), dec("12345.67"), dec("0.0017"))
	require.NoError(t, err)
	b, err := ComputePositionSize(eurUsdRequest("2.5"), dec("12345.67"), dec("0.0017"))
	require.NoError(t, err)

	assert.True(t, a.Size.Equal(b.Size))
	assert.True(t, a.RiskAmount.Equal(b.RiskAmount))
	assert.True(t, a.StopDistance.Equal(b.StopDistance))
}

func TestComputePositionSize_TakeProfit(t *testing.T) {
	t.Parallel()

	t.Run("risk reward long", func(t *testing.T) {
		t.Parallel()
		req := eurUsdRequest("1")
		req.TakeProfit = RiskRewardTarget(dec("2"))
		got, err := ComputePositionSize(req, dec("10000"), dec("0.0010"))
		require.NoError(t, err)
		assert.True(t, got.TakeProfitPrice.Equal(dec("1.0870")), "tp %s", got.TakeProfitPrice)
	})

	t.Run("risk reward short", func(t *testing.T) {
		t.Parallel()
		req := eurUsdRequest("1")
		req.Side = market.Short
		req.TakeProfit = RiskRewardTarget(dec("2"))
		got, err := ComputePositionSize(req, dec("10000"), dec("0.0010"))
		require.NoError(t, err)
		assert.True(t, got.TakeProfitPrice.Equal(dec("1.0830")), "tp %s", got.TakeProfitPrice)
	})

	t.Run("fixed pips", func(t *testing.T) {
		t.Parallel()
		req := eurUsdRequest("1")
		req.TakeProfit = FixedPipsTarget(dec("25"))
		got, err := ComputePositionSize(req, dec("10000"), dec("0.0010"))
		require.NoError(t, err)
		assert.True(t, got.TakeProfitPrice.Equal(dec("1.0875")), "tp %s", got.TakeProfitPrice)
	})

	t.Run("invalid ratio", func(t *testing.T) {
		t.Parallel()
		req := eurUsdRequest("1")
		req.TakeProfit = RiskRewardTarget(dec("0"))
		_, err := ComputePositionSize(req, dec("10000"), dec("0.0010"))
		assert.Error(t, err)
	})
}
