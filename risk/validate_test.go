package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTrade_Approves(t *testing.T) {
	t.Parallel()

	p := PortfolioState{
		OpenPositions:     2,
		RealizedLossToday: dec("120"),
		AccountBalance:    dec("10000"),
	}
	lim := Limits{MaxOpenPositions: 5, MaxDailyLoss: dec("500")}

	got, err := ValidateTrade(dec("100000"), p, lim)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("100000")), "approved size must pass through unchanged")
}

func TestValidateTrade_PositionLimit(t *testing.T) {
	t.Parallel()

	p := PortfolioState{OpenPositions: 5, RealizedLossToday: dec("0")}
	lim := Limits{MaxOpenPositions: 5, MaxDailyLoss: dec("500")}

	_, err := ValidateTrade(dec("1"), p, lim)
	assert.ErrorIs(t, err, ErrPositionLimitExceeded)
}

func TestValidateTrade_DailyLossLimit(t *testing.T) {
	t.Parallel()

	p := PortfolioState{OpenPositions: 0, RealizedLossToday: dec("500")}
	lim := Limits{MaxOpenPositions: 5, MaxDailyLoss: dec("500")}

	_, err := ValidateTrade(dec("1"), p, lim)
	assert.ErrorIs(t, err, ErrDailyLossLimitExceeded)
}

func TestValidateTrade_PositionLimitCheckedFirst(t *testing.T) {
	t.Parallel()

	// Both limits blown: the position-count violation must win so callers
	// get a deterministic first-failing reason.
	p := PortfolioState{OpenPositions: 9, RealizedLossToday: dec("9999")}
	lim := Limits{MaxOpenPositions: 5, MaxDailyLoss: dec("500")}

	_, err := ValidateTrade(dec("1"), p, lim)
	assert.ErrorIs(t, err, ErrPositionLimitExceeded)
	assert.NotErrorIs(t, err, ErrDailyLossLimitExceeded)
}

func TestValidateTrade_ZeroMaxOpenPositions(t *testing.T) {
	t.Parallel()

	// A zero limit means no new positions, ever.
	p := PortfolioState{OpenPositions: 0}
	lim := Limits{MaxOpenPositions: 0, MaxDailyLoss: dec("500")}

	_, err := ValidateTrade(dec("1"), p, lim)
	assert.ErrorIs(t, err, ErrPositionLimitExceeded)
}
