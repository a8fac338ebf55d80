package risk

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateTrade gates a proposed size against portfolio limits and returns the
// size unchanged on approval.
//
// Check order is fixed: position count before daily loss, so simultaneous
// violations always report the same first-failing reason.
func ValidateTrade(size decimal.Decimal, p PortfolioState, lim Limits) (decimal.Decimal, error) {
	if p.OpenPositions >= lim.MaxOpenPositions {
		return decimal.Zero, fmt.Errorf("%w: open %d >= max %d",
			ErrPositionLimitExceeded, p.OpenPositions, lim.MaxOpenPositions)
	}
	if p.RealizedLossToday.Cmp(lim.MaxDailyLoss) >= 0 {
		return decimal.Zero, fmt.Errorf("%w: realized %s >= max %s",
			ErrDailyLossLimitExceeded, p.RealizedLossToday, lim.MaxDailyLoss)
	}
	return size, nil
}
