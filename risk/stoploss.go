package risk

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tekoa-labs/riskcore/market"
)

// MarketContext carries externally resolved market data a stop spec may need.
// The engine does no I/O; ATR and technical levels arrive from the caller's
// indicator/chart collaborators.
type MarketContext struct {
	PipSize        decimal.Decimal
	ATR            decimal.Decimal // StopATRMultiple
	TechnicalLevel decimal.Decimal // StopTechnical
}

// ResolveStopDistance converts a stop-loss spec into an absolute price
// distance from entry. The returned distance is always positive.
func ResolveStopDistance(spec StopLossSpec, side market.Side, entry decimal.Decimal, mkt MarketContext) (decimal.Decimal, error) {
	switch spec.Kind {
	case StopFixedPips:
		if spec.Pips.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("%w: pips must be positive, got %s", ErrInvalidStopLoss, spec.Pips)
		}
		if mkt.PipSize.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("%w: pip size must be positive, got %s", ErrInvalidStopLoss, mkt.PipSize)
		}
		return spec.Pips.Mul(mkt.PipSize), nil

	case StopATRMultiple:
		if spec.Multiple.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("%w: atr multiple must be positive, got %s", ErrInvalidStopLoss, spec.Multiple)
		}
		if mkt.ATR.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("%w: atr must be positive, got %s", ErrInvalidStopLoss, mkt.ATR)
		}
		return mkt.ATR.Mul(spec.Multiple), nil

	case StopTechnical:
		level := mkt.TechnicalLevel
		if level.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("%w: technical level not supplied", ErrInvalidStopLoss)
		}
		// The stop must sit on the losing side of entry: below for a long,
		// above for a short. A stop at entry is equally invalid.
		switch side {
		case market.Long:
			if level.Cmp(entry) >= 0 {
				return decimal.Zero, fmt.Errorf("%w: long stop %s must be below entry %s", ErrInvalidStopLoss, level, entry)
			}
		case market.Short:
			if level.Cmp(entry) <= 0 {
				return decimal.Zero, fmt.Errorf("%w: short stop %s must be above entry %s", ErrInvalidStopLoss, level, entry)
			}
		default:
			return decimal.Zero, fmt.Errorf("%w: side must be long or short", ErrInvalidStopLoss)
		}
		return entry.Sub(level).Abs(), nil
	}

	return decimal.Zero, fmt.Errorf("%w: unknown stop kind %d", ErrInvalidStopLoss, spec.Kind)
}
