package risk

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tekoa-labs/riskcore/market"
)

var hundred = decimal.NewFromInt(100)

// ComputePositionSize turns account risk parameters and a resolved stop
// distance into a position size.
//
// riskAmount = balance x riskPercent/100, size = riskAmount / stopDistance
// floored to the instrument lot step, so rounding only ever reduces risk.
// Pure function: no side effects, identical inputs give identical output.
func ComputePositionSize(req Request, balance, stopDistance decimal.Decimal) (SizeResult, error) {
	if req.RiskPercent.Sign() <= 0 || req.RiskPercent.Cmp(hundred) > 0 {
		return SizeResult{}, fmt.Errorf("%w: got %s", ErrInvalidRiskPercentage, req.RiskPercent)
	}
	if stopDistance.Sign() <= 0 {
		return SizeResult{}, fmt.Errorf("%w: got %s", ErrZeroStopDistance, stopDistance)
	}

	meta, err := market.Lookup(req.Instrument)
	if err != nil {
		return SizeResult{}, err
	}

	riskAmount := balance.Mul(req.RiskPercent).Div(hundred)
	size := riskAmount.Div(stopDistance).Div(meta.LotStep).Floor().Mul(meta.LotStep)

	res := SizeResult{
		Size:         size,
		StopDistance: stopDistance,
		RiskAmount:   riskAmount,
	}

	if req.TakeProfit != nil {
		tp, err := takeProfitPrice(*req.TakeProfit, req.Side, req.EntryPrice, stopDistance, meta.PipSize())
		if err != nil {
			return SizeResult{}, err
		}
		res.TakeProfitPrice = tp
	}

	return res, nil
}

func takeProfitPrice(spec TakeProfitSpec, side market.Side, entry, stopDistance, pipSize decimal.Decimal) (decimal.Decimal, error) {
	var dist decimal.Decimal
	switch spec.Kind {
	case TakeRiskReward:
		if spec.Ratio.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("take profit ratio must be positive, got %s", spec.Ratio)
		}
		dist = stopDistance.Mul(spec.Ratio)
	case TakeFixedPips:
		if spec.Pips.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("take profit pips must be positive, got %s", spec.Pips)
		}
		dist = spec.Pips.Mul(pipSize)
	default:
		return decimal.Zero, fmt.Errorf("unknown take profit kind %d", spec.Kind)
	}

	if side == market.Short {
		return entry.Sub(dist), nil
	}
	return entry.Add(dist), nil
}
