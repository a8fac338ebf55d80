package risk

import (
	"github.com/shopspring/decimal"

	"github.com/tekoa-labs/riskcore/market"
)

// MetricsSummary is a point-in-time view of portfolio risk.
type MetricsSummary struct {
	OpenPositions int
	TotalExposure decimal.Decimal
	UnrealizedPL  decimal.Decimal

	// LargestPositionRiskPct is the biggest single-position stop-out loss as
	// a percentage of account balance; zero when no position carries a stop
	// or the balance is not positive.
	LargestPositionRiskPct decimal.Decimal
	LargestRiskInstrument  string
}

// AggregateRiskMetrics summarizes exposure across open positions. Read-only:
// the snapshot is never mutated.
func AggregateRiskMetrics(positions []market.OpenPosition, accountBalance decimal.Decimal) MetricsSummary {
	s := MetricsSummary{OpenPositions: len(positions)}

	var largestRisk decimal.Decimal
	for _, p := range positions {
		s.TotalExposure = s.TotalExposure.Add(p.Exposure())
		s.UnrealizedPL = s.UnrealizedPL.Add(p.UnrealizedPL)

		if r := p.RiskIfStopped(); r.Cmp(largestRisk) > 0 {
			largestRisk = r
			s.LargestRiskInstrument = p.Instrument
		}
	}

	if accountBalance.Sign() > 0 && largestRisk.Sign() > 0 {
		s.LargestPositionRiskPct = largestRisk.Div(accountBalance).Mul(hundred)
	}

	return s
}
