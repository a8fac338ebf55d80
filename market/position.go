package market

import "github.com/shopspring/decimal"

// Side is the trade direction: +1 long, -1 short.
type Side int

const (
	Long  Side = 1
	Short Side = -1
)

func (s Side) String() string {
	switch s {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return "unknown"
}

// OpenPosition is a read-only snapshot of a live position, supplied by the
// caller's portfolio store. The risk engine never mutates these.
type OpenPosition struct {
	Instrument   string
	Side         Side
	Units        decimal.Decimal
	EntryPrice   decimal.Decimal
	CurrentPrice decimal.Decimal
	StopPrice    decimal.Decimal // zero when no stop is attached
	UnrealizedPL decimal.Decimal
}

// Exposure is the notional value of the position at the current price.
func (p OpenPosition) Exposure() decimal.Decimal {
	return p.Units.Abs().Mul(p.CurrentPrice)
}

// RiskIfStopped is the loss taken if the stop is hit, zero when no stop is set.
func (p OpenPosition) RiskIfStopped() decimal.Decimal {
	if p.StopPrice.IsZero() {
		return decimal.Zero
	}
	return p.EntryPrice.Sub(p.StopPrice).Abs().Mul(p.Units.Abs())
}
