package risk

import (
	"github.com/shopspring/decimal"

	"github.com/tekoa-labs/riskcore/market"
)

// StopLossKind selects how the stop distance is derived.
type StopLossKind int

const (
	// StopFixedPips places the stop a fixed pip count from entry.
	StopFixedPips StopLossKind = iota
	// StopTechnical uses a price level resolved externally from chart
	// structure (swing high/low, S/R).
	StopTechnical
	// StopATRMultiple derives the distance from a supplied ATR value.
	StopATRMultiple
)

func (k StopLossKind) String() string {
	switch k {
	case StopFixedPips:
		return "fixed_pips"
	case StopTechnical:
		return "technical"
	case StopATRMultiple:
		return "atr_multiple"
	}
	return "unknown"
}

// StopLossSpec is a tagged variant; only the field matching Kind is read.
type StopLossSpec struct {
	Kind     StopLossKind
	Pips     decimal.Decimal // StopFixedPips
	Multiple decimal.Decimal // StopATRMultiple
}

func FixedPipsStop(pips decimal.Decimal) StopLossSpec {
	return StopLossSpec{Kind: StopFixedPips, Pips: pips}
}

func TechnicalStop() StopLossSpec {
	return StopLossSpec{Kind: StopTechnical}
}

func ATRMultipleStop(multiple decimal.Decimal) StopLossSpec {
	return StopLossSpec{Kind: StopATRMultiple, Multiple: multiple}
}

// TakeProfitKind selects how the take-profit price is derived.
type TakeProfitKind int

const (
	// TakeRiskReward places the target at ratio x the stop distance.
	TakeRiskReward TakeProfitKind = iota
	// TakeFixedPips places the target a fixed pip count from entry.
	TakeFixedPips
)

// TakeProfitSpec is a tagged variant; only the field matching Kind is read.
type TakeProfitSpec struct {
	Kind  TakeProfitKind
	Ratio decimal.Decimal // TakeRiskReward
	Pips  decimal.Decimal // TakeFixedPips
}

func RiskRewardTarget(ratio decimal.Decimal) *TakeProfitSpec {
	return &TakeProfitSpec{Kind: TakeRiskReward, Ratio: ratio}
}

func FixedPipsTarget(pips decimal.Decimal) *TakeProfitSpec {
	return &TakeProfitSpec{Kind: TakeFixedPips, Pips: pips}
}

// Limits are the portfolio-level gates a proposed trade must pass.
type Limits struct {
	MaxOpenPositions int
	MaxDailyLoss     decimal.Decimal
}

// Request carries everything needed to size one trade. Immutable once
// constructed; owned by the caller for the duration of a single call.
type Request struct {
	Instrument  string
	Side        market.Side
	EntryPrice  decimal.Decimal
	RiskPercent decimal.Decimal // percent of account balance, (0, 100]
	StopLoss    StopLossSpec
	TakeProfit  *TakeProfitSpec // optional
	Limits      Limits
}

// SizeResult is the outcome of a sizing call. Derived, never persisted here.
type SizeResult struct {
	Size            decimal.Decimal
	StopDistance    decimal.Decimal
	RiskAmount      decimal.Decimal
	TakeProfitPrice decimal.Decimal // zero when the request had no target
}

// PortfolioState is a fresh snapshot supplied per validation call. The engine
// holds no cross-call state; storage belongs to the caller.
type PortfolioState struct {
	OpenPositions     int
	RealizedLossToday decimal.Decimal // positive magnitude
	AccountBalance    decimal.Decimal
}
