// journal/journal.go
package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tekoa-labs/riskcore/risk"
)

const (
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
)

// DecisionRecord is one sizing/gating outcome. Decimals are stored as text so
// nothing is lost to float conversion on the way through a backend.
type DecisionRecord struct {
	ID         string
	Time       time.Time
	Instrument string
	Side       string
	Outcome    string
	Reason     string

	Size            decimal.Decimal
	StopDistance    decimal.Decimal
	RiskAmount      decimal.Decimal
	TakeProfitPrice decimal.Decimal
}

// FromDecision builds a record from an engine decision.
func FromDecision(id string, now time.Time, instrument, side string, d risk.Decision) DecisionRecord {
	rec := DecisionRecord{
		ID:         id,
		Time:       now,
		Instrument: instrument,
		Side:       side,

		Size:            d.Result.Size,
		StopDistance:    d.Result.StopDistance,
		RiskAmount:      d.Result.RiskAmount,
		TakeProfitPrice: d.Result.TakeProfitPrice,
	}
	if d.Allowed {
		rec.Outcome = OutcomeApproved
	} else {
		rec.Outcome = OutcomeRejected
		rec.Reason = d.Reason
	}
	return rec
}

type Journal interface {
	RecordDecision(DecisionRecord) error
	Close() error
}

// Nop discards records; used when journaling is configured off.
type Nop struct{}

func (Nop) RecordDecision(DecisionRecord) error { return nil }
func (Nop) Close() error                        { return nil }
