package journal

import (
	"encoding/csv"
	"os"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	header := []string{
		"id", "time", "instrument", "side", "outcome", "reason",
		"size", "stop_distance", "risk_amount", "take_profit_price",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordDecision(r DecisionRecord) error {
	row := []string{
		r.ID,
		r.Time.UTC().Format(time.RFC3339Nano),
		r.Instrument,
		r.Side,
		r.Outcome,
		r.Reason,
		r.Size.String(),
		r.StopDistance.String(),
		r.RiskAmount.String(),
		r.TakeProfitPrice.String(),
	}
	if err := j.w.Write(row); err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}
