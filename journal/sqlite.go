package journal

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordDecision(r DecisionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO decisions
		(id, time, instrument, side, outcome, reason, size, stop_distance, risk_amount, take_profit_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time.UTC(), r.Instrument, r.Side, r.Outcome, r.Reason,
		r.Size.String(), r.StopDistance.String(), r.RiskAmount.String(), r.TakeProfitPrice.String(),
	)
	return err
}

// ListDecisions returns the most recent records, newest first. An empty
// instrument matches all.
func (j *SQLiteJournal) ListDecisions(ctx context.Context, instrument string, limit int) ([]DecisionRecord, error) {
	query := `
		SELECT id, time, instrument, side, outcome, reason, size, stop_distance, risk_amount, take_profit_price
		FROM decisions`
	args := []any{}
	if instrument != "" {
		query += ` WHERE instrument = ?`
		args = append(args, instrument)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DecisionRecord
	for rows.Next() {
		var r DecisionRecord
		var ts time.Time
		var size, stop, riskAmt, tp string
		if err := rows.Scan(&r.ID, &ts, &r.Instrument, &r.Side, &r.Outcome, &r.Reason,
			&size, &stop, &riskAmt, &tp); err != nil {
			return nil, err
		}
		r.Time = ts
		if r.Size, err = decimal.NewFromString(size); err != nil {
			return nil, err
		}
		if r.StopDistance, err = decimal.NewFromString(stop); err != nil {
			return nil, err
		}
		if r.RiskAmount, err = decimal.NewFromString(riskAmt); err != nil {
			return nil, err
		}
		if r.TakeProfitPrice, err = decimal.NewFromString(tp); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
