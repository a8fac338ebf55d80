// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	instrument TEXT NOT NULL,
	side TEXT NOT NULL,
	outcome TEXT NOT NULL,
	reason TEXT NOT NULL,
	size TEXT NOT NULL,
	stop_distance TEXT NOT NULL,
	risk_amount TEXT NOT NULL,
	take_profit_price TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_instrument ON decisions(instrument);
CREATE INDEX IF NOT EXISTS idx_decisions_time ON decisions(time);
`
