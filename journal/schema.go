// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS days (
	run_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	mode TEXT NOT NULL,
	side TEXT NOT NULL,
	size REAL NOT NULL,
	leverage REAL NOT NULL,
	regime_from TEXT NOT NULL,
	regime_to TEXT NOT NULL,
	pnl REAL NOT NULL,
	equity REAL NOT NULL,
	liquidated INTEGER NOT NULL,
	narrative TEXT NOT NULL,
	PRIMARY KEY (run_id, day)
);

CREATE TABLE IF NOT EXISTS equity (
	run_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	equity REAL NOT NULL,
	peak REAL NOT NULL,
	drawdown REAL NOT NULL,
	PRIMARY KEY (run_id, day)
);

CREATE INDEX IF NOT EXISTS idx_days_run ON days(run_id);
CREATE INDEX IF NOT EXISTS idx_equity_run ON equity(run_id);
`
