package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
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

func (j *SQLiteJournal) RecordDay(r DayRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO days
		(run_id, day, mode, side, size, leverage, regime_from, regime_to, pnl, equity, liquidated, narrative)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Day, r.Mode, r.Side, r.Size, r.Leverage,
		r.RegimeFrom, r.RegimeTo, r.PnL, r.Equity, r.Liquidated, r.Narrative,
	)
	return err
}

func (j *SQLiteJournal) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity
		(run_id, day, equity, peak, drawdown)
		VALUES (?, ?, ?, ?, ?)`,
		e.RunID, e.Day, e.Equity, e.Peak, e.Drawdown,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
