package journal

import "fmt"

// RunSummary is one row of ListRuns.
type RunSummary struct {
	RunID       string
	Days        int
	FinalEquity float64
}

// ListRuns returns every run in the journal, newest first. ULID run ids are
// time-sortable, so ordering by id orders by start time.
func (j *SQLiteJournal) ListRuns() ([]RunSummary, error) {
	rows, err := j.db.Query(`
		SELECT d.run_id, COUNT(*), e.equity
		FROM days d
		JOIN equity e ON e.run_id = d.run_id
			AND e.day = (SELECT MAX(day) FROM equity WHERE run_id = d.run_id)
		GROUP BY d.run_id
		ORDER BY d.run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Days, &r.FinalEquity); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListDaysByRun returns a run's days in increasing day order.
func (j *SQLiteJournal) ListDaysByRun(runID string) ([]DayRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, day, mode, side, size, leverage, regime_from, regime_to, pnl, equity, liquidated, narrative
		FROM days WHERE run_id = ? ORDER BY day ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("list days for run %q: %w", runID, err)
	}
	defer rows.Close()

	var out []DayRecord
	for rows.Next() {
		var r DayRecord
		err := rows.Scan(&r.RunID, &r.Day, &r.Mode, &r.Side, &r.Size, &r.Leverage,
			&r.RegimeFrom, &r.RegimeTo, &r.PnL, &r.Equity, &r.Liquidated, &r.Narrative)
		if err != nil {
			return nil, fmt.Errorf("list days for run %q: %w", runID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetDay returns a single resolved day of a run.
func (j *SQLiteJournal) GetDay(runID string, day int) (DayRecord, error) {
	var r DayRecord
	err := j.db.QueryRow(`
		SELECT run_id, day, mode, side, size, leverage, regime_from, regime_to, pnl, equity, liquidated, narrative
		FROM days WHERE run_id = ? AND day = ?`, runID, day).
		Scan(&r.RunID, &r.Day, &r.Mode, &r.Side, &r.Size, &r.Leverage,
			&r.RegimeFrom, &r.RegimeTo, &r.PnL, &r.Equity, &r.Liquidated, &r.Narrative)
	if err != nil {
		return DayRecord{}, fmt.Errorf("get day %d of run %q: %w", day, runID, err)
	}
	return r, nil
}
