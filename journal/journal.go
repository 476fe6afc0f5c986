// Package journal records resolved days and equity snapshots for a headless
// run, to CSV files or a SQLite database.
package journal

// DayRecord is one resolved day of a run.
type DayRecord struct {
	RunID      string
	Day        int
	Mode       string
	Side       string
	Size       float64
	Leverage   float64
	RegimeFrom string
	RegimeTo   string
	PnL        float64
	Equity     float64
	Liquidated bool
	Narrative  string
}

// EquitySnapshot is the account view after one resolved day.
type EquitySnapshot struct {
	RunID    string
	Day      int
	Equity   float64
	Peak     float64
	Drawdown float64 // fraction below peak
}

type Journal interface {
	RecordDay(DayRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Discard drops everything; interactive sessions without persistence use it.
type Discard struct{}

func (Discard) RecordDay(DayRecord) error         { return nil }
func (Discard) RecordEquity(EquitySnapshot) error { return nil }
func (Discard) Close() error                      { return nil }
