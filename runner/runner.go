// Package runner drives a session headlessly for a fixed number of days
// under a scripted policy, journaling every resolved day. It is the batch
// counterpart of an interactive play-through.
package runner

import (
	"fmt"

	"github.com/rustyeddy/survival/journal"
	"github.com/rustyeddy/survival/pkg/id"
	"github.com/rustyeddy/survival/session"
	"github.com/rustyeddy/survival/sim"
	"github.com/rustyeddy/survival/stats"
)

// Policy scripts the player: a fixed action and a mode schedule that cycles
// day over day. An empty schedule trades every day.
type Policy struct {
	Action   sim.Action
	Schedule []sim.Mode
}

// ModeFor returns the mode for a zero-based day index.
func (p Policy) ModeFor(i int) sim.Mode {
	if len(p.Schedule) == 0 {
		return sim.Trade
	}
	return p.Schedule[i%len(p.Schedule)]
}

// Result is what a finished run reports.
type Result struct {
	RunID   string
	Final   sim.State
	Summary stats.Summary
}

// Runner executes one run. Journal may be journal.Discard.
type Runner struct {
	Session *session.Session
	Journal journal.Journal
	Policy  Policy
	Days    int
}

// Run resolves Days successive days, records each to the journal, and
// returns the run summary.
func (r *Runner) Run() (Result, error) {
	if r.Session == nil {
		return Result{}, fmt.Errorf("runner: Session is required")
	}
	if r.Journal == nil {
		return Result{}, fmt.Errorf("runner: Journal is required")
	}
	if r.Days <= 0 {
		return Result{}, fmt.Errorf("runner: Days must be positive (got %d)", r.Days)
	}

	runID := id.New()
	records := make([]journal.DayRecord, 0, r.Days)

	for i := 0; i < r.Days; i++ {
		mode := r.Policy.ModeFor(i)
		day := r.Session.State().Day

		out := r.Session.Step(r.Policy.Action, mode, "")
		st := out.State

		side := r.Policy.Action.Side
		if mode != sim.Trade {
			side = sim.Flat
		}

		rec := journal.DayRecord{
			RunID:      runID,
			Day:        day,
			Mode:       mode.String(),
			Side:       side.String(),
			Size:       r.Policy.Action.Size,
			Leverage:   r.Policy.Action.Leverage,
			RegimeFrom: out.RegimeFrom.String(),
			RegimeTo:   out.RegimeTo.String(),
			PnL:        out.PnL,
			Equity:     st.Equity,
			Liquidated: out.Liquidated,
			Narrative:  st.Log[0],
		}
		if err := r.Journal.RecordDay(rec); err != nil {
			return Result{}, fmt.Errorf("record day %d: %w", day, err)
		}

		dd := 0.0
		if st.PeakEquity > 0 {
			dd = (st.PeakEquity - st.Equity) / st.PeakEquity
		}
		snap := journal.EquitySnapshot{
			RunID:    runID,
			Day:      day,
			Equity:   st.Equity,
			Peak:     st.PeakEquity,
			Drawdown: dd,
		}
		if err := r.Journal.RecordEquity(snap); err != nil {
			return Result{}, fmt.Errorf("record equity day %d: %w", day, err)
		}

		records = append(records, rec)
	}

	return Result{
		RunID:   runID,
		Final:   r.Session.State(),
		Summary: stats.Summarize(records),
	}, nil
}
