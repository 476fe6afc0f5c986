package runner

import (
	"testing"

	"github.com/rustyeddy/survival/journal"
	"github.com/rustyeddy/survival/session"
	"github.com/rustyeddy/survival/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJournal struct {
	days   []journal.DayRecord
	equity []journal.EquitySnapshot
	closed bool
}

func (j *testJournal) RecordDay(rec journal.DayRecord) error {
	j.days = append(j.days, rec)
	return nil
}

func (j *testJournal) RecordEquity(rec journal.EquitySnapshot) error {
	j.equity = append(j.equity, rec)
	return nil
}

func (j *testJournal) Close() error {
	j.closed = true
	return nil
}

func newRunner(seed uint32, days int, j journal.Journal) *Runner {
	return &Runner{
		Session: session.New(seed, sim.DefaultRules()),
		Journal: j,
		Days:    days,
		Policy: Policy{
			Action:   sim.Action{Side: sim.Long, Size: 0.3, Leverage: 5, StopLoss: 0.02, UseStop: true},
			Schedule: []sim.Mode{sim.Trade, sim.Trade, sim.Study, sim.Rest},
		},
	}
}

func TestRunJournalsEveryDay(t *testing.T) {
	t.Parallel()

	j := &testJournal{}
	res, err := newRunner(42, 20, j).Run()
	require.NoError(t, err)

	require.Len(t, j.days, 20)
	require.Len(t, j.equity, 20)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 21, res.Final.Day)
	assert.Equal(t, 20, res.Summary.Days)

	for i, rec := range j.days {
		assert.Equal(t, res.RunID, rec.RunID)
		assert.Equal(t, i+1, rec.Day)
	}
}

func TestRunScheduleCycles(t *testing.T) {
	t.Parallel()

	j := &testJournal{}
	_, err := newRunner(42, 8, j).Run()
	require.NoError(t, err)

	modes := []string{"Trade", "Trade", "Study", "Rest", "Trade", "Trade", "Study", "Rest"}
	for i, rec := range j.days {
		assert.Equal(t, modes[i], rec.Mode, "day %d", i+1)
	}

	// Non-trading days carry no exposure in the record.
	assert.Equal(t, "Flat", j.days[2].Side)
	assert.Equal(t, "Long", j.days[0].Side)
}

func TestRunDeterministicOutcomes(t *testing.T) {
	t.Parallel()

	ja := &testJournal{}
	jb := &testJournal{}

	ra, err := newRunner(7, 30, ja).Run()
	require.NoError(t, err)
	rb, err := newRunner(7, 30, jb).Run()
	require.NoError(t, err)

	assert.Equal(t, ra.Final, rb.Final)
	for i := range ja.days {
		assert.Equal(t, ja.days[i].PnL, jb.days[i].PnL, "day %d", i+1)
		assert.Equal(t, ja.days[i].Narrative, jb.days[i].Narrative, "day %d", i+1)
	}
}

func TestRunValidatesInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    *Runner
	}{
		{"nil_session", &Runner{Journal: &testJournal{}, Days: 1}},
		{"nil_journal", &Runner{Session: session.New(1, sim.DefaultRules()), Days: 1}},
		{"zero_days", newRunner(1, 0, &testJournal{})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.r.Run()
			assert.Error(t, err)
		})
	}
}

func TestPolicyModeFor(t *testing.T) {
	t.Parallel()

	empty := Policy{}
	assert.Equal(t, sim.Trade, empty.ModeFor(0))
	assert.Equal(t, sim.Trade, empty.ModeFor(100))

	p := Policy{Schedule: []sim.Mode{sim.Study, sim.Rest}}
	assert.Equal(t, sim.Study, p.ModeFor(0))
	assert.Equal(t, sim.Rest, p.ModeFor(1))
	assert.Equal(t, sim.Study, p.ModeFor(2))
}
