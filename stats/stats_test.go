package stats

import (
	"testing"

	"github.com/rustyeddy/survival/journal"
	"github.com/stretchr/testify/assert"
)

func day(d int, mode, side string, pnl, equity float64, liq bool) journal.DayRecord {
	return journal.DayRecord{
		RunID:      "RUN1",
		Day:        d,
		Mode:       mode,
		Side:       side,
		Size:       0.3,
		Leverage:   5,
		PnL:        pnl,
		Equity:     equity,
		Liquidated: liq,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	days := []journal.DayRecord{
		day(1, "Trade", "Long", 200, 10200, false),
		day(2, "Study", "Flat", 0, 10201, false),
		day(3, "Trade", "Short", -300, 9901, false),
		day(4, "Trade", "Long", -3000, 6901, true),
		day(5, "Rest", "Flat", 0, 6902, false),
		day(6, "Trade", "Long", 100, 7002, false),
	}

	s := Summarize(days)

	assert.Equal(t, 6, s.Days)
	assert.InDelta(t, 7002, s.FinalEquity, 1e-9)
	assert.InDelta(t, 10201, s.PeakEquity, 1e-9)
	assert.Equal(t, 4, s.Trades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.Equal(t, 1, s.Liquidations)
	assert.InDelta(t, 200, s.BestDay, 1e-9)
	assert.InDelta(t, -3000, s.WorstDay, 1e-9)
	assert.InDelta(t, (10201.0-6901.0)/10201.0, s.MaxDrawdown, 1e-9)
}

func TestSummarizeNoTrades(t *testing.T) {
	t.Parallel()

	days := []journal.DayRecord{
		day(1, "Study", "Flat", 0, 10001, false),
		day(2, "Rest", "Flat", 0, 10002, false),
	}

	s := Summarize(days)

	assert.Equal(t, 0, s.Trades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.BestDay)
	assert.Zero(t, s.WorstDay)
}
