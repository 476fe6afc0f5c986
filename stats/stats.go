// Package stats summarizes a finished run from its journaled day records.
package stats

import (
	"github.com/samber/lo"

	"github.com/rustyeddy/survival/journal"
)

// Summary is the post-run report printed by the CLI.
type Summary struct {
	Days         int
	FinalEquity  float64
	PeakEquity   float64
	MaxDrawdown  float64 // fraction of peak
	Trades       int
	Wins         int
	Losses       int
	WinRate      float64
	Liquidations int
	BestDay      float64
	WorstDay     float64
}

// Summarize folds a run's day records, in day order, into a Summary.
func Summarize(days []journal.DayRecord) Summary {
	if len(days) == 0 {
		return Summary{}
	}

	trades := lo.Filter(days, func(d journal.DayRecord, _ int) bool {
		return d.Mode == "Trade" && d.Side != "Flat" && d.Size > 0
	})
	wins := lo.CountBy(trades, func(d journal.DayRecord) bool { return d.PnL >= 0 })

	s := Summary{
		Days:         len(days),
		FinalEquity:  days[len(days)-1].Equity,
		Trades:       len(trades),
		Wins:         wins,
		Losses:       len(trades) - wins,
		Liquidations: lo.CountBy(days, func(d journal.DayRecord) bool { return d.Liquidated }),
	}
	if s.Trades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Trades)
		best := lo.MaxBy(trades, func(a, b journal.DayRecord) bool { return a.PnL > b.PnL })
		worst := lo.MinBy(trades, func(a, b journal.DayRecord) bool { return a.PnL < b.PnL })
		s.BestDay = best.PnL
		s.WorstDay = worst.PnL
	}

	// Peak and max drawdown from the equity curve.
	peak, maxDD := 0.0, 0.0
	for _, d := range days {
		if d.Equity > peak {
			peak = d.Equity
		}
		if peak > 0 {
			if dd := (peak - d.Equity) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	s.PeakEquity = peak
	s.MaxDrawdown = maxDD

	return s
}
