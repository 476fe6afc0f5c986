package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVJournal struct {
	days   *csv.Writer
	equity *csv.Writer
	df, ef *os.File
}

func NewCSV(daysPath, equityPath string) (*CSVJournal, error) {
	df, err := os.Create(daysPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		df.Close()
		return nil, err
	}

	dw := csv.NewWriter(df)
	ew := csv.NewWriter(ef)

	if err := dw.Write([]string{"run_id", "day", "mode", "side", "size", "leverage", "regime_from", "regime_to", "pnl", "equity", "liquidated", "narrative"}); err != nil {
		return nil, err
	}
	if err := ew.Write([]string{"run_id", "day", "equity", "peak", "drawdown"}); err != nil {
		return nil, err
	}

	dw.Flush()
	if err := dw.Error(); err != nil {
		return nil, err
	}
	ew.Flush()
	if err := ew.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{dw, ew, df, ef}, nil
}

func (j *CSVJournal) RecordDay(r DayRecord) error {
	err := j.days.Write([]string{
		r.RunID,
		strconv.Itoa(r.Day),
		r.Mode,
		r.Side,
		f(r.Size),
		f(r.Leverage),
		r.RegimeFrom,
		r.RegimeTo,
		f(r.PnL),
		f(r.Equity),
		strconv.FormatBool(r.Liquidated),
		r.Narrative,
	})
	if err != nil {
		return err
	}
	j.days.Flush()
	return j.days.Error()
}

func (j *CSVJournal) RecordEquity(e EquitySnapshot) error {
	err := j.equity.Write([]string{
		e.RunID,
		strconv.Itoa(e.Day),
		f(e.Equity),
		f(e.Peak),
		f(e.Drawdown),
	})
	if err != nil {
		return err
	}
	j.equity.Flush()
	return j.equity.Error()
}

func (j *CSVJournal) Close() error {
	j.days.Flush()
	if err := j.days.Error(); err != nil {
		return err
	}
	j.equity.Flush()
	if err := j.equity.Error(); err != nil {
		return err
	}

	if err := j.df.Close(); err != nil {
		return err
	}
	return j.ef.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
