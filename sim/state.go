// Package sim is the day-resolution engine of the survival game. A session is
// a sequence of days; each day the player commits an Action (trade, study or
// rest) and the resolver draws a market outcome, settles P&L and updates the
// behavioral attributes that shape future days. The resolver is a pure
// transform over value-typed state: callers own their copies.
package sim

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/survival/regime"
)

// Side of the day's exposure.
type Side int

const (
	Flat Side = iota
	Long
	Short
)

func (s Side) String() string {
	switch s {
	case Flat:
		return "Flat"
	case Long:
		return "Long"
	case Short:
		return "Short"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide parses a case-insensitive side name.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "":
		return Flat, nil
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return Flat, fmt.Errorf("parse side: unknown side %q", s)
}

// Mode selects which behavior branch the resolver executes. Any mode other
// than Trade treats the action as flat regardless of its stored side/size.
type Mode int

const (
	Trade Mode = iota
	Study
	Rest
)

func (m Mode) String() string {
	switch m {
	case Trade:
		return "Trade"
	case Study:
		return "Study"
	case Rest:
		return "Rest"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trade", "":
		return Trade, nil
	case "study":
		return Study, nil
	case "rest":
		return Rest, nil
	}
	return Trade, fmt.Errorf("parse mode: unknown mode %q", s)
}

// Action is the player's order for a single day. Size and Leverage are
// defensively clamped by the resolver; the other fields are taken as given.
type Action struct {
	Side       Side    `json:"side" yaml:"side"`
	Size       float64 `json:"size" yaml:"size"`         // fraction of equity, clamped to [0,1]
	Leverage   float64 `json:"leverage" yaml:"leverage"` // clamped to [1, Rules.MaxLeverage]
	StopLoss   float64 `json:"stop_loss" yaml:"stop_loss"`
	TakeProfit float64 `json:"take_profit" yaml:"take_profit"`
	UseStop    bool    `json:"use_stop" yaml:"use_stop"`
	UseTake    bool    `json:"use_take" yaml:"use_take"`
}

// Rules are the immutable per-session market parameters. The engine trusts
// them to be finite; range validation happens at the config edge.
type Rules struct {
	MakerFee        float64 `json:"maker_fee" yaml:"maker_fee"` // per side
	TakerFee        float64 `json:"taker_fee" yaml:"taker_fee"` // per side
	UseMaker        bool    `json:"use_maker" yaml:"use_maker"`
	FundingMean     float64 `json:"funding_mean" yaml:"funding_mean"`
	FundingSD       float64 `json:"funding_sd" yaml:"funding_sd"`
	Maintenance     float64 `json:"maintenance" yaml:"maintenance"` // maintenance-margin fraction
	MaxLeverage     float64 `json:"max_leverage" yaml:"max_leverage"`
	BlackSwanProb   float64 `json:"black_swan_prob" yaml:"black_swan_prob"`
	BlackSwanImpact float64 `json:"black_swan_impact" yaml:"black_swan_impact"`
	GoodNewsProb    float64 `json:"good_news_prob" yaml:"good_news_prob"`
	GoodNewsImpact  float64 `json:"good_news_impact" yaml:"good_news_impact"`
}

// DefaultRules returns the baseline market parameters for a new session.
func DefaultRules() Rules {
	return Rules{
		MakerFee:        0.0002,
		TakerFee:        0.0005,
		UseMaker:        false,
		FundingMean:     0.0001,
		FundingSD:       0.0003,
		Maintenance:     0.05,
		MaxLeverage:     20,
		BlackSwanProb:   0.01,
		BlackSwanImpact: -0.25,
		GoodNewsProb:    0.01,
		GoodNewsImpact:  0.12,
	}
}

// Point is one (day, equity) sample of the equity curve.
type Point struct {
	Day    int     `json:"day"`
	Equity float64 `json:"equity"`
}

const (
	// InitialEquity is the account value a fresh session starts with.
	InitialEquity = 10000

	// SkillCap bounds the skill attribute; health/stress/discipline cap at 1.
	SkillCap = 0.5

	// HistoryCap bounds the equity curve to the most recent year of days.
	HistoryCap = 365

	// LogCap bounds the narrative log, most-recent-first.
	LogCap = 200
)

// State is the full session state. It is mutated only by the resolver, which
// returns a fresh copy; peak equity is a monotone high-water mark and equity
// is floored at zero.
type State struct {
	Day        int           `json:"day"`
	Equity     float64       `json:"equity"`
	PeakEquity float64       `json:"peak_equity"`
	CashRate   float64       `json:"cash_rate"` // idle daily yield on equity
	Regime     regime.Regime `json:"regime"`
	Health     float64       `json:"health"`
	Stress     float64       `json:"stress"`
	Discipline float64       `json:"discipline"`
	Skill      float64       `json:"skill"`
	Wins       int           `json:"wins"`
	Losses     int           `json:"losses"`
	History    []Point       `json:"history"`
	Log        []string      `json:"log"`
}

// NewState returns the day-one state: 10k equity, a choppy market and
// mid-range attributes.
func NewState() State {
	return State{
		Day:        1,
		Equity:     InitialEquity,
		PeakEquity: InitialEquity,
		CashRate:   0.0001,
		Regime:     regime.Choppy,
		Health:     0.5,
		Stress:     0.5,
		Discipline: 0.5,
		Skill:      0.25,
	}
}

// clone returns a copy of st with its own history and log backing arrays, so
// resolving a day never aliases the caller's slices.
func (st State) clone() State {
	out := st
	out.History = append([]Point(nil), st.History...)
	out.Log = append([]string(nil), st.Log...)
	return out
}
