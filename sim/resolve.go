package sim

import (
	"math"

	"github.com/rustyeddy/survival/regime"
	"github.com/rustyeddy/survival/rng"
)

const (
	// skillEdge is the mean-return bonus per unit of skill on days with an
	// open exposure.
	skillEdge = 0.0015

	// maxSkillGain bounds the raw skill gain of a single Study day, before
	// the diminishing-returns scaling.
	maxSkillGain = 0.03
)

// Outcome bundles the new state with the day's realized numbers that the
// state alone does not retain, for journaling and summaries.
type Outcome struct {
	State      State
	PnL        float64
	Liquidated bool
	RegimeFrom regime.Regime
	RegimeTo   regime.Regime
	Traded     bool
}

// ResolveDay resolves one day and returns the new state. It is a pure
// function of its arguments plus the generator's stream: the input state is
// never mutated, and the draw order is fixed (regime, base return, black
// swan, good news, funding, then one extra draw on Study days), so a fixed
// seed and action sequence reproduces a session exactly.
func ResolveDay(g *rng.Gen, st State, rules Rules, act Action, mode Mode, note string) State {
	return Resolve(g, st, rules, act, mode, note).State
}

// Resolve is ResolveDay with the day's realized numbers attached.
func Resolve(g *rng.Gen, st State, rules Rules, act Action, mode Mode, note string) Outcome {
	next := st.clone()

	// Non-trade modes carry no exposure regardless of the stored action.
	side := act.Side
	if mode != Trade {
		side = Flat
	}

	size := clamp(act.Size, 0, 1)
	lev := clamp(act.Leverage, 1, rules.MaxLeverage)
	trading := mode == Trade && side != Flat && size > 0

	// Regime transition. The day's return is drawn from the regime the
	// market moved into.
	next.Regime = regime.Step(g, st.Regime)
	params := next.Regime.Params()

	// Base return. Skill only gives an edge with an open exposure.
	mean := params.MeanReturn
	if trading {
		mean += st.Skill * skillEdge
	}
	ret := rng.Normal(g, mean, params.SD)

	// Tail events: independent, additive, both may fire the same day.
	if g.Next() < rules.BlackSwanProb {
		ret += rules.BlackSwanImpact
	}
	if g.Next() < rules.GoodNewsProb {
		ret += rules.GoodNewsImpact
	}

	// Funding: longs pay the drawn rate, shorts receive it.
	funding := rng.Normal(g, rules.FundingMean*params.FundingBias, rules.FundingSD)
	signedFunding := 0.0
	switch side {
	case Long:
		signedFunding = funding
	case Short:
		signedFunding = -funding
	}

	// Stop/take clip the realized return before anything else looks at it.
	if trading {
		if act.UseStop && ret < -act.StopLoss {
			ret = -act.StopLoss
		}
		if act.UseTake && ret > act.TakeProfit {
			ret = act.TakeProfit
		}
	}

	// Liquidation is evaluated on the post-clip return.
	liquidated := trading && liquidates(side, ret, rules.Maintenance, lev)

	notional := st.Equity * size * lev
	feePerSide := rules.TakerFee
	if rules.UseMaker {
		feePerSide = rules.MakerFee
	}
	roundTripFee := feePerSide * 2 * notional
	fundingFee := math.Abs(notional) * math.Abs(signedFunding)

	pnl := 0.0
	switch {
	case mode == Study:
		// Raw gain is clamped first, then the updated skill; the two-step
		// clamp is load-bearing at the cap boundary.
		gain := clamp(g.Next()*maxSkillGain, 0, maxSkillGain)
		next.Skill = clamp(st.Skill+gain*(1-st.Skill), 0, SkillCap)
		next.Discipline = clamp(st.Discipline+0.02, 0, 1)
		next.Stress = clamp(st.Stress-0.08, 0, 1)
		next.Health = clamp(st.Health+0.02, 0, 1)

	case mode == Rest:
		next.Stress = clamp(st.Stress-0.15, 0, 1)
		next.Health = clamp(st.Health+0.08, 0, 1)
		next.Discipline = clamp(st.Discipline+0.01, 0, 1)

	case trading:
		penalty := (0.10*st.Stress + 0.05*(1-st.Health)) * (lev / rules.MaxLeverage) * (1 - st.Discipline)
		adj := ret - penalty

		if liquidated {
			// Total loss of committed margin.
			pnl = -st.Equity * size
			next.Losses++
			next.Stress = clamp(st.Stress+0.2, 0, 1)
			next.Health = clamp(st.Health-0.05, 0, 1)
		} else {
			dir := 1.0
			if side == Short {
				dir = -1
			}
			pnl = notional*adj*dir - roundTripFee - fundingFee

			stressDelta := (lev / rules.MaxLeverage) * 0.03
			if pnl >= 0 {
				next.Wins++
				stressDelta -= 0.03
			} else {
				next.Losses++
				stressDelta += 0.05
			}
			next.Stress = clamp(st.Stress+stressDelta, 0, 1)
		}
	}

	// Settlement: idle cash yield, equity floored at zero, peak is a
	// high-water mark.
	prior := st.Equity
	equity := prior + pnl + prior*st.CashRate
	if equity < 0 {
		equity = 0
	}
	next.Equity = equity
	next.PeakEquity = math.Max(st.PeakEquity, equity)
	next.Day = st.Day + 1

	next.History = append(next.History, Point{Day: st.Day, Equity: equity})
	if n := len(next.History); n > HistoryCap {
		next.History = next.History[n-HistoryCap:]
	}

	line := narrate(dayStory{
		day:        st.Day,
		from:       st.Regime,
		to:         next.Regime,
		mode:       mode,
		side:       side,
		size:       size,
		lev:        lev,
		trading:    trading,
		liquidated: liquidated,
		prior:      prior,
		delta:      equity - prior,
	})
	next.Log = prependLog(next.Log, line, note)

	return Outcome{
		State:      next,
		PnL:        pnl,
		Liquidated: liquidated,
		RegimeFrom: st.Regime,
		RegimeTo:   next.Regime,
		Traded:     trading,
	}
}

// liquidates reports whether a position survives the day's realized return.
// The liquidation move is the price change that consumes the maintenance
// margin at the given leverage.
func liquidates(side Side, ret, maintenance, leverage float64) bool {
	liqMove := (1 - maintenance) / leverage
	switch side {
	case Long:
		return ret <= -liqMove
	case Short:
		return ret >= liqMove
	}
	return false
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
