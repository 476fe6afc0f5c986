// Package regime models the latent market state as a three-state Markov
// chain. Each regime carries a daily return distribution and a funding-rate
// bias; transitions are drawn from an explicit ordered probability table so
// the walk is reproducible from the random stream alone.
package regime

import (
	"fmt"

	"github.com/rustyeddy/survival/rng"
)

// Regime is the latent market state.
type Regime int

const (
	Bull Regime = iota
	Bear
	Choppy
)

func (r Regime) String() string {
	switch r {
	case Bull:
		return "Bull"
	case Bear:
		return "Bear"
	case Choppy:
		return "Choppy"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Params describe the daily return distribution and funding bias of a regime.
type Params struct {
	MeanReturn  float64
	SD          float64
	FundingBias float64
}

// Params returns the distribution parameters for r. Unknown values fall back
// to Choppy, the neutral regime.
func (r Regime) Params() Params {
	switch r {
	case Bull:
		return Params{MeanReturn: 0.003, SD: 0.02, FundingBias: 1}
	case Bear:
		return Params{MeanReturn: -0.003, SD: 0.02, FundingBias: -1}
	default:
		return Params{MeanReturn: 0, SD: 0.015, FundingBias: 0}
	}
}

// outcome is one entry of a transition row. Rows are ordered slices, not
// maps: the cumulative walk in Transition depends on a fixed iteration order.
type outcome struct {
	to Regime
	p  float64
}

var transitions = map[Regime][]outcome{
	Bull:   {{Bull, 0.82}, {Choppy, 0.14}, {Bear, 0.04}},
	Bear:   {{Bear, 0.82}, {Choppy, 0.14}, {Bull, 0.04}},
	Choppy: {{Choppy, 0.70}, {Bull, 0.15}, {Bear, 0.15}},
}

// Transition walks cur's outcome row in order, accumulating probabilities,
// and returns the first outcome whose cumulative probability reaches x. If
// rounding error leaves x above the final cumulative sum, cur is returned
// unchanged; the transition never fails.
func Transition(cur Regime, x float64) Regime {
	cum := 0.0
	for _, o := range transitions[cur] {
		cum += o.p
		if cum >= x {
			return o.to
		}
	}
	return cur
}

// Step draws one uniform value from g and applies Transition. Exactly one
// draw is consumed per call.
func Step(g *rng.Gen, cur Regime) Regime {
	return Transition(cur, g.Next())
}
