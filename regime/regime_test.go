package regime

import (
	"testing"

	"github.com/rustyeddy/survival/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       Regime
		mean    float64
		sd      float64
		funding float64
	}{
		{"bull", Bull, 0.003, 0.02, 1},
		{"bear", Bear, -0.003, 0.02, -1},
		{"choppy", Choppy, 0, 0.015, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := tt.r.Params()
			assert.InDelta(t, tt.mean, p.MeanReturn, 1e-12)
			assert.InDelta(t, tt.sd, p.SD, 1e-12)
			assert.InDelta(t, tt.funding, p.FundingBias, 1e-12)
		})
	}
}

func TestTransitionRowsSumToOne(t *testing.T) {
	t.Parallel()

	for cur, row := range transitions {
		sum := 0.0
		for _, o := range row {
			sum += o.p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row for %s", cur)
	}
}

func TestTransitionBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cur  Regime
		x    float64
		want Regime
	}{
		{"bull_zero", Bull, 0, Bull},
		{"bull_stay_edge", Bull, 0.82, Bull},
		{"bull_to_choppy", Bull, 0.821, Choppy},
		{"bull_to_bear", Bull, 0.9999, Bear},
		{"bear_stay", Bear, 0.5, Bear},
		{"bear_to_bull", Bear, 0.97, Bull},
		{"choppy_stay", Choppy, 0.70, Choppy},
		{"choppy_to_bull", Choppy, 0.80, Bull},
		{"choppy_to_bear", Choppy, 0.90, Bear},
		{"fallback_above_sum", Bull, 1.5, Bull},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Transition(tt.cur, tt.x))
		})
	}
}

func TestStepEmpiricalDistribution(t *testing.T) {
	t.Parallel()

	g := rng.New(12345)
	n := 100000

	counts := map[Regime]int{}
	for i := 0; i < n; i++ {
		counts[Step(g, Bull)]++
	}

	require.Equal(t, n, counts[Bull]+counts[Choppy]+counts[Bear])
	assert.InDelta(t, 0.82, float64(counts[Bull])/float64(n), 0.01)
	assert.InDelta(t, 0.14, float64(counts[Choppy])/float64(n), 0.01)
	assert.InDelta(t, 0.04, float64(counts[Bear])/float64(n), 0.01)
}

func TestStepConsumesOneDraw(t *testing.T) {
	t.Parallel()

	a := rng.New(9)
	b := rng.New(9)

	Step(a, Choppy)
	b.Next()

	assert.Equal(t, b.State(), a.State())
}
