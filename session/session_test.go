package session

import (
	"testing"

	"github.com/rustyeddy/survival/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(s *Session) sim.State {
	act := sim.Action{Side: sim.Long, Size: 0.3, Leverage: 5, StopLoss: 0.02, UseStop: true}
	return s.Step(act, sim.Trade, "").State
}

func TestSessionDeterministic(t *testing.T) {
	t.Parallel()

	a := New(7, sim.DefaultRules())
	b := New(7, sim.DefaultRules())

	for i := 0; i < 20; i++ {
		require.Equal(t, step(a), step(b), "day %d diverged", i)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(99, sim.DefaultRules())
	for i := 0; i < 5; i++ {
		step(s)
	}

	data, err := Encode(s.Snapshot())
	require.NoError(t, err)

	sn, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, s.Snapshot().Seed, sn.Seed)
	assert.Equal(t, s.State(), sn.State)
	assert.Equal(t, s.Rules(), sn.Rules)
}

func TestRestoreContinuesStream(t *testing.T) {
	t.Parallel()

	// One uninterrupted run.
	whole := New(123, sim.DefaultRules())
	for i := 0; i < 10; i++ {
		step(whole)
	}

	// Same run interrupted by a snapshot/restore at day five.
	first := New(123, sim.DefaultRules())
	for i := 0; i < 5; i++ {
		step(first)
	}

	data, err := Encode(first.Snapshot())
	require.NoError(t, err)
	sn, err := Decode(data)
	require.NoError(t, err)

	resumed := Restore(sn)
	for i := 0; i < 5; i++ {
		step(resumed)
	}

	assert.Equal(t, whole.State(), resumed.State())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}
