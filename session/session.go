// Package session owns one play-through: the random stream, the evolving
// state and the immutable rules. It is the only place the three meet; callers
// hand it an action each day and get value copies back.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/survival/rng"
	"github.com/rustyeddy/survival/sim"
)

type Session struct {
	gen   *rng.Gen
	state sim.State
	rules sim.Rules
}

// New starts a session at the default day-one state.
func New(seed uint32, rules sim.Rules) *Session {
	return &Session{
		gen:   rng.New(seed),
		state: sim.NewState(),
		rules: rules,
	}
}

// NewWithState starts a session from an explicit state, for configured
// starting equity or restored play-throughs.
func NewWithState(seed uint32, st sim.State, rules sim.Rules) *Session {
	return &Session{
		gen:   rng.New(seed),
		state: st,
		rules: rules,
	}
}

// Step resolves one day and advances the session.
func (s *Session) Step(act sim.Action, mode sim.Mode, note string) sim.Outcome {
	out := sim.Resolve(s.gen, s.state, s.rules, act, mode, note)
	s.state = out.State
	return out
}

// State returns the current state. The value shares history/log backing
// arrays with the session, but the session never mutates them in place.
func (s *Session) State() sim.State { return s.state }

// Rules returns the session's market parameters.
func (s *Session) Rules() sim.Rules { return s.rules }

// Snapshot is the serializable record of a session. Seed holds the
// generator's current internal state rather than the original seed, so a
// restored session continues the exact random stream instead of replaying it.
type Snapshot struct {
	Seed  uint32    `json:"seed"`
	State sim.State `json:"state"`
	Rules sim.Rules `json:"rules"`
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Seed:  s.gen.State(),
		State: s.state,
		Rules: s.rules,
	}
}

// Restore rebuilds a session from a snapshot.
func Restore(sn Snapshot) *Session {
	return NewWithState(sn.Seed, sn.State, sn.Rules)
}

// Encode marshals a snapshot to JSON.
func Encode(sn Snapshot) ([]byte, error) {
	data, err := json.Marshal(sn)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode unmarshals a snapshot from JSON.
func Decode(data []byte) (Snapshot, error) {
	var sn Snapshot
	if err := json.Unmarshal(data, &sn); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return sn, nil
}
