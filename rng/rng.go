// Package rng is the deterministic pseudo-random stream that drives the
// simulation. Every market outcome — regime transitions, daily returns, tail
// events, funding — is derived from a single sequentially-advanced generator,
// so a fixed seed plus a fixed sequence of actions reproduces a session
// bit-for-bit.
package rng

// Gen is a mulberry32 generator: 32 bits of state advanced by a fixed odd
// increment, then scrambled by multiply/xor-shift steps. Fast, reproducible,
// and not remotely cryptographic.
type Gen struct {
	state uint32
}

// New returns a generator seeded with the given 32-bit value. Any seed is
// valid, including zero.
func New(seed uint32) *Gen {
	return &Gen{state: seed}
}

// Next advances the stream and returns a uniform value in [0, 1).
func (g *Gen) Next() float64 {
	g.state += 0x6D2B79F5
	t := g.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// State returns the generator's current internal state. Seeding a new
// generator with it continues the exact same stream, which is how session
// snapshots resume mid-stream without replaying consumed draws.
func (g *Gen) State() uint32 {
	return g.state
}
