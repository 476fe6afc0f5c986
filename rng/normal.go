package rng

import "math"

// minUniform floors u1 so the transform never sees log(0).
const minUniform = 1e-12

// Normal returns one normally distributed sample via the Box–Muller
// transform. Each call consumes exactly two uniform draws; the paired second
// sample is discarded rather than cached, so the draw count per call is fixed
// and the stream stays reproducible.
func Normal(g *Gen, mean, sd float64) float64 {
	u1 := g.Next()
	if u1 < minUniform {
		u1 = minUniform
	}
	u2 := g.Next()
	return mean + sd*math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2)
}
