package provider

import (
	"math"
	"math/rand"
)

// Sample picks an index into a best-first-ranked candidate list of
// length l, biased toward 0 (the best candidate) by difficulty.
//
// Given u drawn uniformly from [0,1), it computes floor((u^k mod 1) * l)
// where k is difficulty's exponent. Raising u to a large power pushes
// the value toward zero for nearly all draws, so Hard difficulty
// overwhelmingly returns index 0; Easy (k=1) leaves the draw unbiased.
func Sample(l int, d Difficulty) int {
	if l <= 0 {
		return 0
	}
	u := rand.Float64()
	v := mod1(math.Pow(u, d.exponent()))
	idx := int(v * float64(l))
	if idx >= l {
		idx = l - 1
	}
	return idx
}

// mod1 guards against a fractional or negative exponent ever producing
// a value outside [0,1); not reachable with the fixed exponents
// Difficulty exposes today, but the pipeline's contract specifies it.
func mod1(v float64) float64 {
	r := v - math.Floor(v)
	return r
}
