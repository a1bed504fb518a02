package markov

import "math"

// logSum returns log(eᵃ + eᵇ) without underflow: the larger operand is
// factored out and the remainder passes through Log1p. A −Inf operand
// is the identity element and returns the other operand directly,
// sidestepping exp(−Inf) arithmetic entirely.
func logSum(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a > b {
		return a + math.Log1p(math.Exp(b-a))
	}

	return b + math.Log1p(math.Exp(a-b))
}
