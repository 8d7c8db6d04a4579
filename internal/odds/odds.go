// Package odds holds the pure moneyline math: implied probabilities,
// vig removal, and the edge-to-confidence curve.
package odds

import "math"

// ImpliedProbability converts an American price to the market-implied
// win probability. Negative prices are favorites (stake to win 100),
// non-negative prices are underdogs (100 to win that amount). A price
// of exactly zero takes the non-negative branch and yields 1.0; real
// books never post it.
func ImpliedProbability(american float64) float64 {
	if american < 0 {
		return -american / (-american + 100)
	}
	return 100 / (american + 100)
}

// RemoveVig rescales a two-way probability pair so it sums to 1,
// stripping the bookmaker's margin. A zero sum degenerates to a
// coin flip.
func RemoveVig(pA, pB float64) (float64, float64) {
	s := pA + pB
	if s == 0 {
		return 0.5, 0.5
	}
	return pA / s, pB / s
}

// EdgeToConfidence maps a no-vig probability edge over 0.5 to an
// integer confidence in [1,10]. The curve starts at 3 for no edge,
// rises 1.5 points per five points of edge, and saturates at 10 so
// small edges are never overstated. Negative edges count as zero.
func EdgeToConfidence(edge float64) int {
	if edge < 0 {
		edge = 0
	}
	score := int(math.Round(3 + (edge/0.05)*1.5))
	return min(10, max(1, score))
}
