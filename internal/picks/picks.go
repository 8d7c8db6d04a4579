// Package picks derives moneyline, total, and run-line recommendations
// from raw market numbers. All derivations are pure: identical quotes
// produce identical picks.
package picks

import (
	"math"
	"strconv"

	"github.com/dugoutlabs/slate-cli/internal/model"
	"github.com/dugoutlabs/slate-cli/internal/odds"
)

// Side identifies which side of the moneyline the market favors.
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// RunLineSide identifies the recommended run-line position.
type RunLineSide string

const (
	RunLineFavorite RunLineSide = "FAV -1.5"
	RunLineUnderdog RunLineSide = "DOG +1.5"
)

const (
	// NoEdge marks a total market too close to a coin flip to act on.
	NoEdge           = "No Edge"
	noEdgeConfidence = 2

	// totalEdgeThreshold is the minimum no-vig edge for a total pick.
	totalEdgeThreshold = 0.02

	// runLineThreshold is the no-vig favorite probability above which
	// laying 1.5 runs is worth it. Higher than 0.5 because the run
	// line needs a larger edge than a straight moneyline.
	runLineThreshold = 0.62
)

// Moneyline picks the side with the higher no-vig probability. Home
// wins ties. Returns the side, its confidence, and the favorite's
// no-vig probability, which the run-line derivation consumes.
func Moneyline(mlHome, mlAway float64) (Side, int, float64) {
	pHome, pAway := odds.RemoveVig(
		odds.ImpliedProbability(mlHome),
		odds.ImpliedProbability(mlAway),
	)
	if pHome >= pAway {
		return SideHome, odds.EdgeToConfidence(pHome - 0.5), pHome
	}
	return SideAway, odds.EdgeToConfidence(pAway - 0.5), pAway
}

// Total picks over or under from the posted prices. Edges below the
// threshold are not actionable and come back as a neutral NoEdge pick
// with a fixed low confidence.
func Total(total, overPrice, underPrice float64) (string, int) {
	pOver, pUnder := odds.RemoveVig(
		odds.ImpliedProbability(overPrice),
		odds.ImpliedProbability(underPrice),
	)
	edge := math.Abs(pOver - 0.5)
	if edge < totalEdgeThreshold {
		return NoEdge, noEdgeConfidence
	}
	if pOver > pUnder {
		return "Over " + formatLine(total), odds.EdgeToConfidence(edge)
	}
	return "Under " + formatLine(total), odds.EdgeToConfidence(edge)
}

// RunLine recommends a run-line position from the favorite's no-vig
// moneyline probability. Strong favorites lay 1.5 runs; otherwise the
// underdog takes the cushion, with confidence discounted one point and
// floored at 2.
func RunLine(favProb float64) (RunLineSide, int) {
	if favProb >= runLineThreshold {
		return RunLineFavorite, odds.EdgeToConfidence(favProb - 0.5)
	}
	conf := odds.EdgeToConfidence(runLineThreshold-favProb) - 1
	if conf < noEdgeConfidence {
		conf = noEdgeConfidence
	}
	return RunLineUnderdog, conf
}

// Derive composes the three derivations for one quote, rendering the
// sides as team-coded labels ("NYY ML", "BOS -1.5", "TB +1.5").
func Derive(q model.MarketQuote, away, home string) model.Picks {
	side, confML, favProb := Moneyline(q.MLHome, q.MLAway)
	ml := away + " ML"
	if side == SideHome {
		ml = home + " ML"
	}

	tot, confTot := NoEdge, noEdgeConfidence
	if q.Total != nil {
		tot, confTot = Total(*q.Total, q.OverPrice, q.UnderPrice)
	}

	rlSide, confRL := RunLine(favProb)
	var rl string
	switch {
	case rlSide == RunLineFavorite && side == SideHome:
		rl = home + " -1.5"
	case rlSide == RunLineFavorite:
		rl = away + " -1.5"
	case side == SideHome:
		rl = away + " +1.5"
	default:
		rl = home + " +1.5"
	}

	return model.Picks{
		Moneyline:     ml,
		MoneylineConf: confML,
		Total:         tot,
		TotalConf:     confTot,
		RunLine:       rl,
		RunLineConf:   confRL,
	}
}

func formatLine(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
