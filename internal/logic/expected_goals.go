package logic

import (
	"math"

	"github.com/scoreline/predictor/internal/ratings"
)

const (
	// DefaultBaseGoals is the league-average goals scored per team per match
	DefaultBaseGoals = 1.35
	// DefaultHomeAdvantage multiplies the home side's expected goals
	DefaultHomeAdvantage = 1.12
	// LambdaFloor keeps both Poisson means strictly positive
	LambdaFloor = 0.05
)

// ExpectedGoals holds the Poisson mean goals for each side
type ExpectedGoals struct {
	Home float64
	Away float64
}

// ComputeExpectedGoals converts two ratings into expected-goals rates.
// Home advantage applies to the home side only. Both rates are clamped to
// LambdaFloor.
func ComputeExpectedGoals(home, away ratings.TeamRating, meta ratings.Meta, homeAdvantage, baseGoals float64) ExpectedGoals {
	lambdaHome := baseGoals * (home.Attack / meta.AvgAttack) * (away.Defense / meta.AvgDefense) * homeAdvantage
	lambdaAway := baseGoals * (away.Attack / meta.AvgAttack) * (home.Defense / meta.AvgDefense)

	return ExpectedGoals{
		Home: clampLambda(lambdaHome),
		Away: clampLambda(lambdaAway),
	}
}

func clampLambda(v float64) float64 {
	if math.IsNaN(v) || v < LambdaFloor {
		return LambdaFloor
	}
	return v
}
