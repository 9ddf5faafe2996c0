package logic

import (
	"context"
	"fmt"

	"github.com/scoreline/predictor/internal/models"
	"github.com/scoreline/predictor/internal/ratings"
)

// DefaultMaxGoals is the truncation bound used when a caller does not pick one
const DefaultMaxGoals = 6

// overUnderLine is the goal line reported in Markets
const overUnderLine = 2.5

// Params are the model constants shared by every prediction
type Params struct {
	BaseGoals     float64
	HomeAdvantage float64
}

// DefaultParams returns the standard model constants
func DefaultParams() Params {
	return Params{BaseGoals: DefaultBaseGoals, HomeAdvantage: DefaultHomeAdvantage}
}

// Engine predicts scorelines from a fixed rating table. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	table  *ratings.Table
	params Params
}

// NewEngine creates an engine over a fully built rating table
func NewEngine(table *ratings.Table, params Params) *Engine {
	return &Engine{table: table, params: params}
}

// Table returns the rating table backing the engine
func (e *Engine) Table() *ratings.Table { return e.table }

// Predict resolves both teams, builds the score matrix and summarizes it.
// Unknown teams get the default rating.
func (e *Engine) Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResult, error) {
	if req.MaxGoals < 0 {
		return nil, fmt.Errorf("predict %s vs %s: %w: got %d", req.Home, req.Away, ErrInvalidMaxGoals, req.MaxGoals)
	}

	homeRating, homeRes := e.table.Resolve(req.Home)
	awayRating, awayRes := e.table.Resolve(req.Away)

	xg := ComputeExpectedGoals(homeRating, awayRating, e.table.Meta(), e.params.HomeAdvantage, e.params.BaseGoals)

	matrix, err := NewScoreMatrix(xg.Home, xg.Away, req.MaxGoals)
	if err != nil {
		return nil, fmt.Errorf("predict %s vs %s: %w", req.Home, req.Away, err)
	}

	summary := Summarize(matrix)
	over, under := matrix.OverUnder(overUnderLine)

	teamResolutions.WithLabelValues(homeRes.String()).Inc()
	teamResolutions.WithLabelValues(awayRes.String()).Inc()
	predictionsComputed.Inc()

	return &models.PredictionResult{
		Home:     req.Home,
		Away:     req.Away,
		MaxGoals: req.MaxGoals,
		ExpectedGoals: models.ExpectedGoals{
			Home: xg.Home,
			Away: xg.Away,
		},
		MostLikelyScore: models.ScoreProbability{
			HomeGoals:   summary.MostLikely.HomeGoals,
			AwayGoals:   summary.MostLikely.AwayGoals,
			Probability: summary.MostLikely.Probability,
		},
		OutcomeProbabilities: models.OutcomeProbabilities{
			HomeWin: summary.HomeWin,
			Draw:    summary.Draw,
			AwayWin: summary.AwayWin,
		},
		Markets: models.Markets{
			Over2p5:        over,
			Under2p5:       under,
			BothTeamsScore: matrix.BothTeamsToScore(),
		},
		Resolution: models.TeamResolution{
			Home: homeRes.String(),
			Away: awayRes.String(),
		},
		ScoreMatrix: matrix.Cells,
	}, nil
}
