package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoreline/predictor/internal/models"
	"github.com/scoreline/predictor/internal/ratings"
)

func newTestEngine(t *testing.T, teams map[string]ratings.TeamRating, params Params) *Engine {
	t.Helper()
	table, err := ratings.NewTable(teams, ratings.Meta{AvgAttack: 1.0, AvgDefense: 1.0})
	require.NoError(t, err)
	return NewEngine(table, params)
}

func TestEngine_Predict_UnknownTeams(t *testing.T) {
	engine := newTestEngine(t, map[string]ratings.TeamRating{
		"Default": {Attack: 1.0, Defense: 1.0},
	}, DefaultParams())

	res, err := engine.Predict(context.Background(), models.PredictRequest{Home: "A", Away: "B", MaxGoals: DefaultMaxGoals})
	require.NoError(t, err)

	assert.Equal(t, "A", res.Home)
	assert.Equal(t, "B", res.Away)
	assert.Equal(t, models.TeamResolution{Home: "default", Away: "default"}, res.Resolution)
	assert.InDelta(t, 1.512, res.ExpectedGoals.Home, 1e-9)
	assert.InDelta(t, 1.35, res.ExpectedGoals.Away, 1e-9)
	assert.Equal(t, 1, res.MostLikelyScore.HomeGoals)
	assert.Equal(t, 1, res.MostLikelyScore.AwayGoals)
	assert.Greater(t, res.OutcomeProbabilities.HomeWin, res.OutcomeProbabilities.AwayWin)

	out := res.OutcomeProbabilities
	assert.InDelta(t, 1.0, out.HomeWin+out.Draw+out.AwayWin, 1e-6)
	assert.InDelta(t, 1.0, res.Markets.Over2p5+res.Markets.Under2p5, 1e-6)
	require.Len(t, res.ScoreMatrix, 7)
	assert.Len(t, res.ScoreMatrix[0], 7)
}

func TestEngine_Predict_SwapIsSymmetric(t *testing.T) {
	engine := newTestEngine(t, map[string]ratings.TeamRating{
		"Paris_SG":    {Attack: 1.6, Defense: 0.7},
		"Real_Madrid": {Attack: 1.4, Defense: 0.9},
	}, Params{BaseGoals: DefaultBaseGoals, HomeAdvantage: 1.0})

	ctx := context.Background()
	ab, err := engine.Predict(ctx, models.PredictRequest{Home: "Paris SG", Away: "Real Madrid", MaxGoals: 6})
	require.NoError(t, err)
	ba, err := engine.Predict(ctx, models.PredictRequest{Home: "Real Madrid", Away: "Paris SG", MaxGoals: 6})
	require.NoError(t, err)

	assert.InDelta(t, ab.OutcomeProbabilities.HomeWin, ba.OutcomeProbabilities.AwayWin, 1e-12)
	assert.InDelta(t, ab.OutcomeProbabilities.AwayWin, ba.OutcomeProbabilities.HomeWin, 1e-12)
	assert.InDelta(t, ab.OutcomeProbabilities.Draw, ba.OutcomeProbabilities.Draw, 1e-12)
	assert.Equal(t, "normalized", ab.Resolution.Home)
}

func TestEngine_Predict_HomeAdvantage(t *testing.T) {
	engine := newTestEngine(t, map[string]ratings.TeamRating{
		"Lyon":      {Attack: 1.2, Defense: 1.0},
		"Marseille": {Attack: 1.2, Defense: 1.0},
	}, DefaultParams())

	res, err := engine.Predict(context.Background(), models.PredictRequest{Home: "Lyon", Away: "Marseille", MaxGoals: 6})
	require.NoError(t, err)
	assert.Greater(t, res.ExpectedGoals.Home, res.ExpectedGoals.Away)
	assert.Greater(t, res.OutcomeProbabilities.HomeWin, res.OutcomeProbabilities.AwayWin)
}

func TestEngine_Predict_Errors(t *testing.T) {
	engine := newTestEngine(t, map[string]ratings.TeamRating{
		"Giants": {Attack: 1e6, Defense: 1.0},
	}, DefaultParams())
	ctx := context.Background()

	_, err := engine.Predict(ctx, models.PredictRequest{Home: "A", Away: "B", MaxGoals: -1})
	assert.True(t, errors.Is(err, ErrInvalidMaxGoals))

	_, err = engine.Predict(ctx, models.PredictRequest{Home: "Giants", Away: "B", MaxGoals: 6})
	assert.True(t, errors.Is(err, ErrDegenerateMatrix))
}

func TestEngine_Predict_ZeroRatings(t *testing.T) {
	engine := newTestEngine(t, map[string]ratings.TeamRating{
		"Nobody": {Attack: 0, Defense: 0},
	}, DefaultParams())

	res, err := engine.Predict(context.Background(), models.PredictRequest{Home: "Nobody", Away: "Nobody", MaxGoals: 6})
	require.NoError(t, err)
	assert.Equal(t, LambdaFloor, res.ExpectedGoals.Home)
	assert.Equal(t, LambdaFloor, res.ExpectedGoals.Away)
	assert.Equal(t, 0, res.MostLikelyScore.HomeGoals)
	assert.Equal(t, 0, res.MostLikelyScore.AwayGoals)
}
