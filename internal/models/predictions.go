package models

// ExpectedGoals holds the Poisson means for each side
type ExpectedGoals struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// ScoreProbability is a single exact scoreline and its probability
type ScoreProbability struct {
	HomeGoals   int     `json:"home_goals"`
	AwayGoals   int     `json:"away_goals"`
	Probability float64 `json:"probability"`
}

// OutcomeProbabilities are the aggregate 1X2 probabilities
type OutcomeProbabilities struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// Markets are secondary probabilities derived from the score matrix
type Markets struct {
	Over2p5        float64 `json:"over_2_5"`
	Under2p5       float64 `json:"under_2_5"`
	BothTeamsScore float64 `json:"both_teams_score"`
}

// TeamResolution reports how each requested name matched the rating table
type TeamResolution struct {
	Home string `json:"home"` // "exact", "normalized", "case_insensitive", "default"
	Away string `json:"away"`
}

// PredictionResult is the full output of one match prediction
type PredictionResult struct {
	Home                 string               `json:"home"`
	Away                 string               `json:"away"`
	MaxGoals             int                  `json:"max_goals"`
	ExpectedGoals        ExpectedGoals        `json:"expected_goals"`
	MostLikelyScore      ScoreProbability     `json:"most_likely_score"`
	OutcomeProbabilities OutcomeProbabilities `json:"outcome_probabilities"`
	Markets              Markets              `json:"markets"`
	Resolution           TeamResolution       `json:"resolution"`
	ScoreMatrix          [][]float64          `json:"score_matrix"`
}

// PredictionResponse wraps a result with a per-response identifier
type PredictionResponse struct {
	ID string `json:"id"`
	*PredictionResult
}
