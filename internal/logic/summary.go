package logic

// Score is one exact scoreline with its probability
type Score struct {
	HomeGoals   int
	AwayGoals   int
	Probability float64
}

// Summary reduces a score matrix to the figures reported to callers
type Summary struct {
	MostLikely Score
	HomeWin    float64
	Draw       float64
	AwayWin    float64
}

// Summarize extracts the most likely score and the 1X2 probabilities.
// HomeWin + Draw + AwayWin equals m.Total().
func Summarize(m *ScoreMatrix) Summary {
	i, j, p := m.MostLikely()
	homeWin, draw, awayWin := m.MatchOdds()
	return Summary{
		MostLikely: Score{HomeGoals: i, AwayGoals: j, Probability: p},
		HomeWin:    homeWin,
		Draw:       draw,
		AwayWin:    awayWin,
	}
}
