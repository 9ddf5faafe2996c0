// Package render formats prediction results for chat and terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/scoreline/predictor/internal/models"
)

// DisplayName shows underscore-joined team names with spaces
func DisplayName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
}

// Percent formats a probability as a percentage with one decimal
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Full renders a multi-line prediction summary.
func Full(res *models.PredictionResult) string {
	ml := res.MostLikelyScore
	out := res.OutcomeProbabilities

	var b strings.Builder
	fmt.Fprintf(&b, "Prediction for %s vs %s\n", DisplayName(res.Home), DisplayName(res.Away))
	fmt.Fprintf(&b, "Most likely score: %d - %d (prob: %s)\n", ml.HomeGoals, ml.AwayGoals, Percent(ml.Probability))
	fmt.Fprintf(&b, "Expected goals: %.2f - %.2f\n", res.ExpectedGoals.Home, res.ExpectedGoals.Away)
	fmt.Fprintf(&b, "Home win: %s | Draw: %s | Away win: %s\n", Percent(out.HomeWin), Percent(out.Draw), Percent(out.AwayWin))
	fmt.Fprintf(&b, "Over 2.5: %s | Both teams score: %s", Percent(res.Markets.Over2p5), Percent(res.Markets.BothTeamsScore))

	var unknown []string
	if res.Resolution.Home == "default" {
		unknown = append(unknown, DisplayName(res.Home))
	}
	if res.Resolution.Away == "default" {
		unknown = append(unknown, DisplayName(res.Away))
	}
	if len(unknown) > 0 {
		fmt.Fprintf(&b, "\n\nNo rating for %s, league-average rating used.", strings.Join(unknown, " and "))
	}
	return b.String()
}

// Compact renders a single-line prediction summary.
func Compact(res *models.PredictionResult) string {
	ml := res.MostLikelyScore
	out := res.OutcomeProbabilities
	return fmt.Sprintf("%s %d - %d %s | H:%.2f A:%.2f | P(H/D/A): %s/%s/%s",
		DisplayName(res.Home), ml.HomeGoals, ml.AwayGoals, DisplayName(res.Away),
		res.ExpectedGoals.Home, res.ExpectedGoals.Away,
		Percent(out.HomeWin), Percent(out.Draw), Percent(out.AwayWin))
}

// Matrix renders the score matrix as a percentage grid, home goals down the
// rows and away goals across the columns.
func Matrix(res *models.PredictionResult) string {
	var b strings.Builder
	b.WriteString("H\\A")
	for j := range res.ScoreMatrix {
		fmt.Fprintf(&b, "%7d", j)
	}
	for i, row := range res.ScoreMatrix {
		fmt.Fprintf(&b, "\n%3d", i)
		for _, p := range row {
			fmt.Fprintf(&b, "%7.1f", p*100)
		}
	}
	return b.String()
}
