package logic

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidMaxGoals is returned for a negative truncation bound
	ErrInvalidMaxGoals = errors.New("max goals must be non-negative")
	// ErrDegenerateMatrix is returned when the score matrix carries no usable probability mass
	ErrDegenerateMatrix = errors.New("score matrix is degenerate")
)

// ScoreMatrix is the joint probability of every scoreline up to MaxGoals per side.
// Cells[homeGoals][awayGoals] -> probability
type ScoreMatrix struct {
	MaxGoals int
	Cells    [][]float64
}

// NewScoreMatrix builds the outer product of two independent Poisson
// distributions truncated at maxGoals, rescaled so the grid sums to 1.
// Mass beyond the bound is folded into the rescaling.
func NewScoreMatrix(lambdaHome, lambdaAway float64, maxGoals int) (*ScoreMatrix, error) {
	if maxGoals < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxGoals, maxGoals)
	}

	homeProbs := make([]float64, maxGoals+1)
	awayProbs := make([]float64, maxGoals+1)
	for k := 0; k <= maxGoals; k++ {
		homeProbs[k] = PoissonProb(lambdaHome, k)
		awayProbs[k] = PoissonProb(lambdaAway, k)
	}

	cells := make([][]float64, maxGoals+1)
	total := 0.0
	for i := range cells {
		cells[i] = make([]float64, maxGoals+1)
		for j := range cells[i] {
			cells[i][j] = homeProbs[i] * awayProbs[j]
			total += cells[i][j]
		}
	}

	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total probability %v for lambdas %.4f/%.4f at max goals %d",
			ErrDegenerateMatrix, total, lambdaHome, lambdaAway, maxGoals)
	}

	for i := range cells {
		for j := range cells[i] {
			cells[i][j] /= total
		}
	}

	return &ScoreMatrix{MaxGoals: maxGoals, Cells: cells}, nil
}

// Total returns the sum of all cells
func (m *ScoreMatrix) Total() float64 {
	total := 0.0
	for _, row := range m.Cells {
		for _, p := range row {
			total += p
		}
	}
	return total
}

// MatchOdds returns the home win, draw and away win probabilities
func (m *ScoreMatrix) MatchOdds() (homeWin, draw, awayWin float64) {
	for homeGoals, row := range m.Cells {
		for awayGoals, p := range row {
			switch {
			case homeGoals > awayGoals:
				homeWin += p
			case homeGoals == awayGoals:
				draw += p
			default:
				awayWin += p
			}
		}
	}
	return homeWin, draw, awayWin
}

// MostLikely returns the most probable scoreline. Ties go to the lowest total
// goals, then the lowest home goals.
func (m *ScoreMatrix) MostLikely() (homeGoals, awayGoals int, prob float64) {
	prob = -1
	for i, row := range m.Cells {
		for j, p := range row {
			if p > prob || (p == prob && scoreBefore(i, j, homeGoals, awayGoals)) {
				homeGoals, awayGoals, prob = i, j, p
			}
		}
	}
	return homeGoals, awayGoals, prob
}

func scoreBefore(i, j, bestI, bestJ int) bool {
	if i+j != bestI+bestJ {
		return i+j < bestI+bestJ
	}
	return i < bestI
}

// OverUnder returns the probability of total goals above and at-or-below a line
func (m *ScoreMatrix) OverUnder(line float64) (over, under float64) {
	for homeGoals, row := range m.Cells {
		for awayGoals, p := range row {
			if float64(homeGoals+awayGoals) > line {
				over += p
			} else {
				under += p
			}
		}
	}
	return over, under
}

// BothTeamsToScore returns the probability that both sides score
func (m *ScoreMatrix) BothTeamsToScore() float64 {
	both := 0.0
	for homeGoals := 1; homeGoals < len(m.Cells); homeGoals++ {
		for awayGoals := 1; awayGoals < len(m.Cells[homeGoals]); awayGoals++ {
			both += m.Cells[homeGoals][awayGoals]
		}
	}
	return both
}
