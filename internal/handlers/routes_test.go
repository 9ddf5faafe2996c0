package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoreline/predictor/internal/logic"
	"github.com/scoreline/predictor/internal/models"
	"github.com/scoreline/predictor/internal/ratings"
)

type MockPinger struct {
	err error
}

func (m *MockPinger) Ping(ctx context.Context) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	return redis.NewStatusResult("PONG", nil)
}

func newRouter(t *testing.T, pinger Pinger) http.Handler {
	t.Helper()
	table, err := ratings.NewTable(map[string]ratings.TeamRating{
		"Default":     {Attack: 1.0, Defense: 1.0},
		"Paris_SG":    {Attack: 1.6, Defense: 0.7},
		"Real_Madrid": {Attack: 1.5, Defense: 0.8},
	}, ratings.Meta{AvgAttack: 1.0, AvgDefense: 1.0})
	require.NoError(t, err)

	cfg := Config{
		Prediction:      logic.NewEngine(table, logic.DefaultParams()),
		Teams:           table,
		DefaultMaxGoals: 6,
		MaxGoalsLimit:   15,
		AllowedOrigins:  []string{"http://localhost:3000"},
	}
	if pinger != nil {
		cfg.Redis = pinger
	}
	return New(cfg).Routes()
}

func TestRoutes_Predict(t *testing.T) {
	router := newRouter(t, nil)

	for _, path := range []string{
		"/predict?home=Paris_SG&away=Real_Madrid",
		"/api/v1/predict?home=Paris%20SG&away=real_madrid",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("Content-Type"))

			var resp models.PredictionResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			require.NotNil(t, resp.PredictionResult)
			assert.Len(t, resp.ScoreMatrix, 7)

			o := resp.OutcomeProbabilities
			assert.InDelta(t, 1.0, o.HomeWin+o.Draw+o.AwayWin, 1e-9)
			assert.False(t, math.IsNaN(resp.ExpectedGoals.Home))
			assert.NotEqual(t, "default", resp.Resolution.Home)
			assert.NotEqual(t, "default", resp.Resolution.Away)
		})
	}
}

func TestRoutes_MissingTeams(t *testing.T) {
	router := newRouter(t, nil)

	req := httptest.NewRequest("GET", "/predict?home=Paris_SG", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, missingTeamsMessage, body.Error)
}

func TestRoutes_Index(t *testing.T) {
	router := newRouter(t, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, indexMessage, body["message"])
}

func TestRoutes_Teams(t *testing.T) {
	router := newRouter(t, nil)

	req := httptest.NewRequest("GET", "/api/v1/teams", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TeamsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"Paris_SG", "Real_Madrid"}, resp.Teams)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Fingerprint, 16)
}

func TestGetTeams_NoTable(t *testing.T) {
	h := New(Config{Prediction: &MockPredictionService{}})

	w := httptest.NewRecorder()
	h.GetTeams(w, httptest.NewRequest("GET", "/api/v1/teams", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutes_HealthAndReady(t *testing.T) {
	tests := []struct {
		name           string
		pinger         Pinger
		path           string
		expectedStatus int
	}{
		{"Health", nil, "/health", http.StatusOK},
		{"Ready without cache", nil, "/ready", http.StatusOK},
		{"Ready with cache", &MockPinger{}, "/ready", http.StatusOK},
		{"Ready with cache down", &MockPinger{err: errors.New("connection refused")}, "/ready", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.pinger)

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestReady_NoRatings(t *testing.T) {
	h := New(Config{Prediction: &MockPredictionService{}})

	w := httptest.NewRecorder()
	h.Ready(w, httptest.NewRequest("GET", "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutes_Metrics(t *testing.T) {
	router := newRouter(t, nil)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_CORS(t *testing.T) {
	router := newRouter(t, nil)

	tests := []struct {
		name   string
		origin string
		allow  string
	}{
		{"Allowed origin", "http://localhost:3000", "http://localhost:3000"},
		{"Foreign origin", "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("OPTIONS", "/api/v1/predict", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", "POST")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.allow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
