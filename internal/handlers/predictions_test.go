package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoreline/predictor/internal/logic"
	"github.com/scoreline/predictor/internal/models"
)

// Mocks

type MockPredictionService struct {
	PredictFunc func(ctx context.Context, req models.PredictRequest) (*models.PredictionResult, error)
	last        models.PredictRequest
	calls       int
}

func (m *MockPredictionService) Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResult, error) {
	m.calls++
	m.last = req
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return &models.PredictionResult{Home: req.Home, Away: req.Away, MaxGoals: req.MaxGoals}, nil
}

func newTestHandler(svc *MockPredictionService) *Handler {
	return New(Config{
		Prediction:      svc,
		DefaultMaxGoals: 6,
		MaxGoalsLimit:   15,
	})
}

// Tests

func TestGetPrediction(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		predictErr     error
		expectedStatus int
		expectedError  string
		expectCall     bool
		expectedGoals  int
	}{
		{
			name:           "Success with default bound",
			query:          "home=Paris_SG&away=Real_Madrid",
			expectedStatus: http.StatusOK,
			expectCall:     true,
			expectedGoals:  6,
		},
		{
			name:           "Explicit bound",
			query:          "home=A&away=B&max_goals=0",
			expectedStatus: http.StatusOK,
			expectCall:     true,
			expectedGoals:  0,
		},
		{
			name:           "Missing home",
			query:          "away=B",
			expectedStatus: http.StatusBadRequest,
			expectedError:  missingTeamsMessage,
		},
		{
			name:           "Blank away",
			query:          "home=A&away=%20%20",
			expectedStatus: http.StatusBadRequest,
			expectedError:  missingTeamsMessage,
		},
		{
			name:           "Non-integer bound",
			query:          "home=A&away=B&max_goals=six",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "max_goals must be an integer",
		},
		{
			name:           "Negative bound",
			query:          "home=A&away=B&max_goals=-1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "max_goals must be non-negative",
		},
		{
			name:           "Bound above limit",
			query:          "home=A&away=B&max_goals=16",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "max_goals must be at most 15",
		},
		{
			name:           "Service rejects bound",
			query:          "home=A&away=B",
			predictErr:     fmt.Errorf("predict: %w", logic.ErrInvalidMaxGoals),
			expectedStatus: http.StatusBadRequest,
			expectCall:     true,
			expectedGoals:  6,
		},
		{
			name:           "Service failure",
			query:          "home=A&away=B",
			predictErr:     logic.ErrDegenerateMatrix,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to compute prediction",
			expectCall:     true,
			expectedGoals:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPredictionService{}
			if tt.predictErr != nil {
				svc.PredictFunc = func(ctx context.Context, req models.PredictRequest) (*models.PredictionResult, error) {
					return nil, tt.predictErr
				}
			}
			h := newTestHandler(svc)

			req := httptest.NewRequest("GET", "/predict?"+tt.query, nil)
			w := httptest.NewRecorder()
			h.GetPrediction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedError != "" {
				var body models.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
			}

			if tt.expectCall {
				assert.Equal(t, 1, svc.calls)
				assert.Equal(t, tt.expectedGoals, svc.last.MaxGoals)
			} else {
				assert.Zero(t, svc.calls)
			}
		})
	}
}

func TestPrediction_ZeroDefaultBoundIsKept(t *testing.T) {
	svc := &MockPredictionService{}
	h := New(Config{Prediction: svc, DefaultMaxGoals: 0, MaxGoalsLimit: 15})

	w := httptest.NewRecorder()
	h.GetPrediction(w, httptest.NewRequest("GET", "/predict?home=A&away=B", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.last.MaxGoals)

	w = httptest.NewRecorder()
	h.PostPrediction(w, httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(`{"home":"A","away":"B"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.last.MaxGoals)
}

func TestNew_NegativeDefaultBoundFallsBack(t *testing.T) {
	svc := &MockPredictionService{}
	h := New(Config{Prediction: svc, DefaultMaxGoals: -1})

	w := httptest.NewRecorder()
	h.GetPrediction(w, httptest.NewRequest("GET", "/predict?home=A&away=B", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, logic.DefaultMaxGoals, svc.last.MaxGoals)
}

func TestGetPrediction_ResponseHasUniqueID(t *testing.T) {
	h := newTestHandler(&MockPredictionService{})

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/predict?home=A&away=B", nil)
		w := httptest.NewRecorder()
		h.GetPrediction(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.PredictionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.NotEmpty(t, resp.ID)
		assert.Equal(t, "A", resp.Home)
		ids[resp.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestGetPrediction_TrimsNames(t *testing.T) {
	svc := &MockPredictionService{}
	h := newTestHandler(svc)

	req := httptest.NewRequest("GET", "/predict?home=%20Paris%20SG%20&away=Leeds", nil)
	w := httptest.NewRecorder()
	h.GetPrediction(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paris SG", svc.last.Home)
}

func TestPostPrediction(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedGoals  int
	}{
		{"Default bound", `{"home":"A","away":"B"}`, http.StatusOK, 6},
		{"Zero bound", `{"home":"A","away":"B","max_goals":0}`, http.StatusOK, 0},
		{"Explicit bound", `{"home":"A","away":"B","max_goals":9}`, http.StatusOK, 9},
		{"Negative bound", `{"home":"A","away":"B","max_goals":-2}`, http.StatusBadRequest, 0},
		{"Missing away", `{"home":"A"}`, http.StatusBadRequest, 0},
		{"Malformed JSON", `{"home":`, http.StatusBadRequest, 0},
		{"Quoted bound", `{"home":"A","away":"B","max_goals":"7"}`, http.StatusOK, 7},
		{"Non-integer bound", `{"home":"A","away":"B","max_goals":"seven"}`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPredictionService{}
			h := newTestHandler(svc)

			req := httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			h.PostPrediction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedGoals, svc.last.MaxGoals)
			}
		})
	}
}

func TestPostPrediction_BodyTooLarge(t *testing.T) {
	h := newTestHandler(&MockPredictionService{})

	big := `{"home":"` + strings.Repeat("a", MaxBodySize) + `","away":"B"}`
	req := httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(big))
	w := httptest.NewRecorder()
	h.PostPrediction(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidationMessage_NonValidatorError(t *testing.T) {
	assert.Equal(t, "Invalid request", validationMessage(errors.New("boom")))
}
