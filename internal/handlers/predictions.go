package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/scoreline/predictor/internal/logic"
	"github.com/scoreline/predictor/internal/models"
)

const missingTeamsMessage = "please provide 'home' and 'away' query parameters"

// GetPrediction returns the Poisson forecast for a single match
// @Summary Predict a match
// @Description Score matrix, most likely score and 1X2 probabilities for home vs away
// @Tags Predictions
// @Produce json
// @Param home query string true "Home team"
// @Param away query string true "Away team"
// @Param max_goals query int false "Largest goal count per side in the score matrix"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} models.ErrorResponse "Bad Request"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /predict [get]
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.PredictRequest{
		Home:     strings.TrimSpace(q.Get("home")),
		Away:     strings.TrimSpace(q.Get("away")),
		MaxGoals: h.defaultMaxGoals,
	}

	if raw := q.Get("max_goals"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "max_goals must be an integer")
			return
		}
		req.MaxGoals = n
	}

	h.predict(w, r, req)
}

// PostPrediction is the JSON-body variant of GetPrediction
// @Summary Predict a match
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.PredictBody true "Match"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} models.ErrorResponse "Bad Request"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /api/v1/predict [post]
func (h *Handler) PostPrediction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	var body models.PredictBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req := models.PredictRequest{
		Home:     strings.TrimSpace(body.Home),
		Away:     strings.TrimSpace(body.Away),
		MaxGoals: h.defaultMaxGoals,
	}
	if body.MaxGoals != nil {
		req.MaxGoals = body.MaxGoals.Int()
	}

	h.predict(w, r, req)
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request, req models.PredictRequest) {
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if h.maxGoalsLimit > 0 && req.MaxGoals > h.maxGoalsLimit {
		h.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("max_goals must be at most %d", h.maxGoalsLimit))
		return
	}

	res, err := h.prediction.Predict(r.Context(), req)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidMaxGoals) {
			h.errorResponse(w, http.StatusBadRequest, "max_goals must be non-negative")
			return
		}
		h.logger.Errorw("Failed to compute prediction", "error", err, "home", req.Home, "away", req.Away)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute prediction")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.PredictionResponse{
		ID:               uuid.New().String(),
		PredictionResult: res,
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}
	for _, fe := range verrs {
		if fe.Field() == "MaxGoals" {
			return "max_goals must be non-negative"
		}
	}
	return missingTeamsMessage
}
