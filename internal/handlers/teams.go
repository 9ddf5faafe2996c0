package handlers

import (
	"net/http"

	"github.com/swaggo/swag"

	"github.com/scoreline/predictor/internal/models"
)

// GetTeams lists the rated teams
// @Summary List rated teams
// @Tags Teams
// @Produce json
// @Success 200 {object} models.TeamsResponse
// @Failure 503 {object} models.ErrorResponse "No rating table loaded"
// @Router /api/v1/teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	if h.teams == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No rating table loaded")
		return
	}

	names := h.teams.Teams()
	if names == nil {
		names = []string{}
	}
	h.jsonResponse(w, http.StatusOK, models.TeamsResponse{
		Teams:       names,
		Count:       len(names),
		Fingerprint: h.teams.Fingerprint(),
	})
}

// SwaggerDoc serves the registered OpenAPI document
func (h *Handler) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusNotFound, "API documentation not available")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
