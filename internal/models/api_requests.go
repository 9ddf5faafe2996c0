package models

// PredictRequest asks for a single match prediction
type PredictRequest struct {
	Home     string `json:"home" validate:"required"`
	Away     string `json:"away" validate:"required"`
	MaxGoals int    `json:"max_goals" validate:"gte=0"`
}

// TeamsResponse lists the teams known to the rating table
type TeamsResponse struct {
	Teams       []string `json:"teams"`
	Count       int      `json:"count"`
	Fingerprint string   `json:"fingerprint"`
}

// PredictBody is the JSON body of POST /api/v1/predict. MaxGoals is a
// pointer so an omitted bound falls back to the server default.
type PredictBody struct {
	Home     string   `json:"home"`
	Away     string   `json:"away"`
	MaxGoals *FlexInt `json:"max_goals,omitempty" swaggertype:"integer"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}
