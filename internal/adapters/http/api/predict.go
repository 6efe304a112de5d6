// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/healtrack/healtrack/internal/app"
	"github.com/healtrack/healtrack/internal/domain/types"
)

// PredictHandler handles risk prediction requests.
type PredictHandler struct {
	deps Dependencies
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps Dependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// predictResponse mirrors the outbound assessment shape.
type predictResponse struct {
	Risk        types.RiskLabel    `json:"risk"`
	Probability float64            `json:"probability"`
	Source      string             `json:"source"`
	Inputs      map[string]float64 `json:"inputs,omitempty"`
}

// HandlePredict handles POST /predict requests.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber() // keep numeric precision for the engine's coercion
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	assessment, err := h.deps.Assess(r.Context(), raw)
	if err != nil {
		status, code, surfaced := assessmentStatus(err)
		writeError(w, status, code, surfaced)
		return
	}

	// Echo the coerced values back; validation cannot fail after a
	// successful assessment of the same mapping.
	vitals, _ := app.ParseVitals(raw)
	writeJSON(w, http.StatusOK, predictResponse{
		Risk:        assessment.Label,
		Probability: assessment.Probability,
		Source:      assessment.Source,
		Inputs: map[string]float64{
			"bp":         vitals.SystolicBP,
			"heart_rate": vitals.HeartRate,
			"sugar":      vitals.FastingGlucose,
			"bmi":        vitals.BMI,
		},
	})
}
