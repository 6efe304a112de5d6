// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/healtrack/healtrack/internal/domain/model"
	"github.com/healtrack/healtrack/internal/domain/report"
	"github.com/healtrack/healtrack/pkg/metrics"
)

// ReportHandler handles PDF report generation requests.
type ReportHandler struct {
	renderer Renderer
}

// NewReportHandler creates a new report handler. A nil renderer disables the
// endpoint for this deployment.
func NewReportHandler(renderer Renderer) *ReportHandler {
	return &ReportHandler{renderer: renderer}
}

// reportRequest mirrors the report input shape.
type reportRequest struct {
	User       model.UserProfile         `json:"user"`
	Readings   []model.HistoricalReading `json:"readings"`
	Prediction *report.Prediction        `json:"prediction"`
	AISummary  string                    `json:"ai_summary"`
}

// HandleGenerateReport handles POST /api/generate-report requests and
// responds with an application/pdf attachment.
func (h *ReportHandler) HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if h.renderer == nil {
		writeError(w, http.StatusNotImplemented, "render_unavailable", ErrRenderUnavailable)
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	content := report.Assemble(req.User, req.Readings, req.Prediction, req.AISummary)
	doc, err := h.renderer.Render(r.Context(), content)
	if err != nil {
		metrics.RecordReportError()
		writeError(w, http.StatusInternalServerError, "render_failed", ErrRenderFailed)
		return
	}
	metrics.RecordReportGenerated()

	filename := fmt.Sprintf("HealTrack_Report_%s.pdf", content.GeneratedAt.Format("20060102_150405Z"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Report-ID", uuid.New().String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
