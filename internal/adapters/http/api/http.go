// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healtrack/healtrack/internal/app"
	"github.com/healtrack/healtrack/internal/domain/model"
	"github.com/healtrack/healtrack/internal/domain/report"
	"github.com/healtrack/healtrack/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the engine implementation.
type Dependencies interface {
	// Assess runs one risk assessment over a raw request mapping.
	Assess(ctx context.Context, raw map[string]any) (model.RiskAssessment, error)

	// ModelLoaded reports whether the model-backed strategy is available.
	ModelLoaded() bool

	// Strategy returns the configured prediction strategy.
	Strategy() app.Strategy
}

// Renderer produces a binary document from assembled report content. A nil
// renderer means this deployment has PDF generation disabled.
type Renderer interface {
	Render(ctx context.Context, content report.Content) ([]byte, error)
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	predictHandler *PredictHandler
	reportHandler  *ReportHandler
}

// NewServer creates a new API server with all handlers. Pass a nil renderer
// to disable report generation.
func NewServer(deps Dependencies, statsProvider StatsProvider, renderer Renderer) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(deps),
		statsHandler:   NewStatsHandler(statsProvider),
		predictHandler: NewPredictHandler(deps),
		reportHandler:  NewReportHandler(renderer),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/predict", MetricsMiddleware(s.predictHandler.HandlePredict, "predict"))
	mux.HandleFunc("/api/generate-report", MetricsMiddleware(s.reportHandler.HandleGenerateReport, "generate_report"))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
