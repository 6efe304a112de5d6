package api

import (
	"errors"
	"net/http"

	"github.com/healtrack/healtrack/internal/app"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest        = errors.New("bad request")
	ErrRenderUnavailable = errors.New("PDF generation unavailable")
	ErrRenderFailed      = errors.New("failed to generate PDF")
	ErrPredictionFailed  = errors.New("prediction failed")
)

// assessmentStatus maps an engine error to an HTTP status, a short stable
// machine-checkable code, and the error to surface. Validation errors carry
// their own message; internal failures get a generic one so library details
// never leak to the caller.
func assessmentStatus(err error) (int, string, error) {
	var mf *app.MissingFieldsError
	var it *app.InvalidTypeError
	switch {
	case errors.As(err, &mf):
		return http.StatusBadRequest, "missing_fields", err
	case errors.As(err, &it):
		return http.StatusBadRequest, "invalid_type", err
	case errors.Is(err, app.ErrModelUnavailable):
		return http.StatusServiceUnavailable, "model_unavailable", app.ErrModelUnavailable
	default:
		return http.StatusInternalServerError, "inference_error", ErrPredictionFailed
	}
}
