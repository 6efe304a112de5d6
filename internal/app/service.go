// Package app provides the risk assessment engine that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/healtrack/healtrack/internal/domain/model"
	"github.com/healtrack/healtrack/internal/domain/scoring"
	"github.com/healtrack/healtrack/internal/domain/types"
	"github.com/healtrack/healtrack/pkg/logger"
	"github.com/healtrack/healtrack/pkg/metrics"
)

// Strategy selects the prediction path used to produce a probability.
type Strategy string

// Prediction strategies. Auto prefers the model and falls back to the rule
// scorer when no artifact is loaded; Model fails hard without an artifact;
// Rule never touches the artifact.
const (
	StrategyAuto  Strategy = "auto"
	StrategyModel Strategy = "model"
	StrategyRule  Strategy = "rule"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAuto, StrategyModel, StrategyRule:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// requiredFields is the inbound request contract, in stable reporting order.
var requiredFields = []string{"bp", "heart_rate", "sugar", "bmi"}

// Predictor produces a positive-class probability for a feature vector in the
// fixed training order. Implemented by artifact.Model.
type Predictor interface {
	PredictProbability(ctx context.Context, features []float64) (float64, error)
}

// Service is the stateless assessment engine. The predictor, when present, is
// loaded once at startup and read-only thereafter, so concurrent Assess calls
// need no locking.
type Service struct {
	predictor Predictor
	strategy  Strategy
	logger    logger.Logger

	assessments atomic.Uint64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPredictor attaches a loaded model artifact. A nil predictor leaves the
// model-backed strategy unavailable.
func WithPredictor(p Predictor) Option {
	return func(s *Service) {
		s.predictor = p
	}
}

// WithStrategy sets the prediction strategy.
func WithStrategy(strategy Strategy) Option {
	return func(s *Service) {
		if strategy != "" {
			s.strategy = strategy
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates the engine with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		strategy: StrategyAuto,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Assess validates the raw request mapping, dispatches to the selected
// prediction path and returns a structured assessment.
func (s *Service) Assess(ctx context.Context, raw map[string]any) (model.RiskAssessment, error) {
	vitals, err := ParseVitals(raw)
	if err != nil {
		metrics.RecordAssessmentError(errorKind(err))
		return model.RiskAssessment{}, err
	}

	var result model.RiskAssessment
	if s.useModel() {
		result, err = s.assessWithModel(ctx, vitals)
	} else {
		result = assessWithRules(vitals)
	}
	if err != nil {
		metrics.RecordAssessmentError(errorKind(err))
		return model.RiskAssessment{}, err
	}

	s.assessments.Add(1)
	metrics.RecordAssessment(result.Source, string(result.Label))
	return result, nil
}

// useModel resolves the effective path for this deployment.
func (s *Service) useModel() bool {
	switch s.strategy {
	case StrategyRule:
		return false
	case StrategyModel:
		return true
	default:
		return s.predictor != nil
	}
}

func (s *Service) assessWithModel(ctx context.Context, vitals model.VitalReading) (model.RiskAssessment, error) {
	if s.predictor == nil {
		return model.RiskAssessment{}, ErrModelUnavailable
	}

	start := time.Now()
	prob, err := s.predictor.PredictProbability(ctx, vitals.Vector())
	metrics.RecordInferenceLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	if err != nil {
		if s.logger != nil {
			s.logger.Error(ctx, "model inference failed", logger.Error(err))
		}
		return model.RiskAssessment{}, fmt.Errorf("predict: %w", err)
	}

	// Bucketize on the raw probability, then clamp for reporting.
	label := types.Bucketize(prob)
	return model.RiskAssessment{
		Label:       label,
		Probability: roundForDisplay(scoring.Clamp(prob)),
		Source:      model.SourceModel,
	}, nil
}

func assessWithRules(vitals model.VitalReading) model.RiskAssessment {
	res := scoring.Score(vitals.SystolicBP, vitals.HeartRate, vitals.FastingGlucose, vitals.BMI)
	return model.RiskAssessment{
		Label:       res.Label,
		Probability: roundForDisplay(res.Probability),
		Source:      model.SourceRuleBased,
	}
}

// ModelLoaded reports whether the model-backed strategy is available.
func (s *Service) ModelLoaded() bool {
	return s.predictor != nil
}

// Strategy returns the configured strategy.
func (s *Service) Strategy() Strategy {
	return s.strategy
}

// GetStats returns current service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"strategy":    string(s.strategy),
		"modelLoaded": s.ModelLoaded(),
		"assessments": s.assessments.Load(),
	}
}

// ParseVitals enforces the request contract: all four keys present, every
// value coercible to a finite number. Both checks are batched so the caller
// sees every offending field at once.
func ParseVitals(raw map[string]any) (model.VitalReading, error) {
	var missing []string
	for _, f := range requiredFields {
		if _, ok := raw[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return model.VitalReading{}, &MissingFieldsError{Fields: missing}
	}

	values := make(map[string]float64, len(requiredFields))
	var invalid []string
	for _, f := range requiredFields {
		v, ok := coerceFloat(raw[f])
		if !ok {
			invalid = append(invalid, f)
			continue
		}
		values[f] = v
	}
	if len(invalid) > 0 {
		return model.VitalReading{}, &InvalidTypeError{Fields: invalid}
	}

	return model.VitalReading{
		SystolicBP:     values["bp"],
		HeartRate:      values["heart_rate"],
		FastingGlucose: values["sugar"],
		BMI:            values["bmi"],
	}, nil
}

// coerceFloat accepts JSON numbers, numeric strings and native Go numbers.
// Booleans, nulls and anything non-numeric are rejected.
func coerceFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// roundForDisplay rounds to 3 decimal places. Bucketization always happens on
// the full-precision value before this.
func roundForDisplay(p float64) float64 {
	return math.Round(p*1000) / 1000
}

// errorKind maps an assessment error to a stable metrics label.
func errorKind(err error) string {
	var mf *MissingFieldsError
	var it *InvalidTypeError
	switch {
	case errors.As(err, &mf):
		return "missing_fields"
	case errors.As(err, &it):
		return "invalid_type"
	case errors.Is(err, ErrModelUnavailable):
		return "model_unavailable"
	default:
		return "inference_error"
	}
}
