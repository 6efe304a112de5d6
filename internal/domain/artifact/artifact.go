// Package artifact loads the persisted risk classifier and exposes inference.
//
// The artifact is a versioned JSON document describing a logistic regression
// over standardized features. It is read once at process start and never
// mutated afterwards, so a loaded Model is safe for concurrent use.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// FeatureCount is the fixed dimensionality of the input vector. The feature
// order [bp, heart_rate, sugar, bmi] is part of the trained contract.
const FeatureCount = 4

// Document is the on-disk artifact layout.
type Document struct {
	Version   int       `json:"version"`
	TrainedAt string    `json:"trained_at"`
	Features  []string  `json:"features"`
	Mean      []float64 `json:"mean"`
	Std       []float64 `json:"std"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Model is an immutable, loaded classifier.
type Model struct {
	doc Document
}

// Load reads and validates an artifact from path.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return New(doc)
}

// New validates a Document and wraps it into a Model.
func New(doc Document) (*Model, error) {
	if doc.Version < 1 {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidArtifact)
	}
	for name, vals := range map[string][]float64{
		"mean":    doc.Mean,
		"std":     doc.Std,
		"weights": doc.Weights,
	} {
		if len(vals) != FeatureCount {
			return nil, fmt.Errorf("%w: %s must have %d entries, got %d", ErrInvalidArtifact, name, FeatureCount, len(vals))
		}
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s contains a non-finite value", ErrInvalidArtifact, name)
			}
		}
	}
	for _, s := range doc.Std {
		if s <= 0 {
			return nil, fmt.Errorf("%w: std must be positive", ErrInvalidArtifact)
		}
	}
	if math.IsNaN(doc.Intercept) || math.IsInf(doc.Intercept, 0) {
		return nil, fmt.Errorf("%w: intercept is not finite", ErrInvalidArtifact)
	}
	return &Model{doc: doc}, nil
}

// TrainedAt reports when the artifact was produced, as recorded by the trainer.
func (m *Model) TrainedAt() string { return m.doc.TrainedAt }

// PredictProbability returns the positive-class probability for a feature
// vector in the fixed training order. No feature engineering happens here
// beyond standardization baked into the artifact.
func (m *Model) PredictProbability(_ context.Context, features []float64) (float64, error) {
	if len(features) != FeatureCount {
		return 0, fmt.Errorf("%w: expected %d features, got %d", ErrInference, FeatureCount, len(features))
	}
	z := m.doc.Intercept
	for i, x := range features {
		z += m.doc.Weights[i] * (x - m.doc.Mean[i]) / m.doc.Std[i]
	}
	p := 1 / (1 + math.Exp(-z))
	if math.IsNaN(p) {
		return 0, fmt.Errorf("%w: non-finite output", ErrInference)
	}
	return p, nil
}
