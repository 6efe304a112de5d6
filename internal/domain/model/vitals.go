// Package model contains domain models passed between layers.
package model

import "github.com/healtrack/healtrack/internal/domain/types"

// Assessment sources. They identify which prediction path produced a result.
const (
	SourceModel     = "model"
	SourceRuleBased = "rule-based"
)

// VitalReading holds the four measurements required for an assessment.
// All fields are mandatory; the engine rejects requests with absent or
// non-numeric values before a reading is ever constructed.
type VitalReading struct {
	SystolicBP     float64 // mmHg
	HeartRate      float64 // bpm
	FastingGlucose float64 // mg/dL
	BMI            float64 // kg/m^2
}

// Vector returns the reading as a feature vector in the fixed order
// [bp, heart_rate, sugar, bmi]. The order matches the order the model
// artifact was trained with and must not change.
func (v VitalReading) Vector() []float64 {
	return []float64{v.SystolicBP, v.HeartRate, v.FastingGlucose, v.BMI}
}

// RiskAssessment is the structured result of a single assessment.
type RiskAssessment struct {
	Label       types.RiskLabel `json:"risk"`
	Probability float64         `json:"probability"` // rounded to 3 decimals for display
	Source      string          `json:"source"`      // "model" or "rule-based"
}

// HistoricalReading is a display-only row for report generation. Fields other
// than the date are optional; absent values render as empty cells.
type HistoricalReading struct {
	Date      string   `json:"date"`
	Systolic  *float64 `json:"systolic"`
	Diastolic *float64 `json:"diastolic"`
	HeartRate *float64 `json:"heartRate"`
	Sugar     *float64 `json:"sugar"`
	BMI       *float64 `json:"bmi"`
}

// UserProfile is a free-form mapping of display fields for the report user
// block (name, email, age, gender, id). All entries are optional and only
// rendered when present.
type UserProfile map[string]any
