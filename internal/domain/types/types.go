// Package types contains common types used across the application.
package types

// RiskLabel is the categorical output of a risk assessment.
type RiskLabel string

// Risk bands ordered by severity.
const (
	RiskLow    RiskLabel = "Low"
	RiskMedium RiskLabel = "Medium"
	RiskHigh   RiskLabel = "High"
)

// Bucket thresholds. These are the single source of truth for mapping a raw
// probability to a risk band; a boundary value belongs to the upper band.
const (
	lowUpperBound    = 0.33
	mediumUpperBound = 0.66
)

// Bucketize maps a positive-class probability in [0,1] to a risk band.
func Bucketize(prob float64) RiskLabel {
	switch {
	case prob < lowUpperBound:
		return RiskLow
	case prob < mediumUpperBound:
		return RiskMedium
	default:
		return RiskHigh
	}
}
