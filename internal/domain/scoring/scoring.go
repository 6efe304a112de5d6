// Package scoring implements the transparent rule-based risk scorer.
//
// The scorer is total over all finite numeric input: out-of-range values are
// not rejected here. Domain validation happens in the engine before dispatch.
package scoring

import "github.com/healtrack/healtrack/internal/domain/types"

// Severity thresholds per vital. For each vital only the single highest
// matching band contributes to the score.
const (
	bpCritical = 180.0
	bpSevere   = 160.0
	bpElevated = 140.0
	bpLowLimit = 90.0

	hrCritical = 120.0
	hrElevated = 100.0
	hrLowLimit = 50.0

	glucoseCritical = 250.0
	glucoseSevere   = 180.0
	glucoseDiabetic = 126.0

	bmiSevereObesity = 35.0
	bmiObesity       = 30.0
	bmiUnderweight   = 18.5
)

// Score band boundaries and probability clamp.
const (
	lowScoreMax    = 2.0
	mediumScoreMax = 4.0

	probabilityFloor = 0.01
	probabilityCeil  = 0.99
)

// Result contains the computed risk band and its calibrated probability.
type Result struct {
	Label       types.RiskLabel
	Probability float64
	Score       float64
}

// Score accumulates a severity score from the four vitals and maps it to a
// risk band with a calibrated probability in [0.01, 0.99].
func Score(bp, heartRate, sugar, bmi float64) Result {
	score := 0.0

	// Blood pressure (systolic)
	switch {
	case bp >= bpCritical:
		score += 3
	case bp >= bpSevere:
		score += 2.5
	case bp >= bpElevated:
		score += 2
	case bp <= bpLowLimit:
		score += 0.5
	}

	// Heart rate
	switch {
	case heartRate >= hrCritical:
		score += 2
	case heartRate >= hrElevated:
		score += 1.5
	case heartRate <= hrLowLimit:
		score += 1
	}

	// Fasting glucose (mg/dL)
	switch {
	case sugar >= glucoseCritical:
		score += 3
	case sugar >= glucoseSevere:
		score += 2
	case sugar >= glucoseDiabetic:
		score += 1
	}

	// BMI
	switch {
	case bmi >= bmiSevereObesity:
		score += 2.5
	case bmi >= bmiObesity:
		score += 2
	case bmi <= bmiUnderweight:
		score += 1
	}

	// Map score to risk band. The probability curve deliberately steps up at
	// the band boundaries (0.35 to 0.45 at score=2.0, 0.65 to 0.70 at
	// score=4.0). TODO: confirm with the model owners whether the steps are
	// intended calibration or off-by-ones in the band formulas.
	var label types.RiskLabel
	var prob float64
	switch {
	case score <= lowScoreMax:
		label = types.RiskLow
		prob = min(0.35, 0.15+0.1*score)
	case score <= mediumScoreMax:
		label = types.RiskMedium
		prob = min(0.7, 0.45+0.1*(score-lowScoreMax))
	default:
		label = types.RiskHigh
		prob = min(0.95, 0.7+0.05*(score-mediumScoreMax))
	}

	return Result{
		Label:       label,
		Probability: Clamp(prob),
		Score:       score,
	}
}

// Clamp bounds a probability into [0.01, 0.99] so no path ever reports
// absolute certainty.
func Clamp(prob float64) float64 {
	return max(probabilityFloor, min(probabilityCeil, prob))
}
