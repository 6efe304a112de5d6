// Command train-model fits a logistic regression on a synthetic cohort and
// writes the resulting artifact JSON for the risk service to load.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/healtrack/healtrack/internal/domain/artifact"
	"github.com/healtrack/healtrack/pkg/logger"
)

const (
	sampleCount  = 1500
	epochs       = 400
	learningRate = 0.1
)

// feature distributions for the synthetic cohort, clipped to plausible
// physiological ranges.
type featureSpec struct {
	mean, stddev, lo, hi float64
}

var cohortSpecs = []featureSpec{
	{125, 20, 80, 200}, // systolic blood pressure
	{75, 15, 45, 180},  // heart rate
	{110, 35, 60, 320}, // fasting glucose
	{26, 5, 16, 48},    // body mass index
}

func main() {
	out := flag.String("out", "model.json", "output path for the artifact JSON")
	seed := flag.Int64("seed", 42, "random seed for the synthetic cohort")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()
	ctx := context.Background()

	rng := rand.New(rand.NewSource(*seed))

	features, labels := synthesizeCohort(rng)
	mean, std := standardize(features)
	weights, intercept := fit(features, labels, rng)

	positives := 0
	for _, y := range labels {
		if y == 1 {
			positives++
		}
	}
	log.Info(ctx, "model fitted",
		logger.Int("samples", sampleCount),
		logger.Int("positives", positives),
		logger.Float64("intercept", intercept))

	doc := artifact.Document{
		Version:   1,
		TrainedAt: time.Now().UTC().Format(time.RFC3339),
		Features:  []string{"bp", "heart_rate", "sugar", "bmi"},
		Mean:      mean,
		Std:       std,
		Weights:   weights,
		Intercept: intercept,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Error(ctx, "failed to encode artifact", logger.Error(err))
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Error(ctx, "failed to write artifact", logger.String("path", *out), logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "artifact written", logger.String("path", *out))
}

// synthesizeCohort draws feature vectors from the cohort distributions and
// labels each one with a noisy linear heuristic centered on healthy
// baselines. The threshold keeps the positive class a minority.
func synthesizeCohort(rng *rand.Rand) ([][]float64, []int) {
	features := make([][]float64, sampleCount)
	labels := make([]int, sampleCount)

	for i := range features {
		row := make([]float64, len(cohortSpecs))
		for j, spec := range cohortSpecs {
			v := rng.NormFloat64()*spec.stddev + spec.mean
			row[j] = math.Min(spec.hi, math.Max(spec.lo, v))
		}
		features[i] = row

		risk := 0.03*(row[0]-120) +
			0.04*(row[1]-70) +
			0.02*(row[2]-100) +
			0.06*(row[3]-24) +
			rng.NormFloat64()*0.5
		if risk > 1.2 {
			labels[i] = 1
		}
	}
	return features, labels
}

// standardize rescales features in place to zero mean and unit variance,
// returning the per-feature statistics for the artifact.
func standardize(features [][]float64) (mean, std []float64) {
	n := float64(len(features))
	dims := len(cohortSpecs)
	mean = make([]float64, dims)
	std = make([]float64, dims)

	for _, row := range features {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}
	for _, row := range features {
		for j, v := range row {
			d := v - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / n)
		if std[j] == 0 {
			std[j] = 1
		}
	}
	for _, row := range features {
		for j := range row {
			row[j] = (row[j] - mean[j]) / std[j]
		}
	}
	return mean, std
}

// fit runs full-batch gradient descent on the logistic loss. Features must
// already be standardized.
func fit(features [][]float64, labels []int, rng *rand.Rand) (weights []float64, intercept float64) {
	dims := len(cohortSpecs)
	weights = make([]float64, dims)
	for j := range weights {
		weights[j] = rng.NormFloat64() * 0.01
	}
	n := float64(len(features))

	for epoch := 0; epoch < epochs; epoch++ {
		gradW := make([]float64, dims)
		gradB := 0.0
		for i, row := range features {
			z := intercept
			for j, v := range row {
				z += weights[j] * v
			}
			p := 1 / (1 + math.Exp(-z))
			diff := p - float64(labels[i])
			for j, v := range row {
				gradW[j] += diff * v
			}
			gradB += diff
		}
		for j := range weights {
			weights[j] -= learningRate * gradW[j] / n
		}
		intercept -= learningRate * gradB / n
	}
	return weights, intercept
}
