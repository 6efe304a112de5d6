package artifact_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/healtrack/healtrack/internal/domain/artifact"
	. "github.com/smartystreets/goconvey/convey"
)

func validDoc() artifact.Document {
	return artifact.Document{
		Version:   1,
		TrainedAt: "2026-08-01T00:00:00Z",
		Features:  []string{"bp", "heart_rate", "sugar", "bmi"},
		Mean:      []float64{125, 75, 110, 26},
		Std:       []float64{20, 15, 35, 5},
		Weights:   []float64{0.8, 0.9, 0.6, 1.2},
		Intercept: -0.9,
	}
}

func TestNew(t *testing.T) {
	Convey("Given a valid artifact document", t, func() {
		m, err := artifact.New(validDoc())
		So(err, ShouldBeNil)
		So(m, ShouldNotBeNil)
		So(m.TrainedAt(), ShouldEqual, "2026-08-01T00:00:00Z")
	})

	Convey("Given a document with the wrong weight dimension", t, func() {
		doc := validDoc()
		doc.Weights = []float64{1, 2, 3}
		_, err := artifact.New(doc)
		So(err, ShouldWrap, artifact.ErrInvalidArtifact)
	})

	Convey("Given a document with a non-positive std", t, func() {
		doc := validDoc()
		doc.Std[2] = 0
		_, err := artifact.New(doc)
		So(err, ShouldWrap, artifact.ErrInvalidArtifact)
	})

	Convey("Given a document without a version", t, func() {
		doc := validDoc()
		doc.Version = 0
		_, err := artifact.New(doc)
		So(err, ShouldWrap, artifact.ErrInvalidArtifact)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given an artifact file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "model.json")
		payload := `{
			"version": 1,
			"trained_at": "2026-08-01T00:00:00Z",
			"features": ["bp", "heart_rate", "sugar", "bmi"],
			"mean": [125, 75, 110, 26],
			"std": [20, 15, 35, 5],
			"weights": [0.8, 0.9, 0.6, 1.2],
			"intercept": -0.9
		}`
		So(os.WriteFile(path, []byte(payload), 0o600), ShouldBeNil)

		Convey("When it is loaded", func() {
			m, err := artifact.Load(path)
			So(err, ShouldBeNil)
			So(m, ShouldNotBeNil)
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := artifact.Load(filepath.Join(t.TempDir(), "nope.json"))
		So(err, ShouldNotBeNil)
	})

	Convey("Given a corrupt file", t, func() {
		path := filepath.Join(t.TempDir(), "model.json")
		So(os.WriteFile(path, []byte("not json"), 0o600), ShouldBeNil)
		_, err := artifact.Load(path)
		So(err, ShouldWrap, artifact.ErrInvalidArtifact)
	})
}

func TestPredictProbability(t *testing.T) {
	Convey("Given a loaded model", t, func() {
		m, err := artifact.New(validDoc())
		So(err, ShouldBeNil)
		ctx := context.Background()

		Convey("When predicting for healthy vitals", func() {
			low, err := m.PredictProbability(ctx, []float64{115, 65, 90, 23})
			So(err, ShouldBeNil)
			So(low, ShouldBeGreaterThan, 0)
			So(low, ShouldBeLessThan, 1)

			Convey("Then severe vitals score strictly higher", func() {
				high, err := m.PredictProbability(ctx, []float64{185, 130, 280, 38})
				So(err, ShouldBeNil)
				So(high, ShouldBeGreaterThan, low)
			})
		})

		Convey("When the input vector has the wrong shape", func() {
			_, err := m.PredictProbability(ctx, []float64{115, 65})
			So(err, ShouldWrap, artifact.ErrInference)
		})

		Convey("When predicting twice with identical input", func() {
			a, err := m.PredictProbability(ctx, []float64{140, 90, 150, 31})
			So(err, ShouldBeNil)
			b, err := m.PredictProbability(ctx, []float64{140, 90, 150, 31})
			So(err, ShouldBeNil)
			So(a, ShouldEqual, b)
		})
	})
}
