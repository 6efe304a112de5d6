package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/healtrack/healtrack/internal/domain/model"
	"github.com/healtrack/healtrack/internal/domain/report"
	. "github.com/smartystreets/goconvey/convey"
)

func fptr(v float64) *float64 { return &v }

func TestAssembleUserBlock(t *testing.T) {
	Convey("Given a profile with every display field", t, func() {
		user := model.UserProfile{
			"name":   "Jane Roe",
			"email":  "jane@example.com",
			"age":    44,
			"gender": "female",
			"id":     "u-123",
		}
		content := report.Assemble(user, nil, nil, "")

		Convey("Then fields render as Label: value in fixed order", func() {
			So(content.UserLines, ShouldResemble, []string{
				"Name: Jane Roe",
				"Email: jane@example.com",
				"Age: 44",
				"Gender: female",
				"Id: u-123",
			})
		})
	})

	Convey("Given a profile with a subset of fields", t, func() {
		content := report.Assemble(model.UserProfile{"email": "x@y.z", "name": "Al"}, nil, nil, "")

		Convey("Then only present fields render, still in display order", func() {
			So(content.UserLines, ShouldResemble, []string{"Name: Al", "Email: x@y.z"})
		})
	})

	Convey("Given no user fields at all", t, func() {
		content := report.Assemble(model.UserProfile{}, nil, nil, "")

		Convey("Then a single placeholder line is emitted", func() {
			So(content.UserLines, ShouldResemble, []string{"No user details provided"})
		})
	})

	Convey("Given explicit null values", t, func() {
		content := report.Assemble(model.UserProfile{"name": nil, "age": 30}, nil, nil, "")

		Convey("Then nulls are treated as absent", func() {
			So(content.UserLines, ShouldResemble, []string{"Age: 30"})
		})
	})
}

func TestAssembleReadingsTable(t *testing.T) {
	Convey("Given seven readings in caller order", t, func() {
		readings := make([]model.HistoricalReading, 7)
		for i := range readings {
			readings[i] = model.HistoricalReading{
				Date:     fmt.Sprintf("2026-08-%02d", i+1),
				Systolic: fptr(float64(120 + i)),
			}
		}
		content := report.Assemble(nil, readings, nil, "")

		Convey("Then exactly the first five appear, unreordered", func() {
			So(content.TableRows, ShouldHaveLength, 5)
			So(content.TableRows[0][0], ShouldEqual, "2026-08-01")
			So(content.TableRows[4][0], ShouldEqual, "2026-08-05")
			So(content.TableRows[4][1], ShouldEqual, "124")
		})

		Convey("And the header has the fixed six columns", func() {
			So(content.TableHeader, ShouldResemble,
				[]string{"Date", "Systolic", "Diastolic", "Heart Rate", "Glucose", "BMI"})
		})
	})

	Convey("Given a reading with missing sub-fields", t, func() {
		readings := []model.HistoricalReading{{
			Date:      "2026-08-20",
			Systolic:  fptr(128),
			HeartRate: fptr(72.5),
		}}
		content := report.Assemble(nil, readings, nil, "")

		Convey("Then absent values render as empty cells, columns stay put", func() {
			So(content.TableRows[0], ShouldResemble,
				[]string{"2026-08-20", "128", "", "72.5", "", ""})
		})
	})

	Convey("Given no readings", t, func() {
		content := report.Assemble(nil, nil, nil, "")
		So(content.TableRows, ShouldBeEmpty)
	})
}

func TestAssembleSummary(t *testing.T) {
	Convey("Given an explicit summary", t, func() {
		pred := &report.Prediction{Risk: "High", Probability: fptr(0.9)}
		content := report.Assemble(nil, nil, pred, "Everything is fine.")

		Convey("Then the explicit text wins verbatim", func() {
			So(content.Summary, ShouldEqual, "Everything is fine.")
		})
	})

	Convey("Given only a prediction", t, func() {
		pred := &report.Prediction{Risk: "Medium", Probability: fptr(0.5)}
		content := report.Assemble(nil, nil, pred, "")

		Convey("Then the summary line is synthesized", func() {
			So(content.Summary, ShouldEqual, "Risk: Medium (probability 0.5)")
		})
	})

	Convey("Given a prediction missing the probability", t, func() {
		content := report.Assemble(nil, nil, &report.Prediction{Risk: "Low"}, "")
		So(content.Summary, ShouldEqual, "N/A")
	})

	Convey("Given neither summary nor prediction", t, func() {
		content := report.Assemble(nil, nil, nil, "")
		So(content.Summary, ShouldEqual, "N/A")
	})
}

func TestAssembleMetadata(t *testing.T) {
	Convey("Given any assembly", t, func() {
		before := time.Now().UTC()
		content := report.Assemble(nil, nil, nil, "")

		Convey("Then the title and UTC generation time are set", func() {
			So(content.Title, ShouldEqual, "HealTrack Health Report")
			So(content.GeneratedAt.Location(), ShouldEqual, time.UTC)
			So(content.GeneratedAt, ShouldHappenOnOrBetween, before, time.Now().UTC())
		})
	})
}
