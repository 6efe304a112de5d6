package render_test

import (
	"context"
	"testing"
	"time"

	"github.com/healtrack/healtrack/internal/adapters/render"
	"github.com/healtrack/healtrack/internal/domain/report"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Given assembled report content", t, func() {
		content := report.Content{
			Title:       "HealTrack Health Report",
			GeneratedAt: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
			UserLines:   []string{"Name: Jane Roe", "Age: 44"},
			TableHeader: []string{"Date", "Systolic", "Diastolic", "Heart Rate", "Glucose", "BMI"},
			TableRows: [][]string{
				{"2026-08-19", "128", "82", "71", "104", "26.1"},
				{"2026-08-18", "131", "", "74", "", "26.2"},
			},
			Summary: "Risk: Low (probability 0.2)",
		}
		renderer := render.NewPDFRenderer()

		Convey("When it is rendered", func() {
			out, err := renderer.Render(context.Background(), content)

			Convey("Then the output is a PDF document", func() {
				So(err, ShouldBeNil)
				So(len(out), ShouldBeGreaterThan, 0)
				So(string(out[:5]), ShouldEqual, "%PDF-")
			})
		})

		Convey("When content has no rows and placeholder lines", func() {
			content.TableRows = nil
			content.UserLines = []string{"No user details provided"}
			content.Summary = "N/A"

			out, err := renderer.Render(context.Background(), content)
			So(err, ShouldBeNil)
			So(len(out), ShouldBeGreaterThan, 0)
		})
	})
}
