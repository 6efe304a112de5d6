// Package report assembles the normalized content of a health report.
//
// The assembler produces structured content only. Pagination, styling and
// document encoding belong to the renderer adapter.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/healtrack/healtrack/internal/domain/model"
)

// Title is the fixed report heading.
const Title = "HealTrack Health Report"

// maxReadings caps the readings table. Entries are taken in caller-supplied
// order; "most recent first" is the caller's responsibility, not ours.
const maxReadings = 5

// Placeholder lines for absent content.
const (
	noUserDetails = "No user details provided"
	notApplicable = "N/A"
)

// userFields is the fixed display order for the user block.
var userFields = []struct {
	key   string
	label string
}{
	{"name", "Name"},
	{"email", "Email"},
	{"age", "Age"},
	{"gender", "Gender"},
	{"id", "Id"},
}

// tableHeader is the fixed 6-column readings table header.
var tableHeader = []string{"Date", "Systolic", "Diastolic", "Heart Rate", "Glucose", "BMI"}

// Prediction carries a prior assessment result into the summary line.
type Prediction struct {
	Risk        string   `json:"risk"`
	Probability *float64 `json:"probability"`
}

// Content is the assembled report, ready for an external document renderer.
type Content struct {
	Title       string
	GeneratedAt time.Time
	UserLines   []string
	TableHeader []string
	TableRows   [][]string
	Summary     string
}

// Assemble builds report content from a user profile, a bounded list of
// readings, an optional prior prediction and an optional explicit summary.
func Assemble(user model.UserProfile, readings []model.HistoricalReading, pred *Prediction, aiSummary string) Content {
	return Content{
		Title:       Title,
		GeneratedAt: time.Now().UTC(),
		UserLines:   userLines(user),
		TableHeader: tableHeader,
		TableRows:   tableRows(readings),
		Summary:     summary(pred, aiSummary),
	}
}

func userLines(user model.UserProfile) []string {
	var lines []string
	for _, f := range userFields {
		if v, ok := user[f.key]; ok && v != nil {
			lines = append(lines, fmt.Sprintf("%s: %v", f.label, v))
		}
	}
	if len(lines) == 0 {
		lines = []string{noUserDetails}
	}
	return lines
}

func tableRows(readings []model.HistoricalReading) [][]string {
	if len(readings) > maxReadings {
		readings = readings[:maxReadings]
	}
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{
			r.Date,
			cell(r.Systolic),
			cell(r.Diastolic),
			cell(r.HeartRate),
			cell(r.Sugar),
			cell(r.BMI),
		})
	}
	return rows
}

// cell renders an optional measurement; absent values become empty cells,
// never omitted columns.
func cell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// summary prefers explicit text, then a synthesized line from the prediction,
// then the not-applicable placeholder.
func summary(pred *Prediction, aiSummary string) string {
	if aiSummary != "" {
		return aiSummary
	}
	if pred != nil && pred.Risk != "" && pred.Probability != nil {
		return fmt.Sprintf("Risk: %s (probability %s)", pred.Risk, strconv.FormatFloat(*pred.Probability, 'g', -1, 64))
	}
	return notApplicable
}
