// Package render turns assembled report content into a PDF document.
//
// It is a thin adapter over go-pdf/fpdf; everything about what goes into the
// report is decided by the report assembler, not here.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/healtrack/healtrack/internal/domain/report"
)

// Page layout constants (mm).
const (
	pageMargin    = 12.7
	titleSize     = 18.0
	headingSize   = 13.0
	bodySize      = 10.0
	lineHeight    = 6.0
	headingHeight = 8.0
	dateColWidth  = 32.0
	valColWidth   = 26.0
)

// PDFRenderer renders report content onto an A4 page.
type PDFRenderer struct{}

// NewPDFRenderer creates a renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render encodes the content as a PDF document.
func (r *PDFRenderer) Render(_ context.Context, content report.Content) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, headingHeight, content.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", bodySize)
	pdf.CellFormat(0, lineHeight, "Generated: "+content.GeneratedAt.Format("2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// User details
	r.heading(pdf, "User Details")
	for _, line := range content.UserLines {
		pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Readings table
	r.heading(pdf, "Last 5 Health Readings")
	r.table(pdf, content.TableHeader, content.TableRows)
	pdf.Ln(4)

	// Summary
	r.heading(pdf, "AI Prediction Summary")
	pdf.MultiCell(0, lineHeight, content.Summary, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", headingSize)
	pdf.CellFormat(0, headingHeight, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", bodySize)
}

func (r *PDFRenderer) table(pdf *fpdf.Fpdf, header []string, rows [][]string) {
	widths := colWidths(len(header))

	pdf.SetFont("Helvetica", "B", bodySize)
	pdf.SetFillColor(243, 244, 246)
	for i, h := range header {
		pdf.CellFormat(widths[i], lineHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", bodySize)
	for n, row := range rows {
		// Striped rows for readability
		fill := n%2 == 1
		pdf.SetFillColor(250, 250, 250)
		for i, cell := range row {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], lineHeight, cell, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func colWidths(cols int) []float64 {
	widths := make([]float64, cols)
	for i := range widths {
		widths[i] = valColWidth
	}
	if cols > 0 {
		widths[0] = dateColWidth
	}
	return widths
}
