// Package export provides functionality for exporting workspace match results
// to various file formats.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BedMatch/internal/model"
)

// ErrNoResults is returned when there is nothing to export.
var ErrNoResults = errors.New("no match results to export")

// rgb represents a fill color.
type rgb struct {
	R, G, B int
}

// rankColors colors the parts of each match page, cycling by rank.
var rankColors = []rgb{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	notesHeight  = 24.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// ExportPDF generates a PDF report for the ranked results of one workpiece.
// The first limit results (all when limit <= 0) each get a page with a scaled
// grid diagram, followed by a summary page with the ranking table.
func ExportPDF(path string, w model.Workpiece, results []model.MatchResult, limit int) error {
	if len(results) == 0 {
		return ErrNoResults
	}
	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, r := range results[:limit] {
		pdf.AddPage()
		renderMatchPage(pdf, w, r, i+1)
	}

	pdf.AddPage()
	if err := renderSummaryPage(pdf, w, results[:limit]); err != nil {
		return fmt.Errorf("failed to render summary page: %w", err)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// renderMatchPage draws one ranked match on the current PDF page.
func renderMatchPage(pdf *fpdf.Fpdf, w model.Workpiece, r model.MatchResult, rank int) {
	s := r.Surface
	l := r.Layout

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("#%d: %s (%s)", rank, s.Name, model.FormatSize(s.Length, s.Width, model.UnitMetric))
	if r.IsOptimal {
		title += " - optimal"
	}
	pdf.CellFormat(contentWidth, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Score: %d | Grid: %d x %d | Parts: %d of %d | Utilization: %.1f%% | Wastage: %.1f%%",
		r.MatchScore, l.PartsPerRow, l.Rows, l.TotalParts, w.Quantity, l.UtilizationPercent, l.WastagePercent)
	if l.Rotated {
		stats += " | Rotated 90\xb0"
	}
	pdf.CellFormat(contentWidth, 5, stats, "", 0, "L", false, 0, "")

	drawHeight := pageHeight - drawAreaTop - marginBottom - notesHeight
	if s.Length <= 0 || s.Width <= 0 {
		drawNotes(pdf, r, drawAreaTop)
		return
	}

	scale := math.Min(contentWidth/s.Length, drawHeight/s.Width)
	canvasW := s.Length * scale
	canvasH := s.Width * scale
	offsetX := marginLeft + (contentWidth-canvasW)/2
	offsetY := drawAreaTop

	// Surface background
	pdf.SetFillColor(225, 225, 225)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	col := rankColors[(rank-1)%len(rankColors)]
	pw := l.PartLength * scale
	ph := l.PartWidth * scale
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.2)
	for _, p := range l.Positions() {
		pdf.Rect(offsetX+p.X*scale, offsetY+p.Y*scale, pw, ph, "FD")
	}

	// Part size label in the first cell when it is large enough
	if l.TotalParts > 0 && pw > 18 && ph > 6 {
		label := fmt.Sprintf("%.0fx%.0f", l.PartLength, l.PartWidth)
		pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
		labelW := pdf.GetStringWidth(label)
		if labelW < pw-2 {
			pdf.SetXY(offsetX+(pw-labelW)/2, offsetY+ph/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}

	drawDimensionAnnotations(pdf, s, offsetX, offsetY, canvasW, canvasH)
	drawNotes(pdf, r, offsetY+canvasH+7)
}

// drawDimensionAnnotations adds length and width labels outside the surface rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, s model.CandidateSurface, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	lengthLabel := model.FormatDimension(s.Length, model.UnitMetric)
	lw := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX+(canvasW-lw)/2, offsetY+canvasH+1)
	pdf.CellFormat(lw, 4, lengthLabel, "", 0, "C", false, 0, "")

	widthLabel := model.FormatDimension(s.Width, model.UnitMetric)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	ww := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX-3-ww/2, offsetY+canvasH/2-2)
	pdf.CellFormat(ww, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawNotes lists the recommendations and warnings of a match below the diagram.
func drawNotes(pdf *fpdf.Fpdf, r model.MatchResult, y float64) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range r.Recommendations {
		if y > pageHeight-marginBottom {
			return
		}
		pdf.SetTextColor(0, 120, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4, tr("+ "+rec), "", 0, "L", false, 0, "")
		y += 4
	}
	for _, warn := range r.Warnings {
		if y > pageHeight-marginBottom {
			return
		}
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4, tr("! "+warn), "", 0, "L", false, 0, "")
		y += 4
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the ranking table, the best match warnings and a QR
// code carrying the best match summary.
func renderSummaryPage(pdf *fpdf.Fpdf, w model.Workpiece, results []model.MatchResult) error {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, "Workspace Match Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Workpiece", "", 0, "L", false, 0, "")
	y += 9

	wp := w.Normalize()
	rotation := "not allowed"
	if w.RotationAllowed {
		rotation = "allowed"
	}
	items := []struct {
		label string
		value string
	}{
		{"Size", model.FormatSize(wp.Length, wp.Width, w.Unit)},
		{"Quantity", fmt.Sprintf("%d", w.Quantity)},
		{"Margin", model.FormatDimension(wp.Margin, w.Unit)},
		{"Rotation", rotation},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(40, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	best := results[0]
	if err := drawSummaryQR(pdf, best, pageWidth-marginRight-40, marginTop+16, 40); err != nil {
		return err
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Ranking", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 65, 40, 25, 25, 25, 25, 20, 20}
	headers := []string{"Rank", "Surface", "Size", "Grid", "Parts", "Utilization", "Wastage", "Score", "Optimal"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, r := range results {
		if y > pageHeight-marginBottom-30 {
			break
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			r.Surface.Name,
			fmt.Sprintf("%.0f x %.0f", r.Surface.Length, r.Surface.Width),
			fmt.Sprintf("%d x %d", r.Layout.PartsPerRow, r.Layout.Rows),
			fmt.Sprintf("%d", r.Layout.TotalParts),
			fmt.Sprintf("%.1f%%", r.Layout.UtilizationPercent),
			fmt.Sprintf("%.1f%%", r.Layout.WastagePercent),
			fmt.Sprintf("%d", r.MatchScore),
			yesNo(r.IsOptimal),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(best.Warnings) > 0 {
		y += 6
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Warnings for "+best.Surface.Name, "", 0, "L", false, 0, "")
		y += 8

		tr := pdf.UnicodeTranslatorFromDescriptor("")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, warn := range best.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, tr("- "+warn), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by BedMatch - CNC Workspace Matcher", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
