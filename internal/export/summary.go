package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BedMatch/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// MatchSummary holds the data encoded into the summary page QR code.
type MatchSummary struct {
	SurfaceID   string  `json:"id"`
	SurfaceName string  `json:"surface"`
	Length      float64 `json:"length_mm"`
	Width       float64 `json:"width_mm"`
	Grid        string  `json:"grid"`
	TotalParts  int     `json:"parts"`
	Rotated     bool    `json:"rotated"`
	Utilization float64 `json:"utilization"`
	Score       int     `json:"score"`
	Optimal     bool    `json:"optimal"`
}

// SummarizeMatch extracts the compact summary of a match result.
func SummarizeMatch(r model.MatchResult) MatchSummary {
	return MatchSummary{
		SurfaceID:   r.Surface.ID,
		SurfaceName: r.Surface.Name,
		Length:      r.Surface.Length,
		Width:       r.Surface.Width,
		Grid:        fmt.Sprintf("%dx%d", r.Layout.PartsPerRow, r.Layout.Rows),
		TotalParts:  r.Layout.TotalParts,
		Rotated:     r.Layout.Rotated,
		Utilization: r.Layout.UtilizationPercent,
		Score:       r.MatchScore,
		Optimal:     r.IsOptimal,
	}
}

// summaryQRCode returns a PNG QR code encoding the match summary as JSON.
func summaryQRCode(r model.MatchResult) ([]byte, error) {
	data, err := json.Marshal(SummarizeMatch(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match summary: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// drawSummaryQR places the QR code of a match summary at (x, y) with the given size.
func drawSummaryQR(pdf *fpdf.Fpdf, r model.MatchResult, x, y, size float64) error {
	png, err := summaryQRCode(r)
	if err != nil {
		return err
	}

	imgName := "qr_best_" + r.Surface.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x, y, size, size, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, y+size)
	pdf.CellFormat(size, 4, "Best match", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
