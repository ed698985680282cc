package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the results workbook.
const (
	MatchesSheet = "Matches"
	NotesSheet   = "Notes"
)

var matchHeaders = []interface{}{
	"Rank", "Surface", "Length (mm)", "Width (mm)", "Category", "Grid",
	"Parts", "Rotated", "Utilization %", "Wastage %", "Score", "Optimal",
}

var catalogHeaders = []string{"Name", "Length", "Width", "Category"}

// ExportExcel writes ranked match results to an Excel workbook with a
// Matches sheet and a Notes sheet listing recommendations and warnings.
func ExportExcel(path string, results []model.MatchResult) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), MatchesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeRow(f, MatchesSheet, 1, matchHeaders); err != nil {
		return err
	}
	for i, r := range results {
		row := []interface{}{
			i + 1,
			r.Surface.Name,
			r.Surface.Length,
			r.Surface.Width,
			string(r.Surface.Category),
			fmt.Sprintf("%d x %d", r.Layout.PartsPerRow, r.Layout.Rows),
			r.Layout.TotalParts,
			yesNo(r.Layout.Rotated),
			r.Layout.UtilizationPercent,
			r.Layout.WastagePercent,
			r.MatchScore,
			yesNo(r.IsOptimal),
		}
		if err := writeRow(f, MatchesSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(NotesSheet); err != nil {
		return fmt.Errorf("failed to create notes sheet: %w", err)
	}
	if err := writeRow(f, NotesSheet, 1, []interface{}{"Rank", "Surface", "Type", "Note"}); err != nil {
		return err
	}
	line := 2
	for i, r := range results {
		for _, rec := range r.Recommendations {
			if err := writeRow(f, NotesSheet, line, []interface{}{i + 1, r.Surface.Name, "recommendation", rec}); err != nil {
				return err
			}
			line++
		}
		for _, warn := range r.Warnings {
			if err := writeRow(f, NotesSheet, line, []interface{}{i + 1, r.Surface.Name, "warning", warn}); err != nil {
				return err
			}
			line++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ExportCatalog writes a surface catalog as CSV or, for .xlsx paths, as an
// Excel workbook. The layout matches what the catalog importer reads.
func ExportCatalog(path string, catalog model.SurfaceCatalog) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return exportCatalogExcel(path, catalog)
	default:
		return exportCatalogCSV(path, catalog)
	}
}

func catalogRecord(s model.CandidateSurface) []string {
	return []string{
		s.Name,
		strconv.FormatFloat(s.Length, 'f', -1, 64),
		strconv.FormatFloat(s.Width, 'f', -1, 64),
		string(s.Category),
	}
}

func exportCatalogCSV(path string, catalog model.SurfaceCatalog) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(catalogHeaders); err != nil {
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, s := range catalog.Surfaces {
		if err := w.Write(catalogRecord(s)); err != nil {
			return fmt.Errorf("failed to write surface %q: %w", s.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func exportCatalogExcel(path string, catalog model.SurfaceCatalog) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(catalogHeaders))
	for i, h := range catalogHeaders {
		header[i] = h
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, s := range catalog.Surfaces {
		row := []interface{}{s.Name, s.Length, s.Width, string(s.Category)}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRow writes values into consecutive cells of a 1-based row.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
