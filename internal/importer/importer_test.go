package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Name,Length,Width\nRouter,1300,900\nHobby,1000,600\n", ','},
		{"semicolon", "Name;Length;Width\nRouter;1300;900\nHobby;1000;600\n", ';'},
		{"tab", "Name\tLength\tWidth\nRouter\t1300\t900\nHobby\t1000\t600\n", '\t'},
		{"pipe", "Name|Length|Width\nRouter|1300|900\nHobby|1000|600\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q delimiter, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Name", "Length", "Width", "Category"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Length != 1 || mapping.Width != 2 || mapping.Category != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"X TRAVEL", "Y Travel", "Machine", "Class"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Length != 0 {
		t.Errorf("expected Length at 0, got %d", mapping.Length)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Name != 2 {
		t.Errorf("expected Name at 2, got %d", mapping.Name)
	}
	if mapping.Category != 3 {
		t.Errorf("expected Category at 3, got %d", mapping.Category)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Router", "1300", "900"})

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	if mapping.Name != 0 || mapping.Length != 1 || mapping.Width != 2 || mapping.Category != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCatalogCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,Length,Width,Category\nRouter 1300x900,1300,900,medium\nFull Sheet,2440,1220,\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 2 {
		t.Fatalf("expected 2 surfaces, got %d", len(result.Surfaces))
	}

	router := result.Surfaces[0]
	if router.Name != "Router 1300x900" || router.Length != 1300 || router.Width != 900 {
		t.Errorf("unexpected surface %+v", router)
	}
	if router.Category != model.CategoryMedium {
		t.Errorf("expected medium, got %s", router.Category)
	}
	if router.ID == "" {
		t.Error("expected an ID to be assigned")
	}

	// 2440 x 1220 = 2.98 m²
	if result.Surfaces[1].Category != model.CategoryLarge {
		t.Errorf("expected derived category large, got %s", result.Surfaces[1].Category)
	}
}

func TestImportCatalogCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Desktop,300,300\nIndustrial,4000,2000,xl\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 2 {
		t.Fatalf("expected 2 surfaces, got %d", len(result.Surfaces))
	}
	if result.Surfaces[0].Category != model.CategorySmall {
		t.Errorf("expected small, got %s", result.Surfaces[0].Category)
	}
	if result.Surfaces[1].Category != model.CategoryXLarge {
		t.Errorf("expected xlarge, got %s", result.Surfaces[1].Category)
	}
}

func TestImportCatalogCSVFromReader_ReorderedColumns(t *testing.T) {
	data := "Width;Length;Name\n900;1300;Router\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ';')

	if len(result.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d (errors: %v)", len(result.Surfaces), result.Errors)
	}
	s := result.Surfaces[0]
	if s.Length != 1300 || s.Width != 900 || s.Name != "Router" {
		t.Errorf("unexpected surface %+v", s)
	}
}

func TestImportCatalogCSVFromReader_UnrecognizedHeaderIsSkipped(t *testing.T) {
	data := "Machine Name,Bed X,Bed Y\nRouter,1300,900\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d (errors: %v)", len(result.Surfaces), result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
}

func TestImportCatalogCSVFromReader_InvalidRows(t *testing.T) {
	data := "Name,Length,Width\nGood,1000,600\nBad,abc,600\nNegative,-5,600\nShort,1000\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Surfaces) != 1 {
		t.Errorf("expected 1 valid surface, got %d", len(result.Surfaces))
	}
	if len(result.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") || !strings.Contains(result.Errors[0], "Invalid length") {
		t.Errorf("unexpected first error %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[2], "Missing width") {
		t.Errorf("unexpected last error %q", result.Errors[2])
	}
}

func TestImportCatalogCSVFromReader_UnknownCategory(t *testing.T) {
	data := "Name,Length,Width,Category\nHobby,1000,600,gigantic\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(result.Surfaces))
	}
	if result.Surfaces[0].Category != model.CategoryMedium {
		t.Errorf("expected derived medium, got %s", result.Surfaces[0].Category)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown category 'gigantic'") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown category warning, got %v", result.Warnings)
	}
}

func TestImportCatalogCSVFromReader_EmptyName(t *testing.T) {
	data := "Name,Length,Width\n,1000,600\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(result.Surfaces))
	}
	if result.Surfaces[0].Name != "Surface 1" {
		t.Errorf("expected generated name, got %q", result.Surfaces[0].Name)
	}
}

func TestImportCatalogCSVFromReader_MissingRequiredColumn(t *testing.T) {
	data := "Name,Length,Category\nHobby,1000,medium\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Width") {
		t.Errorf("expected missing Width column error, got %v", result.Errors)
	}
	if len(result.Surfaces) != 0 {
		t.Errorf("expected no surfaces, got %d", len(result.Surfaces))
	}
}

func TestImportCatalogCSVFromReader_Empty(t *testing.T) {
	result := ImportCatalogCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestImportCatalogCSV_SemicolonFile(t *testing.T) {
	path := writeTempFile(t, "catalog.csv", "Name;Length;Width\nRouter;1300;900\nHobby;1000;600\n")

	result := ImportCatalogCSV(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 2 {
		t.Fatalf("expected 2 surfaces, got %d", len(result.Surfaces))
	}
	if len(result.Warnings) == 0 || result.Warnings[0] != "Detected semicolon delimiter" {
		t.Errorf("expected delimiter warning first, got %v", result.Warnings)
	}
}

func TestImportCatalogCSV_FileNotFound(t *testing.T) {
	result := ImportCatalogCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCatalogCSV_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "  \n")
	result := ImportCatalogCSV(path)
	if len(result.Errors) != 1 || result.Errors[0] != "File is empty" {
		t.Errorf("expected empty file error, got %v", result.Errors)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportCatalogExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Length", "Width", "Category"},
		{"Router 3000x1500", 3000, 1500, "xlarge"},
		{"Desktop", 600, 400, ""},
	})

	result := ImportCatalog(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 2 {
		t.Fatalf("expected 2 surfaces, got %d", len(result.Surfaces))
	}
	if result.Surfaces[0].Length != 3000 || result.Surfaces[0].Category != model.CategoryXLarge {
		t.Errorf("unexpected first surface %+v", result.Surfaces[0])
	}
	if result.Surfaces[1].Category != model.CategorySmall {
		t.Errorf("expected derived small, got %s", result.Surfaces[1].Category)
	}
}

func TestImportCatalogExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Length", "Width"},
		{"Broken", "wide", 600},
	})

	result := ImportCatalogExcel(path)

	if len(result.Surfaces) != 0 {
		t.Errorf("expected no surfaces, got %d", len(result.Surfaces))
	}
	if len(result.Errors) != 1 || !strings.HasPrefix(result.Errors[0], "Row 2") {
		t.Errorf("expected a Row 2 error, got %v", result.Errors)
	}
}

func TestImportCatalogExcel_FileNotFound(t *testing.T) {
	result := ImportCatalogExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
