package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BedMatch/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMargin = 2.0
	cfg.DefaultCostPerSheet = 55.0
	cat := model.DefaultCatalog()

	if err := ExportAllData(path, cfg, cat); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultMargin != 2.0 {
		t.Errorf("expected DefaultMargin=2.0, got %f", backup.Config.DefaultMargin)
	}
	if backup.Config.DefaultCostPerSheet != 55.0 {
		t.Errorf("expected DefaultCostPerSheet=55, got %f", backup.Config.DefaultCostPerSheet)
	}
	if len(backup.Catalog.Surfaces) != len(cat.Surfaces) {
		t.Errorf("expected %d surfaces, got %d", len(cat.Surfaces), len(backup.Catalog.Surfaces))
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"default_margin":2}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	if err := ExportAllData(path, model.DefaultAppConfig(), model.SurfaceCatalog{}); err != nil {
		t.Fatalf("ExportAllData should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("backup file was not created")
	}
}

func TestImportAllDataFillsNilFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	data := []byte(`{"version":"1.0.0","created_at":"2025-01-01T00:00:00Z","config":{"recent_exports":null}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentExports == nil {
		t.Error("RecentExports should not be nil after import")
	}
	if backup.Catalog.Surfaces == nil {
		t.Error("catalog surfaces should not be nil after import")
	}
	if backup.Config.DefaultUnit != model.UnitMetric {
		t.Errorf("expected metric default unit, got %s", backup.Config.DefaultUnit)
	}
}
