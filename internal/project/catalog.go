package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/BedMatch/internal/model"
)

// DefaultCatalogPath returns the default file path for the surface catalog.
// This is located at ~/.bedmatch/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// CatalogPath returns the catalog path configured in cfg, or the default.
func CatalogPath(cfg model.AppConfig) string {
	if cfg.CatalogPath != "" {
		return cfg.CatalogPath
	}
	return DefaultCatalogPath()
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.SurfaceCatalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.SurfaceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.SurfaceCatalog{}, err
	}
	var cat model.SurfaceCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.SurfaceCatalog{}, err
	}
	if cat.Surfaces == nil {
		cat.Surfaces = []model.CandidateSurface{}
	}
	for i := range cat.Surfaces {
		if cat.Surfaces[i].Category == "" {
			cat.Surfaces[i].Category = model.CategoryForSize(cat.Surfaces[i].Length, cat.Surfaces[i].Width)
		}
	}
	return cat, nil
}

// surfaceKey identifies a surface by name and size, independent of its ID.
type surfaceKey struct {
	name          string
	length, width float64
}

func keyOf(s model.CandidateSurface) surfaceKey {
	return surfaceKey{strings.ToLower(strings.TrimSpace(s.Name)), s.Length, s.Width}
}

// MergeCatalog appends the imported surfaces to the existing catalog.
// A surface is skipped when its ID, or its name and size, is already present.
// The number added is returned.
func MergeCatalog(existing model.SurfaceCatalog, imported []model.CandidateSurface) (model.SurfaceCatalog, int) {
	ids := make(map[string]bool, len(existing.Surfaces))
	keys := make(map[surfaceKey]bool, len(existing.Surfaces))
	for _, s := range existing.Surfaces {
		ids[s.ID] = true
		keys[keyOf(s)] = true
	}

	added := 0
	for _, s := range imported {
		k := keyOf(s)
		if ids[s.ID] || keys[k] {
			continue
		}
		existing.Add(s)
		ids[s.ID] = true
		keys[k] = true
		added++
	}
	return existing, added
}
