package model

// AppConfig holds application-wide preferences and default workpiece settings.
type AppConfig struct {
	// Defaults applied to new workpieces
	DefaultUnit          Unit    `json:"default_unit"`
	DefaultMargin        float64 `json:"default_margin"` // in DefaultUnit
	DefaultAllowRotation bool    `json:"default_allow_rotation"`
	DefaultCostPerSheet  float64 `json:"default_cost_per_sheet"` // 0 = no pricing

	// Application preferences
	CatalogPath   string   `json:"catalog_path"` // empty = ~/.bedmatch/catalog.json
	MaxResults    int      `json:"max_results"`  // 0 = show all
	Workers       int      `json:"workers"`      // <= 1 = sequential matching
	RecentExports []string `json:"recent_exports"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultUnit:          UnitMetric,
		DefaultMargin:        5.0,
		DefaultAllowRotation: true,
		DefaultCostPerSheet:  0,
		CatalogPath:          "",
		MaxResults:           0,
		Workers:              1,
		RecentExports:        []string{},
	}
}

// ApplyToWorkpiece copies the configured defaults into a workpiece.
// Dimensions and quantity are left untouched.
func (c AppConfig) ApplyToWorkpiece(w *Workpiece) {
	w.Unit = c.DefaultUnit
	w.Margin = c.DefaultMargin
	w.RotationAllowed = c.DefaultAllowRotation
}

// CostPerSheet returns the configured sheet price, or nil when pricing is off.
func (c AppConfig) CostPerSheet() *float64 {
	if c.DefaultCostPerSheet <= 0 {
		return nil
	}
	price := c.DefaultCostPerSheet
	return &price
}

// maxRecentExports bounds the RecentExports list.
const maxRecentExports = 10

// AddRecentExport records an exported report path, most recent first.
func (c *AppConfig) AddRecentExport(path string) {
	list := []string{path}
	for _, p := range c.RecentExports {
		if p != path {
			list = append(list, p)
		}
	}
	if len(list) > maxRecentExports {
		list = list[:maxRecentExports]
	}
	c.RecentExports = list
}
