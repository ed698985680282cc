package model

// SurfaceCatalog holds the candidate work surfaces the matcher evaluates.
type SurfaceCatalog struct {
	Surfaces []CandidateSurface `json:"surfaces"`
}

// DefaultCatalog returns a catalog populated with common CNC bed and sheet sizes.
func DefaultCatalog() SurfaceCatalog {
	return SurfaceCatalog{
		Surfaces: []CandidateSurface{
			NewCandidateSurface("Desktop 300x300", 300, 300),
			NewCandidateSurface("Desktop 600x400", 600, 400),
			NewCandidateSurface("Hobby 1000x600", 1000, 600),
			NewCandidateSurface("Router 1300x900", 1300, 900),
			NewCandidateSurface("Half Sheet 1220x1220 (4'x4')", 1220, 1220),
			NewCandidateSurface("Full Sheet 2440x1220 (8'x4')", 2440, 1220),
			NewCandidateSurface("Router 2500x1300", 2500, 1300),
			NewCandidateSurface("Router 3000x1500", 3000, 1500),
			NewCandidateSurface("Full Sheet 3050x1525 (10'x5')", 3050, 1525),
			NewCandidateSurface("Industrial 4000x2000", 4000, 2000),
		},
	}
}

// Add appends a surface, deriving its category when none is set.
func (c *SurfaceCatalog) Add(s CandidateSurface) {
	if s.Category == "" {
		s.Category = CategoryForSize(s.Length, s.Width)
	}
	c.Surfaces = append(c.Surfaces, s)
}

// Remove deletes the surface with the given ID and reports whether it existed.
func (c *SurfaceCatalog) Remove(id string) bool {
	for i := range c.Surfaces {
		if c.Surfaces[i].ID == id {
			c.Surfaces = append(c.Surfaces[:i], c.Surfaces[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the surface with the given ID, or nil.
func (c *SurfaceCatalog) FindByID(id string) *CandidateSurface {
	for i := range c.Surfaces {
		if c.Surfaces[i].ID == id {
			return &c.Surfaces[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first surface with the given name, or nil.
func (c *SurfaceCatalog) FindByName(name string) *CandidateSurface {
	for i := range c.Surfaces {
		if c.Surfaces[i].Name == name {
			return &c.Surfaces[i]
		}
	}
	return nil
}

// Names returns the surface names in catalog order.
func (c *SurfaceCatalog) Names() []string {
	names := make([]string, len(c.Surfaces))
	for i, s := range c.Surfaces {
		names[i] = s.Name
	}
	return names
}

// ByCategory returns the surfaces in the given category, preserving order.
func (c *SurfaceCatalog) ByCategory(cat SizeCategory) []CandidateSurface {
	var out []CandidateSurface
	for _, s := range c.Surfaces {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}
