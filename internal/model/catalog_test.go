package model

import "testing"

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat.Surfaces) == 0 {
		t.Fatal("default catalog should not be empty")
	}
	ids := map[string]bool{}
	for _, s := range cat.Surfaces {
		if s.Length <= 0 || s.Width <= 0 {
			t.Errorf("surface %s has invalid size", s.Name)
		}
		if s.Category == "" {
			t.Errorf("surface %s has no category", s.Name)
		}
		if ids[s.ID] {
			t.Errorf("duplicate ID %s", s.ID)
		}
		ids[s.ID] = true
	}
}

func TestCatalogAddDerivesCategory(t *testing.T) {
	cat := SurfaceCatalog{}
	cat.Add(CandidateSurface{ID: "x1", Name: "Custom", Length: 2440, Width: 1220})
	if cat.Surfaces[0].Category != CategoryLarge {
		t.Errorf("expected large, got %s", cat.Surfaces[0].Category)
	}
}

func TestCatalogFindAndRemove(t *testing.T) {
	cat := DefaultCatalog()
	first := cat.Surfaces[0]

	if got := cat.FindByID(first.ID); got == nil || got.Name != first.Name {
		t.Errorf("FindByID did not return %s", first.Name)
	}
	if got := cat.FindByName("Router 1300x900"); got == nil || got.Length != 1300 {
		t.Error("FindByName did not find the router bed")
	}
	if cat.FindByName("nope") != nil {
		t.Error("expected nil for unknown name")
	}

	n := len(cat.Surfaces)
	if !cat.Remove(first.ID) {
		t.Fatal("expected Remove to succeed")
	}
	if len(cat.Surfaces) != n-1 {
		t.Errorf("expected %d surfaces, got %d", n-1, len(cat.Surfaces))
	}
	if cat.Remove(first.ID) {
		t.Error("second Remove should report false")
	}
}

func TestCatalogNamesAndCategories(t *testing.T) {
	cat := SurfaceCatalog{}
	cat.Add(NewCandidateSurface("A", 300, 300))
	cat.Add(NewCandidateSurface("B", 1300, 900))
	cat.Add(NewCandidateSurface("C", 250, 200))

	names := cat.Names()
	if len(names) != 3 || names[0] != "A" || names[2] != "C" {
		t.Errorf("unexpected names %v", names)
	}
	small := cat.ByCategory(CategorySmall)
	if len(small) != 2 || small[0].Name != "A" || small[1].Name != "C" {
		t.Errorf("unexpected small surfaces %v", small)
	}
}
