package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.DefaultUnit != UnitMetric {
		t.Errorf("expected metric default, got %s", cfg.DefaultUnit)
	}
	if cfg.DefaultMargin != 5.0 {
		t.Errorf("expected default margin 5, got %f", cfg.DefaultMargin)
	}
	if cfg.RecentExports == nil {
		t.Error("RecentExports should not be nil")
	}
	if cfg.CostPerSheet() != nil {
		t.Error("expected no default price")
	}
}

func TestApplyToWorkpiece(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultUnit = UnitImperial
	cfg.DefaultMargin = 0.125
	cfg.DefaultAllowRotation = false

	w := Workpiece{Length: 10, Width: 5, Quantity: 4, RotationAllowed: true}
	cfg.ApplyToWorkpiece(&w)

	if w.Unit != UnitImperial {
		t.Errorf("expected imperial, got %s", w.Unit)
	}
	if w.Margin != 0.125 {
		t.Errorf("expected margin 0.125, got %f", w.Margin)
	}
	if w.RotationAllowed {
		t.Error("expected rotation to be disabled")
	}
	if w.Length != 10 || w.Quantity != 4 {
		t.Error("dimensions and quantity must not change")
	}
}

func TestCostPerSheet(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultCostPerSheet = 39.99
	p := cfg.CostPerSheet()
	if p == nil || *p != 39.99 {
		t.Errorf("expected 39.99, got %v", p)
	}
}

func TestAddRecentExport(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 12; i++ {
		cfg.AddRecentExport(string(rune('a' + i)))
	}
	if len(cfg.RecentExports) != maxRecentExports {
		t.Fatalf("expected %d entries, got %d", maxRecentExports, len(cfg.RecentExports))
	}
	if cfg.RecentExports[0] != "l" {
		t.Errorf("most recent should be first, got %s", cfg.RecentExports[0])
	}

	cfg.AddRecentExport("c")
	if cfg.RecentExports[0] != "c" {
		t.Errorf("re-added path should move to front, got %s", cfg.RecentExports[0])
	}
	seen := 0
	for _, p := range cfg.RecentExports {
		if p == "c" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("expected path once, found %d times", seen)
	}
}
