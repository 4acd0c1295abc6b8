package models

import "testing"

func TestAvailabilityIsAvailable(t *testing.T) {
	tests := []struct {
		a    Availability
		want bool
	}{
		{Available, true},
		{Unavailable, false},
		{2, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := tt.a.IsAvailable(); got != tt.want {
			t.Errorf("Availability(%d).IsAvailable() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	drives := []Drive{
		{Model: "Samsung SSD", Availability: Available},
		{Model: "WD SSD", Availability: Unavailable},
		{Model: "Intel SSD", Availability: 2},
	}

	catalog, availability := Columns(drives)
	if len(catalog) != 3 || len(availability) != 3 {
		t.Fatalf("Columns lengths = %d/%d, want 3/3", len(catalog), len(availability))
	}
	for i := range drives {
		if catalog[i] != drives[i].Model {
			t.Errorf("catalog[%d] = %q, want %q", i, catalog[i], drives[i].Model)
		}
		if availability[i] != drives[i].Availability {
			t.Errorf("availability[%d] = %d, want %d", i, availability[i], drives[i].Availability)
		}
	}
}

func TestColumnsEmpty(t *testing.T) {
	catalog, availability := Columns(nil)
	if catalog == nil || availability == nil {
		t.Fatal("Columns(nil) should return empty, non-nil slices")
	}
	if len(catalog) != 0 || len(availability) != 0 {
		t.Errorf("Columns(nil) lengths = %d/%d, want 0/0", len(catalog), len(availability))
	}
}

func TestEmptySelection(t *testing.T) {
	s := EmptySelection()
	if s.Matches == nil {
		t.Fatal("EmptySelection().Matches is nil")
	}
	if s.Count != 0 {
		t.Errorf("EmptySelection().Count = %d, want 0", s.Count)
	}
}
