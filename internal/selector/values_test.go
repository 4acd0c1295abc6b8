package selector

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/drivepick/pkg/models"
)

func TestSelectValues(t *testing.T) {
	tests := []struct {
		name          string
		catalog       []any
		availability  []any
		manufacturers []any
		want          models.Selection
	}{
		{
			name:          "ints",
			catalog:       []any{"Samsung SSD", "WD SSD"},
			availability:  []any{1, 0},
			manufacturers: []any{"Samsung", "WD"},
			want:          sel("Samsung SSD"),
		},
		{
			name:          "floats and json numbers",
			catalog:       []any{"A SSD", "B SSD", "C SSD", "D SSD"},
			availability:  []any{1.0, json.Number("1"), 1.5, json.Number("1.0")},
			manufacturers: []any{"SSD"},
			want:          sel("A SSD", "B SSD", "D SSD"),
		},
		{
			name:          "bool true equals marker",
			catalog:       []any{"A SSD", "B SSD"},
			availability:  []any{true, false},
			manufacturers: []any{"SSD"},
			want:          sel("A SSD"),
		},
		{
			name:          "string marker is not available",
			catalog:       []any{"A SSD"},
			availability:  []any{"1"},
			manufacturers: []any{"SSD"},
			want:          sel(),
		},
		{
			name:          "null availability is not available",
			catalog:       []any{"A SSD"},
			availability:  []any{nil},
			manufacturers: []any{"SSD"},
			want:          sel(),
		},
		{
			name:          "negative and large markers",
			catalog:       []any{"A SSD", "B SSD"},
			availability:  []any{-1, 2},
			manufacturers: []any{"SSD"},
			want:          sel(),
		},
		{
			name:          "truncates to shorter",
			catalog:       []any{"X", "Y", "Z"},
			availability:  []any{1, 1, 1, 1},
			manufacturers: []any{"X", "Y"},
			want:          sel("X", "Y"),
		},
		{
			name:          "null catalog entry never compared when unavailable",
			catalog:       []any{nil, "Samsung SSD"},
			availability:  []any{0, 1},
			manufacturers: []any{"Samsung"},
			want:          sel("Samsung SSD"),
		},
		{
			name:          "null catalog entry never compared without fragments",
			catalog:       []any{nil},
			availability:  []any{1},
			manufacturers: []any{},
			want:          sel(),
		},
		{
			name:          "bad fragment after a match is not reached",
			catalog:       []any{"Samsung SSD"},
			availability:  []any{1},
			manufacturers: []any{"Samsung", 42},
			want:          sel("Samsung SSD"),
		},
		{
			name:          "typed availability",
			catalog:       []any{"Samsung SSD", "WD SSD"},
			availability:  []any{models.Available, models.Unavailable},
			manufacturers: []any{""},
			want:          sel("Samsung SSD"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectValues(tt.catalog, tt.availability, tt.manufacturers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SelectValues() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectValues_TypeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		catalog       []any
		availability  []any
		manufacturers []any
		wantMsg       string
	}{
		{
			name:          "null model",
			catalog:       []any{nil},
			availability:  []any{1},
			manufacturers: []any{"Samsung"},
			wantMsg:       "catalog[0]: type mismatch: value is not text (got <nil>)",
		},
		{
			name:          "numeric model after valid matches",
			catalog:       []any{"Samsung SSD", 500},
			availability:  []any{1, 1},
			manufacturers: []any{"Samsung"},
			wantMsg:       "catalog[1]: type mismatch: value is not text (got int)",
		},
		{
			name:          "null fragment",
			catalog:       []any{"Kingston SSD"},
			availability:  []any{1},
			manufacturers: []any{"Samsung", nil},
			wantMsg:       "manufacturers[1]: type mismatch: value is not text (got <nil>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectValues(tt.catalog, tt.availability, tt.manufacturers)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("SelectValues() error = %v, want ErrTypeMismatch", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
			if got.Matches != nil || got.Count != 0 {
				t.Errorf("SelectValues() returned partial result %+v on error", got)
			}
		})
	}
}

func TestSelectValues_AgreesWithSelect(t *testing.T) {
	catalog := []string{"Samsung X", "AWD Y", "Intel Z", "WD Q"}
	availability := []models.Availability{1, 1, 0, 1}
	manufacturers := []string{"WD", "Intel"}

	looseCatalog := make([]any, len(catalog))
	for i := range catalog {
		looseCatalog[i] = catalog[i]
	}
	looseAvail := make([]any, len(availability))
	for i := range availability {
		looseAvail[i] = int(availability[i])
	}
	looseManuf := make([]any, len(manufacturers))
	for i := range manufacturers {
		looseManuf[i] = manufacturers[i]
	}

	want := Select(catalog, availability, manufacturers)
	got, err := SelectValues(looseCatalog, looseAvail, looseManuf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectValues() disagrees with Select() (-want +got):\n%s", diff)
	}
}

func TestSelectValues_YAMLDocument(t *testing.T) {
	doc := []byte(`
catalog: ["Samsung SSD", null, "WD SSD"]
availability: [1, 0, 1]
manufacturers: [Samsung, WD]
`)
	var in struct {
		Catalog       []any `yaml:"catalog"`
		Availability  []any `yaml:"availability"`
		Manufacturers []any `yaml:"manufacturers"`
	}
	if err := yaml.Unmarshal(doc, &in); err != nil {
		t.Fatalf("yaml: %v", err)
	}

	got, err := SelectValues(in.Catalog, in.Availability, in.Manufacturers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(sel("Samsung SSD", "WD SSD"), got); diff != "" {
		t.Errorf("SelectValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{1, true},
		{int8(1), true},
		{int64(1), true},
		{uint(1), true},
		{uint64(1), true},
		{float32(1), true},
		{1.0, true},
		{json.Number("1"), true},
		{json.Number("1e0"), true},
		{models.Available, true},
		{true, true},
		{0, false},
		{2, false},
		{-1, false},
		{1.5, false},
		{json.Number("1.5"), false},
		{json.Number("x"), false},
		{false, false},
		{"1", false},
		{nil, false},
		{models.Availability(2), false},
	}
	for _, tt := range tests {
		if got := IsAvailable(tt.v); got != tt.want {
			t.Errorf("IsAvailable(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
