package refdata

import (
	"strings"
	"testing"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	catalog := Default()

	if len(catalog.Profiles) != 12 {
		t.Errorf("profiles = %d, want 12", len(catalog.Profiles))
	}
	if len(catalog.Benchmarks) != 11 {
		t.Errorf("benchmarks = %d, want 11", len(catalog.Benchmarks))
	}

	// Every alias must resolve into the benchmark table, otherwise batch
	// rows using short codes would silently skip.
	byType := make(map[string]bool, len(catalog.Benchmarks))
	for _, b := range catalog.Benchmarks {
		byType[b.Type] = true
	}
	for code, canonical := range catalog.Aliases {
		if !byType[canonical] {
			t.Errorf("alias %q points at %q, which is not in the benchmark table", code, canonical)
		}
	}

	for _, p := range catalog.Profiles {
		if p.Payload.MaxKg < p.Payload.MinKg {
			t.Errorf("profile %q payload range inverted: %+v", p.Type, p.Payload)
		}
	}

	if _, ok := catalog.ProfileByType("Eicher 19 ft"); !ok {
		t.Error("ProfileByType failed for a known type")
	}
	if _, ok := catalog.ProfileByType("Eicher 19ft"); ok {
		t.Error("ProfileByType must match exact names only")
	}
}

func TestLoadYAMLPartialOverride(t *testing.T) {
	override := `
aliases:
  "40'": 40 ft ODC Trailer / Container
parameters:
  f1: 1.1
  f2: 1.1
  f3: 1.0
  f4: 1.0
  alpha: 0.9
  turn_sec: 2.0
  walk_speed_mps: 1.0
  loaded_speed_mps: 0.6
  load_delay_sec: 12.0
  unload_delay_sec: 9.0
`
	catalog, err := LoadYAML(strings.NewReader(override))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if catalog.Aliases["40'"] != "40 ft ODC Trailer / Container" {
		t.Errorf("aliases not overridden: %v", catalog.Aliases)
	}
	if catalog.Params.Alpha != 0.9 {
		t.Errorf("alpha = %v, want 0.9", catalog.Params.Alpha)
	}
	// untouched sections keep defaults
	if len(catalog.Profiles) != 12 || len(catalog.Benchmarks) != 11 {
		t.Errorf("default tables lost: %d profiles, %d benchmarks",
			len(catalog.Profiles), len(catalog.Benchmarks))
	}
}

func TestLoadYAMLVehicles(t *testing.T) {
	vehicles := `
vehicles:
  - type: Test Truck
    length_ft: 20
    breadth_ft: 8
    height_ft: 8
    payload_kg: 5000 to 8000
`
	catalog, err := LoadYAML(strings.NewReader(vehicles))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog.Profiles) != 1 {
		t.Fatalf("profiles = %d, want 1 (override replaces table)", len(catalog.Profiles))
	}
	p := catalog.Profiles[0]
	if p.Payload.MinKg != 5000 || p.Payload.MaxKg != 8000 {
		t.Errorf("payload = %+v, want 5000..8000", p.Payload)
	}

	bad := `
vehicles:
  - type: Broken
    payload_kg: heavy
`
	if _, err := LoadYAML(strings.NewReader(bad)); err == nil {
		t.Error("expected error for malformed payload, got none")
	}
}
