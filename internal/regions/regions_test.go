package regions

import (
	"encoding/json"
	"testing"
)

func TestGrowingRegions(t *testing.T) {
	t.Parallel()

	fc := GrowingRegions()
	if fc.Type != "FeatureCollection" {
		t.Errorf("Type = %q, want FeatureCollection", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(fc.Features))
	}

	for _, f := range fc.Features {
		if f.Type != "Feature" {
			t.Errorf("feature %q: Type = %q, want Feature", f.Properties.Name, f.Type)
		}
		if f.Geometry.Type != "Polygon" {
			t.Errorf("feature %q: Geometry.Type = %q, want Polygon", f.Properties.Name, f.Geometry.Type)
		}
		if len(f.Geometry.Coordinates) != 1 {
			t.Fatalf("feature %q: expected a single ring, got %d", f.Properties.Name, len(f.Geometry.Coordinates))
		}
		ring := f.Geometry.Coordinates[0]
		if len(ring) < 4 {
			t.Fatalf("feature %q: ring too short: %d points", f.Properties.Name, len(ring))
		}
		if ring[0] != ring[len(ring)-1] {
			t.Errorf("feature %q: ring is not closed", f.Properties.Name)
		}
	}
}

func TestFindRegion(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Yirgacheffe", "Sidamo"} {
		f := FindRegion(name)
		if f == nil {
			t.Fatalf("FindRegion(%q) = nil", name)
		}
		if f.Properties.Name != name {
			t.Errorf("FindRegion(%q).Properties.Name = %q", name, f.Properties.Name)
		}
	}

	if f := FindRegion("Atlantis"); f != nil {
		t.Errorf("FindRegion(Atlantis) = %+v, want nil", f)
	}
}

func TestGrowingRegions_MarshalsAsGeoJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(GrowingRegions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if doc["type"] != "FeatureCollection" {
		t.Errorf("type = %v, want FeatureCollection", doc["type"])
	}
}
