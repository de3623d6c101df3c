package geo

import (
	"math"
	"testing"
)

func TestLocator_InServiceArea(t *testing.T) {
	t.Parallel()

	locator := NewLocator(50)

	tests := []struct {
		name        string
		lat         float64
		lon         float64
		countryCode string
		want        bool
	}{
		{
			name:        "geneva city center",
			lat:         46.2044,
			lon:         6.1432,
			countryCode: "CH",
			want:        true,
		},
		{
			name:        "nyon is inside the radius",
			lat:         46.3832,
			lon:         6.2396,
			countryCode: "CH",
			want:        true,
		},
		{
			name:        "zurich is outside the radius",
			lat:         47.3769,
			lon:         8.5417,
			countryCode: "CH",
			want:        false,
		},
		{
			name:        "country code is case-insensitive",
			lat:         46.2044,
			lon:         6.1432,
			countryCode: "ch",
			want:        true,
		},
		{
			name:        "french side of the border is rejected",
			lat:         46.1905,
			lon:         6.1368,
			countryCode: "FR",
			want:        false,
		},
		{
			name:        "non-CH rejected regardless of coordinates",
			lat:         46.2044,
			lon:         6.1432,
			countryCode: "DE",
			want:        false,
		},
		{
			name:        "missing country code rejected",
			lat:         46.2044,
			lon:         6.1432,
			countryCode: "",
			want:        false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := locator.InServiceArea(tc.lat, tc.lon, tc.countryCode)
			if got != tc.want {
				t.Fatalf("InServiceArea(%v, %v, %q) = %v, want %v", tc.lat, tc.lon, tc.countryCode, got, tc.want)
			}
		})
	}
}

func TestLocator_BoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	// Pin the radius to the exact distance of a known point: the check
	// uses <=, so a point exactly on the boundary is in the area.
	lat, lon := 46.5197, 6.6323
	boundary := haversineKm(lat, lon, genevaLat, genevaLon)

	locator := NewLocator(boundary)
	if !locator.InServiceArea(lat, lon, "CH") {
		t.Error("point exactly at the radius should be in the service area")
	}

	justInside := NewLocator(boundary + 0.001)
	if !justInside.InServiceArea(lat, lon, "CH") {
		t.Error("point just inside the radius should be in the service area")
	}

	justOutside := NewLocator(boundary - 0.001)
	if justOutside.InServiceArea(lat, lon, "CH") {
		t.Error("point just outside the radius should not be in the service area")
	}
}

func TestLocator_ZeroCoordinateTreatedAsMissing(t *testing.T) {
	t.Parallel()

	// A coordinate of exactly 0 is rejected even with a CH country code.
	// Equator/prime-meridian coordinates are legitimate in general; this
	// pins the storefront's historical falsy-check behavior.
	locator := NewLocator(50)

	if locator.InServiceArea(0, 0, "CH") {
		t.Error("(0, 0) should be treated as missing")
	}
	if locator.InServiceArea(0, 6.1432, "CH") {
		t.Error("latitude 0 should be treated as missing")
	}
	if locator.InServiceArea(46.2044, 0, "CH") {
		t.Error("longitude 0 should be treated as missing")
	}
}

func TestHaversineKm(t *testing.T) {
	t.Parallel()

	// Geneva to Zurich is roughly 224 km great-circle.
	got := haversineKm(46.2044, 6.1432, 47.3769, 8.5417)
	if math.Abs(got-224) > 5 {
		t.Errorf("haversineKm() = %v, want ~224", got)
	}

	if d := haversineKm(46.2044, 6.1432, 46.2044, 6.1432); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestLocator_Resolve(t *testing.T) {
	t.Parallel()

	locator := NewLocator(50)

	loc := locator.Resolve(Location{
		CountryCode:   "FR",
		Latitude:      46.2044,
		Longitude:     6.1432,
		InServiceArea: true, // client-claimed, must be recomputed
	})
	if loc.InServiceArea {
		t.Error("Resolve should recompute InServiceArea, not trust the input")
	}

	loc = locator.Resolve(Location{CountryCode: "CH", Latitude: 46.2044, Longitude: 6.1432})
	if !loc.InServiceArea {
		t.Error("expected Geneva coordinates to be in the service area")
	}
}

func TestNewLocator_DefaultRadius(t *testing.T) {
	t.Parallel()

	if got := NewLocator(0).RadiusKm(); got != DefaultRadiusKm {
		t.Errorf("RadiusKm() = %v, want %v", got, DefaultRadiusKm)
	}
	if got := NewLocator(-3).RadiusKm(); got != DefaultRadiusKm {
		t.Errorf("RadiusKm() = %v, want %v", got, DefaultRadiusKm)
	}
}
