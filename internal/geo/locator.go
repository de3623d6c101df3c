package geo

// Package geo decides whether a customer location falls inside the
// delivery service area around the Geneva roastery.

import (
	"math"
	"strings"
)

const (
	// Reference point: Geneva city center.
	genevaLat = 46.2044
	genevaLon = 6.1432

	earthRadiusKm = 6371

	DefaultRadiusKm = 50
)

// Location describes a detected or manually set customer location.
// InServiceArea is always derived from the coordinates and country code,
// never trusted from an external source.
type Location struct {
	Country       string  `json:"country,omitempty"`
	CountryCode   string  `json:"countryCode,omitempty"`
	City          string  `json:"city,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	InServiceArea bool    `json:"inServiceArea"`
}

// Locator performs pure service-area checks against a fixed radius.
type Locator struct {
	radiusKm float64
}

func NewLocator(radiusKm float64) *Locator {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return &Locator{radiusKm: radiusKm}
}

func (l *Locator) RadiusKm() float64 {
	return l.radiusKm
}

// InServiceArea reports whether the given coordinates and country code
// fall inside the service area. Orders are only served within Switzerland,
// so any country code other than "CH" is rejected regardless of distance.
//
// A latitude or longitude of exactly 0 is treated as missing, matching
// the storefront's historical behavior. Equator or prime-meridian
// coordinates are therefore rejected; none fall anywhere near the
// service area, so the shortcut is harmless in practice.
func (l *Locator) InServiceArea(lat, lon float64, countryCode string) bool {
	if lat == 0 || lon == 0 {
		return false
	}
	if !strings.EqualFold(countryCode, "CH") {
		return false
	}
	return haversineKm(lat, lon, genevaLat, genevaLon) <= l.radiusKm
}

// Resolve recomputes the derived InServiceArea flag on a location.
func (l *Locator) Resolve(loc Location) Location {
	loc.InServiceArea = l.InServiceArea(loc.Latitude, loc.Longitude, loc.CountryCode)
	return loc
}

// haversineKm returns the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
