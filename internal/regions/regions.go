package regions

// Package regions serves the growing-region polygons behind the map
// browser. Region names line up with the catalog's map_zone_key values so
// a map click resolves to a product.

// FeatureCollection is a GeoJSON document of growing-region polygons.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

type Properties struct {
	Name string `json:"name"`
}

type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// GrowingRegions returns the single-origin regions shown on the map.
func GrowingRegions() FeatureCollection {
	return FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			polygon("Yirgacheffe", [][2]float64{
				{38.5, 6.2}, {38.9, 6.2}, {38.9, 6.5}, {38.5, 6.5}, {38.5, 6.2},
			}),
			polygon("Sidamo", [][2]float64{
				{38.2, 5.8}, {38.7, 5.8}, {38.7, 6.1}, {38.2, 6.1}, {38.2, 5.8},
			}),
		},
	}
}

// FindRegion returns the feature for a region name, or nil.
func FindRegion(name string) *Feature {
	fc := GrowingRegions()
	for i := range fc.Features {
		if fc.Features[i].Properties.Name == name {
			return &fc.Features[i]
		}
	}
	return nil
}

func polygon(name string, ring [][2]float64) Feature {
	return Feature{
		Type:       "Feature",
		Properties: Properties{Name: name},
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: [][][2]float64{ring},
		},
	}
}
