package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vitalroasters/storefront/internal/logging"
	"github.com/vitalroasters/storefront/internal/observability"
)

const (
	detectTimeout   = 3 * time.Second
	maxGeoBodyBytes = 1 << 16 // 64 KB
)

// Detector resolves an approximate customer location from their IP using
// an external geolocation service. Detection is best-effort: any upstream
// failure degrades to an empty, out-of-area location instead of an error.
type Detector struct {
	endpoint string
	locator  *Locator
	client   *http.Client
	logger   *slog.Logger
}

func NewDetector(endpoint string, locator *Locator, logger *slog.Logger) *Detector {
	return &Detector{
		endpoint: endpoint,
		locator:  locator,
		client:   observability.NewHTTPClient(detectTimeout),
		logger:   logger,
	}
}

type geoIPResponse struct {
	CountryName string  `json:"country_name"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Detect looks up the location for clientIP. The zero Location is
// returned on any failure.
func (d *Detector) Detect(ctx context.Context, clientIP string) Location {
	logger := logging.FromContext(ctx, d.logger)

	loc, err := d.lookup(ctx, clientIP)
	if err != nil {
		logger.Warn("geolocation lookup failed, falling back to undetected location", "error", err)
		return Location{}
	}
	return d.locator.Resolve(loc)
}

func (d *Detector) lookup(ctx context.Context, clientIP string) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint, nil)
	if err != nil {
		return Location{}, fmt.Errorf("failed to build geolocation request: %w", err)
	}
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGeoBodyBytes))
	if err != nil {
		return Location{}, fmt.Errorf("failed to read geolocation response: %w", err)
	}

	var payload geoIPResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Location{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	return Location{
		Country:     payload.CountryName,
		CountryCode: payload.Country,
		City:        payload.City,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
	}, nil
}
