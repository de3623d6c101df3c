package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CatalogPath != "data/products.json" {
		t.Errorf("CatalogPath = %q, want data/products.json", cfg.CatalogPath)
	}
	if cfg.ServiceRadiusKm != 50 {
		t.Errorf("ServiceRadiusKm = %v, want 50", cfg.ServiceRadiusKm)
	}
	if cfg.GeoIPEndpoint != "https://ipapi.co/json/" {
		t.Errorf("GeoIPEndpoint = %q, want https://ipapi.co/json/", cfg.GeoIPEndpoint)
	}
	if cfg.CacheProvider != "memory" {
		t.Errorf("CacheProvider = %q, want memory", cfg.CacheProvider)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StripeEnabled() {
		t.Error("StripeEnabled() = true without a secret key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_PATH", "testdata/catalog.yaml")
	t.Setenv("GENEVA_RADIUS_KM", "25")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CatalogPath != "testdata/catalog.yaml" {
		t.Errorf("CatalogPath = %q, want testdata/catalog.yaml", cfg.CatalogPath)
	}
	if cfg.ServiceRadiusKm != 25 {
		t.Errorf("ServiceRadiusKm = %v, want 25", cfg.ServiceRadiusKm)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.StripeEnabled() {
		t.Error("StripeEnabled() = false with a secret key set")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero radius", key: "GENEVA_RADIUS_KM", value: "0"},
		{name: "negative radius", key: "GENEVA_RADIUS_KM", value: "-10"},
		{name: "bad geoip endpoint", key: "GEOIP_ENDPOINT", value: "not-a-url"},
		{name: "bad cancel url", key: "CHECKOUT_CANCEL_URL", value: "not-a-url"},
		{name: "unknown cache provider", key: "CACHE_PROVIDER", value: "memcached"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "plain http base url", key: "BASE_URL", value: "http://shop.example.com"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() succeeded with %s=%q, want error", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_BaseURLLocalhostAllowsHTTP(t *testing.T) {
	t.Setenv("BASE_URL", "http://localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q, want http://localhost:3000", cfg.BaseURL)
	}
}
