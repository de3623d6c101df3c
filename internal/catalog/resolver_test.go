package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolveVariant(t *testing.T) {
	t.Parallel()

	// The sku of one variant doubles as the size of another, so a wrong
	// preference order would resolve ambiguously.
	product := &Product{
		ID:   "espresso-roast",
		Name: "Espresso Roast",
		Variants: []Variant{
			{Size: "250g", SKU: "ESP-250", Price: decimal.RequireFromString("12.50")},
			{Size: "ESP-250", SKU: "TRAP", Price: decimal.RequireFromString("99.00")},
			{Size: "1kg", SKU: "ESP-1000", Price: decimal.RequireFromString("39.00")},
		},
	}

	tests := []struct {
		name    string
		sku     string
		size    string
		wantSKU string
	}{
		{
			name:    "sku match wins over size match",
			sku:     "ESP-250",
			size:    "ESP-250",
			wantSKU: "ESP-250",
		},
		{
			name:    "size match when no sku given",
			size:    "1kg",
			wantSKU: "ESP-1000",
		},
		{
			name:    "size matching a sku-looking value",
			size:    "ESP-250",
			wantSKU: "TRAP",
		},
		{
			name:    "unmatched sku falls through to size",
			sku:     "UNKNOWN",
			size:    "1kg",
			wantSKU: "ESP-1000",
		},
		{
			name:    "no hints returns first variant",
			wantSKU: "ESP-250",
		},
		{
			name:    "unmatched hints return first variant",
			sku:     "UNKNOWN",
			size:    "UNKNOWN",
			wantSKU: "ESP-250",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveVariant(product, tc.sku, tc.size)
			if got == nil {
				t.Fatalf("ResolveVariant() = nil, want sku %q", tc.wantSKU)
			}
			if got.SKU != tc.wantSKU {
				t.Fatalf("ResolveVariant() sku = %q, want %q", got.SKU, tc.wantSKU)
			}
		})
	}
}

func TestResolveVariant_Empty(t *testing.T) {
	t.Parallel()

	if got := ResolveVariant(&Product{ID: "empty"}, "", ""); got != nil {
		t.Errorf("expected nil for product without variants, got %+v", got)
	}
	if got := ResolveVariant(nil, "ESP-250", ""); got != nil {
		t.Errorf("expected nil for nil product, got %+v", got)
	}
}
