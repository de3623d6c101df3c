package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vitalroasters/storefront/internal/catalog"
	"github.com/vitalroasters/storefront/internal/checkout"
)

func TestCheckout(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)

	body := `{
		"items": [{"id": "espresso-roast", "sku": "ESP-250", "qty": 2}],
		"meta": {"countryCode": "CH", "inServiceArea": true}
	}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Checkout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Currency      string              `json:"currency"`
		LineItems     []checkout.LineItem `json:"lineItems"`
		SubtotalCents int64               `json:"subtotalCents"`
		TaxCents      int64               `json:"taxCents"`
		ShippingCents int64               `json:"shippingCents"`
		TotalCents    int64               `json:"totalCents"`
		URL           string              `json:"url"`
	}
	decodeBody(t, rec, &resp)

	if resp.Currency != "CHF" {
		t.Errorf("currency = %q, want CHF", resp.Currency)
	}
	if resp.SubtotalCents != 2000 || resp.TaxCents != 162 || resp.ShippingCents != 700 || resp.TotalCents != 2862 {
		t.Errorf("totals = %d/%d/%d/%d, want 2000/162/700/2862",
			resp.SubtotalCents, resp.TaxCents, resp.ShippingCents, resp.TotalCents)
	}
	if len(resp.LineItems) != 1 || resp.LineItems[0].SKU != "ESP-250" {
		t.Errorf("unexpected line items: %+v", resp.LineItems)
	}
	wantURL := "/checkout/mock?currency=CHF&subtotal=2000&tax=162&shipping=700&total=2862"
	if resp.URL != wantURL {
		t.Errorf("url = %q, want %q", resp.URL, wantURL)
	}
}

func TestCheckout_MalformedQuantitySkipsLine(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)

	body := `{
		"items": [
			{"id": "espresso-roast", "sku": "ESP-250", "qty": "oops"},
			{"id": "espresso-roast", "sku": "ESP-250", "qty": 2}
		],
		"meta": {"countryCode": "CH", "inServiceArea": true}
	}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Checkout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		LineItems     []checkout.LineItem `json:"lineItems"`
		SubtotalCents int64               `json:"subtotalCents"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.LineItems) != 1 {
		t.Fatalf("expected the malformed line to be skipped, got %+v", resp.LineItems)
	}
	if resp.SubtotalCents != 2000 {
		t.Errorf("SubtotalCents = %d, want 2000", resp.SubtotalCents)
	}
}

func TestCheckout_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty cart",
			body:       `{"items": [], "meta": {"countryCode": "CH", "inServiceArea": true}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Empty cart",
		},
		{
			name:       "out of service area",
			body:       `{"items": [{"id": "espresso-roast", "qty": 1}], "meta": {"countryCode": "FR", "inServiceArea": true}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "We currently serve the Geneva area in Switzerland only.",
		},
		{
			name:       "in-area flag alone is not enough",
			body:       `{"items": [{"id": "espresso-roast", "qty": 1}], "meta": {"inServiceArea": true}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "We currently serve the Geneva area in Switzerland only.",
		},
		{
			name:       "malformed json",
			body:       `{"items":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request",
		},
		{
			name:       "item without id",
			body:       `{"items": [{"qty": 1}], "meta": {"countryCode": "CH", "inServiceArea": true}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestHandlers(t)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Checkout(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, tc.wantStatus, rec.Body.String())
			}

			var body map[string]string
			decodeBody(t, rec, &body)
			if body["error"] != tc.wantError {
				t.Errorf("error = %q, want %q", body["error"], tc.wantError)
			}
		})
	}
}

func TestCheckout_UnknownProduct(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)

	body := `{"items": [{"id": "decaf", "qty": 1}], "meta": {"countryCode": "CH", "inServiceArea": true}}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Checkout(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if !strings.Contains(resp["error"], "unknown product") {
		t.Errorf("error = %q, want unknown product mention", resp["error"])
	}
}

func TestCheckout_CatalogUnavailable(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)
	store := catalog.NewStore(filepath.Join(t.TempDir(), "missing.json"))
	h.assembler = checkout.NewAssembler(store, nil, nil)

	body := `{"items": [{"id": "espresso-roast", "qty": 1}], "meta": {"countryCode": "CH", "inServiceArea": true}}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Checkout(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["error"] != "Catalog not found" {
		t.Errorf("error = %q, want Catalog not found", resp["error"])
	}
}
