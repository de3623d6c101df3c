package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vitalroasters/storefront/internal/catalog"
	"github.com/vitalroasters/storefront/internal/checkout"
)

type checkoutRequest struct {
	Items []checkout.Item `json:"items" validate:"dive"`
	Meta  checkout.Meta   `json:"meta"`
}

type checkoutResponse struct {
	Currency      string              `json:"currency"`
	LineItems     []checkout.LineItem `json:"lineItems"`
	SubtotalCents int64               `json:"subtotalCents"`
	TaxCents      int64               `json:"taxCents"`
	ShippingCents int64               `json:"shippingCents"`
	TotalCents    int64               `json:"totalCents"`
	URL           string              `json:"url"`
}

// Checkout prices the submitted cart and returns a payment session URL.
func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("failed to decode checkout request", "error", err)
		h.writeError(ctx, w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := requestValidator.Struct(&req); err != nil {
		logger.Warn("checkout request failed validation", "error", err)
		h.writeError(ctx, w, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := h.assembler.Checkout(ctx, req.Items, req.Meta)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, checkoutResponse{
		Currency:      checkout.Currency,
		LineItems:     result.LineItems,
		SubtotalCents: result.SubtotalCents,
		TaxCents:      result.TaxCents,
		ShippingCents: result.ShippingCents,
		TotalCents:    result.TotalCents,
		URL:           result.URL,
	})
}

func (h *Handlers) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		h.writeError(ctx, w, http.StatusBadRequest, "Empty cart")
	case errors.Is(err, checkout.ErrOutOfServiceArea):
		h.writeError(ctx, w, http.StatusBadRequest, "We currently serve the Geneva area in Switzerland only.")
	case errors.Is(err, checkout.ErrUnknownProduct), errors.Is(err, checkout.ErrUnknownVariant):
		h.writeError(ctx, w, http.StatusBadRequest, fmt.Sprintf("%v", err))
	case errors.Is(err, catalog.ErrUnavailable):
		logger.Error("catalog unavailable during checkout", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, "Catalog not found")
	default:
		logger.Error("checkout failed", "error", err)
		h.writeError(ctx, w, http.StatusBadRequest, "Invalid request")
	}
}
