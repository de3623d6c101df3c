package checkout

// Package checkout prices cart lines against the catalog, gates orders on
// the service area, and assembles a hosted payment session.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"
	"github.com/shopspring/decimal"

	"github.com/vitalroasters/storefront/internal/catalog"
	"github.com/vitalroasters/storefront/internal/logging"
	"github.com/vitalroasters/storefront/internal/observability"
)

var (
	ErrEmptyCart        = errors.New("empty cart")
	ErrUnknownProduct   = errors.New("unknown product")
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrOutOfServiceArea = errors.New("we currently serve the Geneva area in Switzerland only")
)

// Swiss VAT on coffee orders.
var taxRate = decimal.NewFromFloat(0.081)

// Flat delivery rate inside the service area, in CHF.
var shippingFlat = decimal.RequireFromString("7.00")

const Currency = "CHF"

// Item is one requested cart line: a product id, an optional variant
// hint, and a quantity.
type Item struct {
	ID   string `json:"id" validate:"required"`
	SKU  string `json:"sku,omitempty"`
	Size string `json:"size,omitempty"`
	Qty  int    `json:"qty"`
}

// UnmarshalJSON decodes a cart line, tolerating a malformed quantity. A
// qty that is missing or not an integer decodes as 0, so pricing skips
// the line instead of failing the whole checkout.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   string          `json:"id"`
		SKU  string          `json:"sku"`
		Size string          `json:"size"`
		Qty  json.RawMessage `json:"qty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	it.ID = raw.ID
	it.SKU = raw.SKU
	it.Size = raw.Size
	it.Qty = 0
	if len(raw.Qty) > 0 {
		var qty int
		if err := json.Unmarshal(raw.Qty, &qty); err == nil {
			it.Qty = qty
		}
	}
	return nil
}

// Meta carries the client's claimed location context. The country code
// and service-area flag are both required to pass the eligibility gate;
// a client claiming inServiceArea with a non-CH country is rejected.
type Meta struct {
	CountryCode   string `json:"countryCode,omitempty"`
	InServiceArea bool   `json:"inServiceArea,omitempty"`
}

// LineItem is a priced checkout line as sent to the payment provider.
type LineItem struct {
	Name            string `json:"name"`
	SKU             string `json:"sku"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
	Qty             int    `json:"qty"`
}

// Totals holds the computed amounts in both representations: decimal CHF
// rounded to 2 places for display, and integer minor units for the wire.
// The two agree to the cent.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal

	SubtotalCents int64
	TaxCents      int64
	ShippingCents int64
	TotalCents    int64

	LineItems []LineItem
}

// Result is the checkout response: the totals and the payment session URL.
type Result struct {
	Totals
	URL string
}

// SessionCreator creates a hosted payment session for computed totals.
type SessionCreator interface {
	CreateSession(ctx context.Context, totals Totals) (string, error)
}

// Assembler computes checkout totals and creates payment sessions.
type Assembler struct {
	store    *catalog.Store
	creator  SessionCreator
	fallback SessionCreator
	logger   *slog.Logger
}

func NewAssembler(store *catalog.Store, creator SessionCreator, logger *slog.Logger) *Assembler {
	fallback := NewMockSessionCreator()
	if creator == nil {
		creator = fallback
	}
	return &Assembler{
		store:    store,
		creator:  creator,
		fallback: fallback,
		logger:   logger,
	}
}

// ComputeTotals prices each cart line against the catalog. Lines with a
// non-positive quantity are skipped, not errored. Unknown products or
// variants fail the whole checkout.
func ComputeTotals(items []Item, cat *catalog.Catalog) (Totals, error) {
	var totals Totals
	subtotalCents := int64(0)

	for _, item := range items {
		if item.Qty <= 0 {
			continue
		}
		product := cat.FindProduct(item.ID)
		if product == nil {
			return Totals{}, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ID)
		}
		variant := catalog.ResolveVariant(product, item.SKU, item.Size)
		if variant == nil {
			return Totals{}, fmt.Errorf("%w for product: %s", ErrUnknownVariant, item.ID)
		}

		unitCents := variant.Price.Shift(2).Round(0).IntPart()
		subtotalCents += unitCents * int64(item.Qty)
		totals.LineItems = append(totals.LineItems, LineItem{
			Name:            product.Name + " " + variant.Size,
			SKU:             variant.SKU,
			UnitAmountCents: unitCents,
			Qty:             item.Qty,
		})
	}

	totals.Subtotal = decimal.New(subtotalCents, -2)
	totals.Tax = totals.Subtotal.Mul(taxRate).Round(2)
	totals.Shipping = shippingFlat
	totals.Total = totals.Subtotal.Add(totals.Tax).Add(totals.Shipping).Round(2)

	totals.SubtotalCents = subtotalCents
	totals.TaxCents = totals.Tax.Shift(2).IntPart()
	totals.ShippingCents = totals.Shipping.Shift(2).IntPart()
	totals.TotalCents = totals.Total.Shift(2).IntPart()

	return totals, nil
}

// EligibleForCheckout applies the service-area gate. Both conditions are
// required independently.
func EligibleForCheckout(meta Meta) bool {
	return strings.EqualFold(meta.CountryCode, "CH") && meta.InServiceArea
}

// Checkout prices the cart, gates on the service area, and creates a
// payment session. A failure in the configured session creator is never
// surfaced: the assembler falls back to a mock confirmation URL.
func (a *Assembler) Checkout(ctx context.Context, items []Item, meta Meta) (*Result, error) {
	logger := logging.FromContext(ctx, a.logger)
	meter := observability.MeterFromContext(ctx)
	meter.Count("checkout.received", 1)

	if len(items) == 0 {
		meter.Count("checkout.rejected", 1, sentry.WithAttributes(
			attribute.String("reason", "empty_cart"),
		))
		return nil, ErrEmptyCart
	}

	cat, err := a.store.Load()
	if err != nil {
		meter.Count("checkout.rejected", 1, sentry.WithAttributes(
			attribute.String("reason", "catalog_unavailable"),
		))
		return nil, err
	}

	totals, err := ComputeTotals(items, cat)
	if err != nil {
		meter.Count("checkout.rejected", 1, sentry.WithAttributes(
			attribute.String("reason", "pricing_failed"),
		))
		return nil, err
	}

	if !EligibleForCheckout(meta) {
		meter.Count("checkout.rejected", 1, sentry.WithAttributes(
			attribute.String("reason", "out_of_service_area"),
		))
		return nil, ErrOutOfServiceArea
	}

	url, err := a.creator.CreateSession(ctx, totals)
	if err != nil {
		logger.Warn("payment session creation failed, falling back to mock checkout", "error", err)
		meter.Count("checkout.session.fallback", 1)
		url, err = a.fallback.CreateSession(ctx, totals)
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback session: %w", err)
		}
	} else {
		meter.Count("checkout.session.created", 1)
	}

	return &Result{Totals: totals, URL: url}, nil
}
