package checkout

import (
	"context"
	"fmt"
)

// MockSessionCreator builds a deterministic confirmation URL encoding the
// computed totals. It is the active creator when no payment provider is
// configured, and the fallback when session creation fails upstream.
type MockSessionCreator struct{}

func NewMockSessionCreator() *MockSessionCreator {
	return &MockSessionCreator{}
}

func (MockSessionCreator) CreateSession(_ context.Context, totals Totals) (string, error) {
	return fmt.Sprintf("/checkout/mock?currency=%s&subtotal=%d&tax=%d&shipping=%d&total=%d",
		Currency, totals.SubtotalCents, totals.TaxCents, totals.ShippingCents, totals.TotalCents), nil
}
