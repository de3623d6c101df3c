package checkout

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"
)

// StripeSessionCreator creates hosted Stripe Checkout sessions.
type StripeSessionCreator struct {
	client     *stripe.Client
	successURL string
	cancelURL  string
}

func NewStripeSessionCreator(secretKey, successURL, cancelURL string) *StripeSessionCreator {
	return &StripeSessionCreator{
		client:     stripe.NewClient(secretKey),
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (c *StripeSessionCreator) CreateSession(ctx context.Context, totals Totals) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("context is required")
	}

	lineItems := make([]*stripe.CheckoutSessionCreateLineItemParams, 0, len(totals.LineItems))
	for _, li := range totals.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionCreateLineItemParams{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency: stripe.String("chf"),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String(li.Name),
				},
				UnitAmount: stripe.Int64(li.UnitAmountCents),
			},
			Quantity: stripe.Int64(int64(li.Qty)),
		})
	}

	sessionParams := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
		LineItems:          lineItems,
		ShippingOptions: []*stripe.CheckoutSessionCreateShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionCreateShippingOptionShippingRateDataParams{
					DisplayName: stripe.String("Standard"),
					Type:        stripe.String(string(stripe.ShippingRateTypeFixedAmount)),
					FixedAmount: &stripe.CheckoutSessionCreateShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(totals.ShippingCents),
						Currency: stripe.String("chf"),
					},
				},
			},
		},
		ShippingAddressCollection: &stripe.CheckoutSessionCreateShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"CH"}),
		},
		CustomText: &stripe.CheckoutSessionCreateCustomTextParams{
			Submit: &stripe.CheckoutSessionCreateCustomTextSubmitParams{
				Message: stripe.String("Vital Coffee Roasters"),
			},
		},
		Metadata: map[string]string{
			"subtotal_cents": fmt.Sprintf("%d", totals.SubtotalCents),
			"tax_cents":      fmt.Sprintf("%d", totals.TaxCents),
			"total_cents":    fmt.Sprintf("%d", totals.TotalCents),
		},
	}

	sess, err := c.client.V1CheckoutSessions.Create(ctx, sessionParams)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess.URL, nil
}
