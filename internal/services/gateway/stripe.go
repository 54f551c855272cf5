package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

// Config holds gateway settings.
type Config struct {
	SecretKey  string
	Currency   string
	SuccessURL string
	CancelURL  string
}

type stripeClient struct {
	currency   string
	successURL string
	cancelURL  string
}

// NewStripeClient builds a Client over Stripe Checkout. The session URL is
// the authorization URL and the session ID is the payment reference.
func NewStripeClient(cfg Config) Client {
	if cfg.SecretKey == "" {
		panic("gateway secret key is required")
	}
	stripe.Key = cfg.SecretKey

	if cfg.Currency == "" {
		cfg.Currency = "ngn"
	}
	if cfg.SuccessURL == "" {
		cfg.SuccessURL = "http://localhost:3000/deposit/success"
	}
	if cfg.CancelURL == "" {
		cfg.CancelURL = "http://localhost:3000/deposit/cancel"
	}

	return &stripeClient{
		currency:   cfg.Currency,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (c *stripeClient) Initialize(ctx context.Context, amount float64, email string) (*InitializeResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(email),
		SuccessURL:    stripe.String(c.successURL),
		CancelURL:     stripe.String(c.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Wallet deposit"),
					},
					// Amount is in whole currency units; Stripe wants minor units.
					UnitAmount: stripe.Int64(int64(amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment: %w", err)
	}

	return &InitializeResult{
		AuthorizationURL: s.URL,
		Reference:        s.ID,
	}, nil
}

func (c *stripeClient) Verify(ctx context.Context, ref string) (string, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(ref, params)
	if err != nil {
		return "", fmt.Errorf("failed to verify payment: %w", err)
	}

	if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		return StatusSuccess, nil
	}
	return string(s.PaymentStatus), nil
}
