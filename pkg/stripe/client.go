package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/refund"
	"github.com/stripe/stripe-go/v81/webhook"
)

type (
	Event         = stripe.Event
	PaymentIntent = stripe.PaymentIntent
)

// Client is the subset of the Stripe API the storefront talks to.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (*stripe.PaymentIntent, error)
	RefundPayment(ctx context.Context, paymentIntentID string) (*stripe.Refund, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	Ping(ctx context.Context) error
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

// CreatePaymentIntent creates an automatic-confirmation intent for amount,
// expressed in the smallest currency unit. When metadata names an order_id
// the request is sent with an idempotency key for that order, so concurrent
// attempts for one order get the same intent back.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency, description string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	if orderID, ok := metadata["order_id"]; ok {
		params.SetIdempotencyKey(IdempotencyKey(orderID))
	}

	return paymentintent.New(params)
}

func IdempotencyKey(orderID string) string {
	return "payment-intent-order-" + orderID
}

func (s *stripeClient) RefundPayment(ctx context.Context, paymentIntentID string) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(paymentIntentID),
	}

	return refund.New(params)
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

// Ping reads the account balance, which is the cheapest authenticated call.
func (s *stripeClient) Ping(ctx context.Context) error {
	_, err := balance.Get(&stripe.BalanceParams{Params: stripe.Params{Context: ctx}})

	return err
}
