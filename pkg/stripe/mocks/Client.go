package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

// Client is a testify mock of the Client interface.
type Client struct {
	mock.Mock
}

func (_m *Client) CreatePaymentIntent(ctx context.Context, amount int64, currency string, description string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	ret := _m.Called(ctx, amount, currency, description, metadata)

	var r0 *stripe.PaymentIntent
	if rf, ok := ret.Get(0).(func(context.Context, int64, string, string, map[string]string) *stripe.PaymentIntent); ok {
		r0 = rf(ctx, amount, currency, description, metadata)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stripe.PaymentIntent)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *Client) RefundPayment(ctx context.Context, paymentIntentID string) (*stripe.Refund, error) {
	ret := _m.Called(ctx, paymentIntentID)

	var r0 *stripe.Refund
	if rf, ok := ret.Get(0).(func(context.Context, string) *stripe.Refund); ok {
		r0 = rf(ctx, paymentIntentID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stripe.Refund)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error) {
	ret := _m.Called(payload, signature)

	var r0 stripe.Event
	if rf, ok := ret.Get(0).(func([]byte, string) stripe.Event); ok {
		r0 = rf(payload, signature)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(stripe.Event)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *Client) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	r0 := ret.Error(0)

	return r0
}

// NewClient creates a new instance of Client. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
