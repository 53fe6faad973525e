package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

// PaymentService is a testify mock of the PaymentService interface.
type PaymentService struct {
	mock.Mock
}

func (_m *PaymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.PaymentResponse
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.CreatePaymentRequest) *models.PaymentResponse); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PaymentResponse)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PaymentService) GetPaymentByID(ctx context.Context, userID uuid.UUID, id string) (*models.Payment, error) {
	ret := _m.Called(ctx, userID, id)

	var r0 *models.Payment
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) *models.Payment); ok {
		r0 = rf(ctx, userID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Payment)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PaymentService) RefundPayment(ctx context.Context, id string) (*models.Payment, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Payment
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Payment); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Payment)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PaymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	ret := _m.Called(ctx, payload, signature)

	var r0 stripe.Event
	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) stripe.Event); ok {
		r0 = rf(ctx, payload, signature)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(stripe.Event)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// NewPaymentService creates a new instance of PaymentService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewPaymentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentService {
	m := &PaymentService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
