package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// PaymentRepository is a testify mock of the PaymentRepository interface.
type PaymentRepository struct {
	mock.Mock
}

func (_m *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	ret := _m.Called(ctx, payment)

	r0 := ret.Error(0)

	return r0
}

func (_m *PaymentRepository) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
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

func (_m *PaymentRepository) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	ret := _m.Called(ctx, id, status)

	r0 := ret.Error(0)

	return r0
}

// NewPaymentRepository creates a new instance of PaymentRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
