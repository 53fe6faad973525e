package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a testify mock of the OrderRepository interface.
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	r0 := ret.Error(0)

	return r0
}

func (_m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OrderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page int, size int) ([]models.Order, int, error) {
	ret := _m.Called(ctx, userID, page, size)

	var r0 []models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) []models.Order); ok {
		r0 = rf(ctx, userID, page, size)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Order)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int, int) int); ok {
		r1 = rf(ctx, userID, page, size)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *OrderRepository) ListOrders(ctx context.Context, status models.OrderStatus, page int, size int) ([]models.Order, int, error) {
	ret := _m.Called(ctx, status, page, size)

	var r0 []models.Order
	if rf, ok := ret.Get(0).(func(context.Context, models.OrderStatus, int, int) []models.Order); ok {
		r0 = rf(ctx, status, page, size)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Order)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, models.OrderStatus, int, int) int); ok {
		r1 = rf(ctx, status, page, size)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from models.OrderStatus, to models.OrderStatus) error {
	ret := _m.Called(ctx, id, from, to)

	r0 := ret.Error(0)

	return r0
}

func (_m *OrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error {
	ret := _m.Called(ctx, id, status, paymentIntentID)

	r0 := ret.Error(0)

	return r0
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
