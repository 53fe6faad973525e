package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OrderService is a testify mock of the OrderService interface.
type OrderService struct {
	mock.Mock
}

func (_m *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.CreateOrderRequest) *models.Order); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OrderService) GetOrderByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Order, error) {
	ret := _m.Called(ctx, userID, id)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *models.Order); ok {
		r0 = rf(ctx, userID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OrderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page int, size int) ([]models.Order, int, error) {
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

func (_m *OrderService) CancelOrder(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Order, error) {
	ret := _m.Called(ctx, userID, id)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *models.Order); ok {
		r0 = rf(ctx, userID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OrderService) ListOrders(ctx context.Context, status models.OrderStatus, page int, size int) ([]models.Order, int, error) {
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

func (_m *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, models.OrderStatus) *models.Order); ok {
		r0 = rf(ctx, id, status)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// NewOrderService creates a new instance of OrderService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
