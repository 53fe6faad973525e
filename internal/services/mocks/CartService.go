package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// CartService is a testify mock of the CartService interface.
type CartService struct {
	mock.Mock
}

func (_m *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.Cart
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Cart); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.Cart
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.AddItemRequest) *models.Cart); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.Cart
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.UpdateQuantityRequest) *models.Cart); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*models.Cart, error) {
	ret := _m.Called(ctx, userID, productID)

	var r0 *models.Cart
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *models.Cart); ok {
		r0 = rf(ctx, userID, productID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	r0 := ret.Error(0)

	return r0
}

// NewCartService creates a new instance of CartService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartService {
	m := &CartService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
