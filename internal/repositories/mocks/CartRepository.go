package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// CartRepository is a testify mock of the CartRepository interface.
type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
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

func (_m *CartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
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

func (_m *CartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	ret := _m.Called(ctx, cartID)

	var r0 []models.CartItem
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []models.CartItem); ok {
		r0 = rf(ctx, cartID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CartItem)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartRepository) LockItemsByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.CartItem
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []models.CartItem); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CartItem)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartRepository) FindItemByProduct(ctx context.Context, cartID uuid.UUID, productID uuid.UUID) (*models.CartItem, error) {
	ret := _m.Called(ctx, cartID, productID)

	var r0 *models.CartItem
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *models.CartItem); ok {
		r0 = rf(ctx, cartID, productID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartItem)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartRepository) AddItem(ctx context.Context, item *models.CartItem) error {
	ret := _m.Called(ctx, item)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	ret := _m.Called(ctx, itemID, quantity)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	ret := _m.Called(ctx, itemID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) DeleteItemsByProduct(ctx context.Context, cartID uuid.UUID, productID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, cartID, productID)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) int64); ok {
		r0 = rf(ctx, cartID, productID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartRepository) DeleteOtherItems(ctx context.Context, cartID uuid.UUID, productID uuid.UUID, keepID int64) error {
	ret := _m.Called(ctx, cartID, productID, keepID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	ret := _m.Called(ctx, cartID)

	r0 := ret.Error(0)

	return r0
}

// NewCartRepository creates a new instance of CartRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
