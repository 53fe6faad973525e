package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a testify mock of the ProductRepository interface.
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	r0 := ret.Error(0)

	return r0
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	r0 := ret.Error(0)

	return r0
}

func (_m *ProductRepository) ListProducts(ctx context.Context, filter models.ProductFilter, page int, size int) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter, page, size)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).(func(context.Context, models.ProductFilter, int, int) []*models.Product); ok {
		r0 = rf(ctx, filter, page, size)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Product)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, models.ProductFilter, int, int) int); ok {
		r1 = rf(ctx, filter, page, size)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, id, quantity)

	r0 := ret.Error(0)

	return r0
}

func (_m *ProductRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, id, quantity)

	r0 := ret.Error(0)

	return r0
}

func (_m *ProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	ret := _m.Called(ctx, categoryID)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, int64) int); ok {
		r0 = rf(ctx, categoryID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// NewProductRepository creates a new instance of ProductRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
