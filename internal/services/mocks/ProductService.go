package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ProductService is a testify mock of the ProductService interface.
type ProductService struct {
	mock.Mock
}

func (_m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(func(context.Context, *models.CreateProductRequest) *models.Product); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
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

func (_m *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.UpdateProductRequest) *models.Product); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

func (_m *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter, page int, pageSize int) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter, page, pageSize)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).(func(context.Context, models.ProductFilter, int, int) []*models.Product); ok {
		r0 = rf(ctx, filter, page, pageSize)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Product)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, models.ProductFilter, int, int) int); ok {
		r1 = rf(ctx, filter, page, pageSize)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	r2 := ret.Error(2)

	return r0, r1, r2
}

// NewProductService creates a new instance of ProductService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewProductService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductService {
	m := &ProductService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
