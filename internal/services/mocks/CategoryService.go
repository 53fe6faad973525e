package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CategoryService is a testify mock of the CategoryService interface.
type CategoryService struct {
	mock.Mock
}

func (_m *CategoryService) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Category
	if rf, ok := ret.Get(0).(func(context.Context, *models.CategoryRequest) *models.Category); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Category
	if rf, ok := ret.Get(0).(func(context.Context) []*models.Category); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Category)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryService) UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.Category, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Category
	if rf, ok := ret.Get(0).(func(context.Context, int64, *models.CategoryRequest) *models.Category); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewCategoryService creates a new instance of CategoryService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewCategoryService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryService {
	m := &CategoryService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
