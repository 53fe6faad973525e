package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CategoryRepository is a testify mock of the CategoryRepository interface.
type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	ret := _m.Called(ctx, category)

	r0 := ret.Error(0)

	return r0
}

func (_m *CategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Category
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Category); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
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

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	ret := _m.Called(ctx, category)

	r0 := ret.Error(0)

	return r0
}

func (_m *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewCategoryRepository creates a new instance of CategoryRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
