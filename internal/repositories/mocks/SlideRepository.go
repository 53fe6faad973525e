package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SlideRepository is a testify mock of the SlideRepository interface.
type SlideRepository struct {
	mock.Mock
}

func (_m *SlideRepository) CreateSlide(ctx context.Context, slide *models.Slide) error {
	ret := _m.Called(ctx, slide)

	r0 := ret.Error(0)

	return r0
}

func (_m *SlideRepository) GetSlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Slide
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Slide); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Slide)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *SlideRepository) ListSlides(ctx context.Context, activeOnly bool) ([]*models.Slide, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []*models.Slide
	if rf, ok := ret.Get(0).(func(context.Context, bool) []*models.Slide); ok {
		r0 = rf(ctx, activeOnly)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Slide)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *SlideRepository) UpdateSlide(ctx context.Context, slide *models.Slide) error {
	ret := _m.Called(ctx, slide)

	r0 := ret.Error(0)

	return r0
}

func (_m *SlideRepository) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewSlideRepository creates a new instance of SlideRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewSlideRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SlideRepository {
	m := &SlideRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
