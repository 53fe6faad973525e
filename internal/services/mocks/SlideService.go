package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SlideService is a testify mock of the SlideService interface.
type SlideService struct {
	mock.Mock
}

func (_m *SlideService) CreateSlide(ctx context.Context, req *models.SlideRequest) (*models.Slide, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Slide
	if rf, ok := ret.Get(0).(func(context.Context, *models.SlideRequest) *models.Slide); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Slide)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *SlideService) UpdateSlide(ctx context.Context, id uuid.UUID, req *models.SlideRequest) (*models.Slide, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Slide
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.SlideRequest) *models.Slide); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Slide)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *SlideService) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

func (_m *SlideService) ListActiveSlides(ctx context.Context) ([]*models.Slide, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Slide
	if rf, ok := ret.Get(0).(func(context.Context) []*models.Slide); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Slide)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *SlideService) ListSlides(ctx context.Context) ([]*models.Slide, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Slide
	if rf, ok := ret.Get(0).(func(context.Context) []*models.Slide); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Slide)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// NewSlideService creates a new instance of SlideService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewSlideService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SlideService {
	m := &SlideService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
