package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserService is a testify mock of the UserService interface.
type UserService struct {
	mock.Mock
}

func (_m *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, *models.RegisterRequest) *models.User); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.LoginResponse
	if rf, ok := ret.Get(0).(func(context.Context, *models.LoginRequest) *models.LoginResponse); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.User); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *UserService) ListCustomers(ctx context.Context, page int, size int) ([]*models.User, int, error) {
	ret := _m.Called(ctx, page, size)

	var r0 []*models.User
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []*models.User); ok {
		r0 = rf(ctx, page, size)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.User)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, int, int) int); ok {
		r1 = rf(ctx, page, size)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	r2 := ret.Error(2)

	return r0, r1, r2
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
