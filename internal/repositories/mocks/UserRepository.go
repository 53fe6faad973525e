package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock of the UserRepository interface.
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)

	r0 := ret.Error(0)

	return r0
}

func (_m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.User); ok {
		r0 = rf(ctx, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
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

func (_m *UserRepository) ListUsersByRole(ctx context.Context, role models.Role, page int, size int) ([]*models.User, int, error) {
	ret := _m.Called(ctx, role, page, size)

	var r0 []*models.User
	if rf, ok := ret.Get(0).(func(context.Context, models.Role, int, int) []*models.User); ok {
		r0 = rf(ctx, role, page, size)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.User)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, models.Role, int, int) int); ok {
		r1 = rf(ctx, role, page, size)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	r2 := ret.Error(2)

	return r0, r1, r2
}

// NewUserRepository creates a new instance of UserRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
