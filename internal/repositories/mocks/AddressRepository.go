package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AddressRepository is a testify mock of the AddressRepository interface.
type AddressRepository struct {
	mock.Mock
}

func (_m *AddressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	ret := _m.Called(ctx, address)

	r0 := ret.Error(0)

	return r0
}

func (_m *AddressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Address
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Address); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Address)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *AddressRepository) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*models.Address
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*models.Address); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Address)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *AddressRepository) DeleteAddress(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	ret := _m.Called(ctx, id, userID)

	r0 := ret.Error(0)

	return r0
}

// NewAddressRepository creates a new instance of AddressRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AddressRepository {
	m := &AddressRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
