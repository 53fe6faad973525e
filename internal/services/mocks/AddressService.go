package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AddressService is a testify mock of the AddressService interface.
type AddressService struct {
	mock.Mock
}

func (_m *AddressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.Address
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *models.CreateAddressRequest) *models.Address); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Address)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *AddressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
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

func (_m *AddressService) DeleteAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	ret := _m.Called(ctx, userID, id)

	r0 := ret.Error(0)

	return r0
}

// NewAddressService creates a new instance of AddressService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewAddressService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AddressService {
	m := &AddressService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
