package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// RateLimitRepository is a testify mock of the RateLimitRepository interface.
type RateLimitRepository struct {
	mock.Mock
}

func (_m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	ret := _m.Called(ctx, email)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, string) int); ok {
		r1 = rf(ctx, email)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int)
	}

	var r2 int
	if rf, ok := ret.Get(2).(func(context.Context, string) int); ok {
		r2 = rf(ctx, email)
	} else if ret.Get(2) != nil {
		r2 = ret.Get(2).(int)
	}

	r3 := ret.Error(3)

	return r0, r1, r2, r3
}

// NewRateLimitRepository creates a new instance of RateLimitRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewRateLimitRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RateLimitRepository {
	m := &RateLimitRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
