package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Cache is a testify mock of the Cache interface.
type Cache struct {
	mock.Mock
}

func (_m *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	ret := _m.Called(ctx, key, dest)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, any) bool); ok {
		r0 = rf(ctx, key, dest)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)

	r0 := ret.Error(0)

	return r0
}

func (_m *Cache) Delete(ctx context.Context, keys ...string) error {
	ret := _m.Called(ctx, keys)

	r0 := ret.Error(0)

	return r0
}

// NewCache creates a new instance of Cache. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *Cache {
	m := &Cache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
