package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// NotificationRepository is a testify mock of the NotificationRepository interface.
type NotificationRepository struct {
	mock.Mock
}

func (_m *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	ret := _m.Called(ctx, notification)

	r0 := ret.Error(0)

	return r0
}

func (_m *NotificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error {
	ret := _m.Called(ctx, id, status, errorMsg)

	r0 := ret.Error(0)

	return r0
}

func (_m *NotificationRepository) ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, int, error) {
	ret := _m.Called(ctx, page, size)

	var r0 []*models.Notification
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []*models.Notification); ok {
		r0 = rf(ctx, page, size)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Notification)
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

// NewNotificationRepository creates a new instance of NotificationRepository. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
