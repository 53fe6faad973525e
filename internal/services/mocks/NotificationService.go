package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// NotificationService is a testify mock of the NotificationService interface.
type NotificationService struct {
	mock.Mock
}

func (_m *NotificationService) SendEmail(ctx context.Context, msg *models.EmailMessage) (*models.Notification, error) {
	ret := _m.Called(ctx, msg)

	var r0 *models.Notification
	if rf, ok := ret.Get(0).(func(context.Context, *models.EmailMessage) *models.Notification); ok {
		r0 = rf(ctx, msg)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Notification)
	}

	r1 := ret.Error(1)

	return r0, r1
}

func (_m *NotificationService) SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error {
	ret := _m.Called(ctx, user, order)

	r0 := ret.Error(0)

	return r0
}

func (_m *NotificationService) SendOrderStatusUpdate(ctx context.Context, user *models.User, order *models.Order) error {
	ret := _m.Called(ctx, user, order)

	r0 := ret.Error(0)

	return r0
}

func (_m *NotificationService) ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, int, error) {
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

// NewNotificationService creates a new instance of NotificationService. It also registers a testing interface on
// the mock and a cleanup function to assert the mocks expectations.
func NewNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationService {
	m := &NotificationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
