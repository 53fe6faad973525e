package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, msg *models.EmailMessage) (*models.Notification, error)
	SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error
	SendOrderStatusUpdate(ctx context.Context, user *models.User, order *models.Order) error
	ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendEmail records the notification, hands it to SendGrid and stores the
// outcome on the record.
func (s *notificationService) SendEmail(ctx context.Context, msg *models.EmailMessage) (*models.Notification, error) {
	logger := middleware.LoggerFromContext(ctx)

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      msg.Type,
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Content:   msg.Content,
		Status:    models.NotificationStatusPending,
		Metadata:  msg.Metadata,
	}

	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := s.emailService.Send(ctx, msg); err != nil {
		metrics.NotificationsSent.WithLabelValues(string(models.NotificationStatusFailed)).Inc()

		notification.Status = models.NotificationStatusFailed
		notification.Error = err.Error()

		if updateErr := s.repo.UpdateNotificationStatus(ctx, notification.ID, notification.Status, notification.Error); updateErr != nil {
			logger.Error("Failed to record notification failure", slog.String("notificationId", notification.ID.String()), slog.Any("error", updateErr))
		}

		return nil, errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	metrics.NotificationsSent.WithLabelValues(string(models.NotificationStatusSent)).Inc()

	notification.Status = models.NotificationStatusSent

	if err := s.repo.UpdateNotificationStatus(ctx, notification.ID, notification.Status, ""); err != nil {
		return nil, errors.DatabaseError("Notification sent but failed to update its status").WithError(err)
	}

	return notification, nil
}

func (s *notificationService) SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error {
	var body strings.Builder

	fmt.Fprintf(&body, "Hi %s,\n\nThank you for your order %s.\n\n", user.Name, order.ID)

	for _, item := range order.Items {
		fmt.Fprintf(&body, "%d x %s @ %.2f\n", item.Quantity, item.ProductName, item.UnitPrice)
	}

	fmt.Fprintf(&body, "\nDelivery (%s): %.2f\nTotal: %.2f\n", order.DeliveryMethod, order.DeliveryFee, order.TotalAmount)

	_, err := s.SendEmail(ctx, &models.EmailMessage{
		Type:      models.NotificationTypeOrderConfirmation,
		Recipient: user.Email,
		Name:      user.Name,
		Subject:   "Order confirmation",
		Content:   body.String(),
		Metadata:  map[string]string{"order_id": order.ID.String()},
	})

	return err
}

func (s *notificationService) SendOrderStatusUpdate(ctx context.Context, user *models.User, order *models.Order) error {
	_, err := s.SendEmail(ctx, &models.EmailMessage{
		Type:      models.NotificationTypeOrderStatus,
		Recipient: user.Email,
		Name:      user.Name,
		Subject:   "Your order is " + string(order.Status),
		Content:   fmt.Sprintf("Hi %s,\n\nYour order %s is now %s.\n", user.Name, order.ID, order.Status),
		Metadata:  map[string]string{"order_id": order.ID.String(), "status": string(order.Status)},
	})

	return err
}

func (s *notificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {
	notifications, total, err := s.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, total, nil
}
