package service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/google/uuid"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, userID uuid.UUID, id string) (*models.Payment, error)
	RefundPayment(ctx context.Context, id string) (*models.Payment, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type paymentService struct {
	repo         repository.PaymentRepository
	orderRepo    repository.OrderRepository
	stripeClient stripe.Client
	currency     string
}

func NewPaymentService(repo repository.PaymentRepository, orderRepo repository.OrderRepository, stripeClient stripe.Client, currency string) PaymentService {
	return &paymentService{repo: repo, orderRepo: orderRepo, stripeClient: stripeClient, currency: currency}
}

// CreatePayment opens a Stripe payment intent for one of the caller's card
// orders that has not been paid yet.
func (s *paymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Order not found")
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.UserID != userID {
		return nil, errors.NotFoundError("Order not found")
	}

	if order.PaymentMethod != models.PaymentMethodCard {
		return nil, errors.BadRequestError("Order is not paid by card")
	}

	if order.Status == models.OrderStatusCancelled || order.PaymentStatus != models.PaymentStatusPending {
		return nil, errors.ConflictError("Order cannot be paid in its current state")
	}

	if order.PaymentIntentID != "" {
		return nil, errors.ConflictError("A payment has already been started for this order").
			WithDetail("payment " + order.PaymentIntentID)
	}

	description := "Order " + order.ID.String()

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, toMinorUnits(order.TotalAmount), s.currency, description, map[string]string{
		"order_id": order.ID.String(),
		"user_id":  userID.String(),
	})
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	payment := &models.Payment{
		ID:          intent.ID,
		OrderID:     order.ID,
		UserID:      userID,
		Amount:      order.TotalAmount,
		Currency:    s.currency,
		Description: description,
		Status:      models.PaymentStatusPending,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, errors.DatabaseError("Failed to record payment").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID, models.PaymentStatusPending, intent.ID); err != nil {
		return nil, errors.DatabaseError("Failed to attach payment to order").WithError(err)
	}

	return &models.PaymentResponse{Payment: payment, ClientSecret: intent.ClientSecret}, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, userID uuid.UUID, id string) (*models.Payment, error) {
	payment, err := s.loadPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.UserID != userID {
		return nil, errors.NotFoundError("Payment not found")
	}

	return payment, nil
}

// RefundPayment asks Stripe to refund a paid intent. The local status moves
// to refunded once the charge.refunded webhook arrives.
func (s *paymentService) RefundPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.loadPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.Status != models.PaymentStatusPaid {
		return nil, errors.ConflictError("Only paid payments can be refunded")
	}

	if _, err := s.stripeClient.RefundPayment(ctx, payment.ID); err != nil {
		return nil, errors.ThirdPartyError("Failed to refund payment").WithError(err)
	}

	return payment, nil
}

func (s *paymentService) loadPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Payment not found")
		}

		return nil, errors.DatabaseError("Failed to fetch payment").WithError(err)
	}

	return payment, nil
}

var webhookStatuses = map[string]models.PaymentStatus{
	"payment_intent.succeeded":      models.PaymentStatusPaid,
	"payment_intent.payment_failed": models.PaymentStatusFailed,
	"charge.refunded":               models.PaymentStatusRefunded,
}

// intentID pulls the payment intent id out of the event payload. Charge
// events carry it in the payment_intent field.
func intentID(event stripe.Event) string {
	if event.Data == nil {
		return ""
	}

	field := "id"
	if event.Type == "charge.refunded" {
		field = "payment_intent"
	}

	id, _ := event.Data.Object[field].(string)

	return id
}

func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	logger := middleware.LoggerFromContext(ctx)

	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, errors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	status, handled := webhookStatuses[string(event.Type)]
	if !handled {
		logger.Debug("Ignoring webhook event", slog.String("type", string(event.Type)))
		return event, nil
	}

	id := intentID(event)
	if id == "" {
		return event, errors.BadRequestError("Missing payment intent ID in webhook")
	}

	payment, err := s.loadPayment(ctx, id)
	if err != nil {
		return event, err
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return event, errors.DatabaseError("Failed to update payment status").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, payment.OrderID, status, ""); err != nil {
		return event, errors.DatabaseError("Failed to update order payment status").WithError(err)
	}

	metrics.PaymentEvents.WithLabelValues(string(status)).Inc()

	logger.Info("Payment status updated",
		slog.String("paymentId", id),
		slog.String("orderId", payment.OrderID.String()),
		slog.String("status", string(status)))

	return event, nil
}
