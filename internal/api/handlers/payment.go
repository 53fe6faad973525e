package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const maxWebhookBytes = 65536

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// CreatePayment godoc
//
//	@Summary		Start a card payment
//	@Description	Creates a Stripe payment intent for an own card order and returns its client secret.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Order to pay"
//	@Success		201		{object}	models.PaymentResponse
//	@Failure		400		{object}	response.ErrorResponse	"Order is not paid by card"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		409		{object}	response.ErrorResponse	"Order already paid or cancelled"
//	@Security		BearerAuth
//	@Router			/payments [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.paymentService.CreatePayment(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to initiate payment", slog.String("orderId", req.OrderID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment initiated", slog.String("paymentId", resp.Payment.ID))
		response.Success(w, http.StatusCreated, resp)
	}
}

// GetPayment godoc
//
//	@Summary	Get an own payment
//	@Tags		Payments
//	@Produce	json
//	@Param		id	path		string	true	"Payment intent ID"
//	@Success	200	{object}	models.Payment
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/payments/{id} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Payment ID is required"))
			return
		}

		payment, err := h.paymentService.GetPaymentByID(r.Context(), claims.UserID, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// RefundPayment godoc
//
//	@Summary	Refund a paid payment
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"Payment intent ID"
//	@Success	202	{object}	models.Payment
//	@Failure	409	{object}	response.ErrorResponse	"Payment is not paid"
//	@Security	BearerAuth
//	@Router		/admin/payments/{id}/refund [post]
func (h *PaymentHandler) RefundPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Payment ID is required"))
			return
		}

		payment, err := h.paymentService.RefundPayment(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusAccepted, payment)
	}
}

// HandleStripeWebhook godoc
//
//	@Summary	Stripe webhook receiver
//	@Tags		Payments
//	@Accept		json
//	@Param		Stripe-Signature	header	string	true	"Stripe signature"
//	@Success	200
//	@Failure	400	{object}	response.ErrorResponse	"Bad signature or payload"
//	@Router		/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			response.Error(w, errors.BadRequestError("Failed to read request body").WithError(err))
			return
		}

		event, err := h.paymentService.ProcessWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			logger.Error("Webhook processing failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Webhook processed", slog.String("eventId", event.ID), slog.String("type", string(event.Type)))
		w.WriteHeader(http.StatusOK)
	}
}
