package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment mirrors a Stripe payment intent created for an order.
type Payment struct {
	ID          string        `json:"id"`
	OrderID     uuid.UUID     `json:"order_id"`
	UserID      uuid.UUID     `json:"user_id"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Description string        `json:"description"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreatePaymentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

type PaymentResponse struct {
	Payment      *Payment `json:"payment"`
	ClientSecret string   `json:"client_secret,omitempty"`
}
