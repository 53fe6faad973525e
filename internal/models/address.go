package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by a user.
type Address struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	RecipientName string    `json:"recipient_name"`
	Phone         string    `json:"phone"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateAddressRequest struct {
	RecipientName string `json:"recipient_name" validate:"required,max=120"`
	Phone         string `json:"phone" validate:"required,e164"`
	Street        string `json:"street" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required,iso3166_1_alpha2"`
}
