package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID            uuid.UUID     `json:"id"`
	CategoryID    int64         `json:"category_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	StockQuantity int           `json:"stock_quantity"`
	SKU           string        `json:"sku"`
	ImageURL      string        `json:"image_url"`
	Status        ProductStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Category      *Category     `json:"category,omitempty"`
}

func (p *Product) IsPurchasable() bool {
	return p.Status == ProductStatusActive
}

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID int64
	Query      string
	MinPrice   float64
	MaxPrice   float64
	Status     ProductStatus
}

type CreateProductRequest struct {
	CategoryID    int64   `json:"category_id" validate:"required"`
	Name          string  `json:"name" validate:"required,min=3,max=200"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	SKU           string  `json:"sku" validate:"required,min=3,max=50"`
	ImageURL      string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	CategoryID    *int64         `json:"category_id,omitempty"`
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description   *string        `json:"description,omitempty"`
	Price         *float64       `json:"price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity *int           `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Status        *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}
