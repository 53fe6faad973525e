package models

import (
	"time"

	"github.com/google/uuid"
)

// Slide is a storefront banner shown on the landing page.
type Slide struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlideRequest struct {
	Title    string `json:"title" validate:"required,max=120"`
	Subtitle string `json:"subtitle" validate:"max=255"`
	ImageURL string `json:"image_url" validate:"required,url"`
	LinkURL  string `json:"link_url" validate:"omitempty,url"`
	Position int    `json:"position" validate:"gte=0"`
	Active   *bool  `json:"active"`
}
