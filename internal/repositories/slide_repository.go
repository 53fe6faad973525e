package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type SlideRepository interface {
	CreateSlide(ctx context.Context, slide *models.Slide) error
	GetSlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error)
	ListSlides(ctx context.Context, activeOnly bool) ([]*models.Slide, error)
	UpdateSlide(ctx context.Context, slide *models.Slide) error
	DeleteSlide(ctx context.Context, id uuid.UUID) error
}

type slideRepository struct {
	DB DBTX
}

func NewSlideRepo(db DBTX) SlideRepository {
	return &slideRepository{DB: db}
}

func (r *slideRepository) CreateSlide(ctx context.Context, slide *models.Slide) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO slides (id, title, subtitle, image_url, link_url, position, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, slide.ID, slide.Title, slide.Subtitle, slide.ImageURL, slide.LinkURL, slide.Position,
		slide.Active).Scan(&slide.CreatedAt, &slide.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert slide: %w", err)
	}

	return nil
}

func (r *slideRepository) GetSlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, title, subtitle, image_url, link_url, position, active, created_at, updated_at
		FROM slides
		WHERE id = $1
	`

	s := &models.Slide{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.LinkURL, &s.Position, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying slide: %w", err)
	}

	return s, nil
}

// ListSlides returns slides ordered by position.
func (r *slideRepository) ListSlides(ctx context.Context, activeOnly bool) ([]*models.Slide, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, title, subtitle, image_url, link_url, position, active, created_at, updated_at
		FROM slides
		WHERE active OR NOT $1
		ORDER BY position, created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}
	defer rows.Close()

	slides := []*models.Slide{}

	for rows.Next() {
		s := &models.Slide{}

		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.LinkURL, &s.Position, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan slide: %w", err)
		}

		slides = append(slides, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slides: %w", err)
	}

	return slides, nil
}

func (r *slideRepository) UpdateSlide(ctx context.Context, slide *models.Slide) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE slides
		SET title = $1, subtitle = $2, image_url = $3, link_url = $4, position = $5, active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, slide.Title, slide.Subtitle, slide.ImageURL, slide.LinkURL, slide.Position, slide.Active,
		slide.ID).Scan(&slide.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update slide: %w", err)
	}

	return nil
}

func (r *slideRepository) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}

	return checkAffected(result)
}
