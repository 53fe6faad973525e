package service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type SlideService interface {
	CreateSlide(ctx context.Context, req *models.SlideRequest) (*models.Slide, error)
	UpdateSlide(ctx context.Context, id uuid.UUID, req *models.SlideRequest) (*models.Slide, error)
	DeleteSlide(ctx context.Context, id uuid.UUID) error
	// ListActiveSlides returns the storefront carousel ordered by position.
	ListActiveSlides(ctx context.Context) ([]*models.Slide, error)
	ListSlides(ctx context.Context) ([]*models.Slide, error)
}

type slideService struct {
	repo  repository.SlideRepository
	cache cache.Cache
}

func NewSlideService(repo repository.SlideRepository, cache cache.Cache) SlideService {
	return &slideService{repo: repo, cache: cache}
}

func applySlideRequest(slide *models.Slide, req *models.SlideRequest) {
	slide.Title = utils.SanitizeText(req.Title)
	slide.Subtitle = utils.SanitizeText(req.Subtitle)
	slide.ImageURL = req.ImageURL
	slide.LinkURL = req.LinkURL
	slide.Position = req.Position

	if req.Active != nil {
		slide.Active = *req.Active
	}
}

func (s *slideService) CreateSlide(ctx context.Context, req *models.SlideRequest) (*models.Slide, error) {
	slide := &models.Slide{ID: uuid.New(), Active: true}
	applySlideRequest(slide, req)

	if err := s.repo.CreateSlide(ctx, slide); err != nil {
		return nil, errors.DatabaseError("Failed to create slide").WithError(err)
	}

	s.invalidate(ctx)

	return slide, nil
}

func (s *slideService) UpdateSlide(ctx context.Context, id uuid.UUID, req *models.SlideRequest) (*models.Slide, error) {
	slide, err := s.repo.GetSlideByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Slide not found")
		}

		return nil, errors.DatabaseError("Failed to fetch slide").WithError(err)
	}

	applySlideRequest(slide, req)

	if err := s.repo.UpdateSlide(ctx, slide); err != nil {
		return nil, errors.DatabaseError("Failed to update slide").WithError(err)
	}

	s.invalidate(ctx)

	return slide, nil
}

func (s *slideService) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteSlide(ctx, id); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Slide not found")
		}

		return errors.DatabaseError("Failed to delete slide").WithError(err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *slideService) ListActiveSlides(ctx context.Context) ([]*models.Slide, error) {
	logger := middleware.LoggerFromContext(ctx)

	var slides []*models.Slide

	found, err := s.cache.Get(ctx, cache.ActiveSlidesKey, &slides)
	if err != nil {
		logger.Warn("Slide cache read failed", slog.Any("error", err))
	}

	if found {
		return slides, nil
	}

	slides, err = s.repo.ListSlides(ctx, true)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch slides").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.ActiveSlidesKey, slides, 0); err != nil {
		logger.Warn("Slide cache write failed", slog.Any("error", err))
	}

	return slides, nil
}

func (s *slideService) ListSlides(ctx context.Context) ([]*models.Slide, error) {
	slides, err := s.repo.ListSlides(ctx, false)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch slides").WithError(err)
	}

	return slides, nil
}

func (s *slideService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.ActiveSlidesKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Slide cache invalidation failed", slog.Any("error", err))
	}
}
