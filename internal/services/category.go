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
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	cache       cache.Cache
}

func NewCategoryService(repo repository.CategoryRepository, productRepo repository.ProductRepository, cache cache.Cache) CategoryService {
	return &categoryService{repo: repo, productRepo: productRepo, cache: cache}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.DuplicateEntryError("A category with this name already exists")
		}

		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	s.invalidate(ctx)

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	logger := middleware.LoggerFromContext(ctx)

	var categories []*models.Category

	found, err := s.cache.Get(ctx, cache.CategoriesKey, &categories)
	if err != nil {
		logger.Warn("Category cache read failed", slog.Any("error", err))
	}

	if found {
		return categories, nil
	}

	categories, err = s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.CategoriesKey, categories, 0); err != nil {
		logger.Warn("Category cache write failed", slog.Any("error", err))
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Category not found")
		}

		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	category.Name = utils.SanitizeText(req.Name)
	category.Description = utils.SanitizeText(req.Description)

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		switch {
		case stderrors.Is(err, repository.ErrDuplicate):
			return nil, errors.DuplicateEntryError("A category with this name already exists")
		case stderrors.Is(err, repository.ErrNotFound):
			return nil, errors.NotFoundError("Category not found")
		}

		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	s.invalidate(ctx)

	return category, nil
}

// DeleteCategory refuses while any product, discontinued or not, still
// references the category.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to count products").WithError(err)
	}

	if count > 0 {
		return errors.ConflictError("Category still has products")
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		switch {
		case stderrors.Is(err, repository.ErrNotFound):
			return errors.NotFoundError("Category not found")
		case stderrors.Is(err, repository.ErrInUse):
			return errors.ConflictError("Category still has products")
		}

		return errors.DatabaseError("Failed to delete category").WithError(err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.CategoriesKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category cache invalidation failed", slog.Any("error", err))
	}
}
