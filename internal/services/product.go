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

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter models.ProductFilter, page, pageSize int) ([]*models.Product, int, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, cache cache.Cache) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, cache: cache}
}

func productKey(id uuid.UUID) string {
	return cache.Key(cache.ProductKeyPrefix, id.String())
}

func (s *productService) ensureCategory(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.GetCategoryByID(ctx, id); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.ValidationError("Category does not exist")
		}

		return errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:            uuid.New(),
		CategoryID:    req.CategoryID,
		Name:          utils.SanitizeText(req.Name),
		Description:   utils.SanitizeRichText(req.Description),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		SKU:           req.SKU,
		ImageURL:      req.ImageURL,
		Status:        models.ProductStatusActive,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.DuplicateEntryError("A product with this SKU already exists")
		}

		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) loadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found")
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

// GetProductByID reads through the product cache. Discontinued products are
// reported as not found.
func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	var product *models.Product

	found, err := s.cache.Get(ctx, productKey(id), &product)
	if err != nil {
		logger.Warn("Product cache read failed", slog.String("productId", id.String()), slog.Any("error", err))
	}

	if !found || product == nil {
		product, err = s.loadProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, productKey(id), product, 0); err != nil {
			logger.Warn("Product cache write failed", slog.String("productId", id.String()), slog.Any("error", err))
		}
	}

	if product.Status == models.ProductStatusDiscontinued {
		return nil, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}

		product.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
	}

	if req.Description != nil {
		product.Description = utils.SanitizeRichText(*req.Description)
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

// DeleteProduct discontinues the product. Order lines keep referencing it.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return err
	}

	product.Status = models.ProductStatusDiscontinued

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, productKey(id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.String("productId", id.String()), slog.Any("error", err))
	}
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter, page, pageSize int) ([]*models.Product, int, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, 0, errors.ValidationError("minPrice cannot be greater than maxPrice")
	}

	products, total, err := s.repo.ListProducts(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}
