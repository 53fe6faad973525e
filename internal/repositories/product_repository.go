package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	RestoreStock(ctx context.Context, id uuid.UUID, quantity int) error
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}

type productRepository struct {
	DB DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.category_id, p.name, p.description, p.price, p.stock_quantity, p.sku, p.image_url, p.status, p.created_at, p.updated_at, c.id, c.name, c.description`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}
	category := &models.Category{}

	var (
		categoryID   sql.NullInt64
		categoryName sql.NullString
		categoryDesc sql.NullString
	)

	err := row.Scan(&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Price, &product.StockQuantity,
		&product.SKU, &product.ImageURL, &product.Status, &product.CreatedAt, &product.UpdatedAt, &categoryID, &categoryName, &categoryDesc)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		category.ID = categoryID.Int64
		category.Name = categoryName.String
		category.Description = categoryDesc.String
		product.Category = category
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (id, category_id, name, description, price, stock_quantity, sku, image_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.ID, product.CategoryID, product.Name, product.Description, product.Price,
		product.StockQuantity, product.SKU, product.ImageURL, product.Status).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}

		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1
	`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying product: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, stock_quantity = $5, image_url = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.Name, product.Description, product.Price,
		product.StockQuantity, product.ImageURL, product.Status, product.ID).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// buildProductFilter renders the WHERE clause for a listing and the matching
// positional arguments.
func buildProductFilter(filter models.ProductFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("p.status = $%d", filter.Status)
	}

	if filter.CategoryID > 0 {
		add("p.category_id = $%d", filter.CategoryID)
	}

	if filter.Query != "" {
		add("p.name ILIKE $%d", "%"+filter.Query+"%")
	}

	if filter.MinPrice > 0 {
		add("p.price >= $%d", filter.MinPrice)
	}

	if filter.MaxPrice > 0 {
		add("p.price <= $%d", filter.MaxPrice)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := buildProductFilter(filter)

	var total int

	countQuery := `SELECT COUNT(*) FROM products p` + where
	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	args = append(args, size, pageOffset(page, size))

	query := `SELECT ` + productColumns + ` FROM products p LEFT JOIN categories c ON p.category_id = c.id` + where +
		fmt.Sprintf(` ORDER BY p.created_at DESC, p.id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, total, nil
}

// DecrementStock removes quantity units from the product's stock. The
// guard in the WHERE clause keeps stock from going negative under
// concurrent checkouts; ErrInsufficientStock is returned when it fails.
func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity >= $1
	`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if err := checkAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInsufficientStock
		}

		return err
	}

	return nil
}

// RestoreStock puts units of a cancelled order back on sale.
func (r *productRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET stock_quantity = stock_quantity + $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}

	return checkAffected(result)
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	query := `SELECT COUNT(*) FROM products WHERE category_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
