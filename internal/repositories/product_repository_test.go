package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "category_id", "name", "description", "price", "stock_quantity", "sku", "image_url", "status",
	"created_at", "updated_at", "c_id", "c_name", "c_description",
}

func TestProductRepository_CreateProduct(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewProductRepo(db)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO products (id, category_id, name, description, price, stock_quantity, sku, image_url, status, created_at, updated_at)`)

	product := &models.Product{
		ID: uuid.New(), CategoryID: 1, Name: "Mug", Price: 9.99, StockQuantity: 10, SKU: "MUG-1", Status: models.ProductStatusActive,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(product.ID, int64(1), "Mug", "", 9.99, 10, "MUG-1", "", models.ProductStatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreateProduct(t.Context(), product))
		assert.WithinDuration(t, now, product.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateProduct(t.Context(), product)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_GetProductByID(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewProductRepo(db)
	id := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`FROM products p LEFT JOIN categories c ON p.category_id = c.id WHERE p.id = $1`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(id.String(), int64(2), "Mug", "Stoneware", 12.5, 4, "MUG-1", "https://img/mug.png", "active", now, now, int64(2), "Kitchen", "Cookware"))

		product, err := repo.GetProductByID(t.Context(), id)

		require.NoError(t, err)
		assert.Equal(t, id, product.ID)
		assert.Equal(t, models.ProductStatusActive, product.Status)
		require.NotNil(t, product.Category)
		assert.Equal(t, "Kitchen", product.Category.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Without Category", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(id.String(), int64(2), "Mug", "", 12.5, 4, "MUG-1", "", "active", now, now, nil, nil, nil))

		product, err := repo.GetProductByID(t.Context(), id)

		require.NoError(t, err)
		assert.Nil(t, product.Category)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).WillReturnRows(sqlmock.NewRows(productRowColumns))

		product, err := repo.GetProductByID(t.Context(), id)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestProductRepository_ListProducts(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewProductRepo(db)
	now := time.Now()

	t.Run("Success - With Filters", func(t *testing.T) {
		// Arrange
		filter := models.ProductFilter{Status: models.ProductStatusActive, CategoryID: 3, Query: "mug", MinPrice: 5, MaxPrice: 50}

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.status = $1 AND p.category_id = $2 AND p.name ILIKE $3 AND p.price >= $4 AND p.price <= $5`)).
			WithArgs(models.ProductStatusActive, int64(3), "%mug%", 5.0, 50.0).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(regexp.QuoteMeta(`AND p.price <= $5 ORDER BY p.created_at DESC, p.id LIMIT $6 OFFSET $7`)).
			WithArgs(models.ProductStatusActive, int64(3), "%mug%", 5.0, 50.0, 10, 10).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(uuid.NewString(), int64(3), "Mug", "", 12.5, 4, "MUG-1", "", "active", now, now, int64(3), "Kitchen", ""))

		// Act
		products, total, err := repo.ListProducts(t.Context(), filter, 2, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, products, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Filters", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.created_at DESC, p.id LIMIT $1 OFFSET $2`)).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		products, total, err := repo.ListProducts(t.Context(), models.ProductFilter{}, 1, 20)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p`)).WillReturnError(errors.New("timeout"))

		_, _, err := repo.ListProducts(t.Context(), models.ProductFilter{}, 1, 20)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count products")
	})
}

func TestProductRepository_DecrementStock(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewProductRepo(db)
	id := uuid.New()
	query := regexp.QuoteMeta(`SET stock_quantity = stock_quantity - $1, updated_at = NOW() WHERE id = $2 AND stock_quantity >= $1`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(3, id).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DecrementStock(t.Context(), id, 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(3, id).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DecrementStock(t.Context(), id, 3)

		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_RestoreStock(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewProductRepo(db)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE products SET stock_quantity = stock_quantity + $1, updated_at = NOW() WHERE id = $2`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(2, id).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.RestoreStock(t.Context(), id, 2))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Product Gone", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(2, id).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RestoreStock(t.Context(), id, 2)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_CountByCategory(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewProductRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE category_id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByCategory(t.Context(), 4)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
