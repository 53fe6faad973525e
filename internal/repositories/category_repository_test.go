package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewCategoryRepo(db)
	now := time.Now()

	t.Run("Create", func(t *testing.T) {
		category := &models.Category{Name: "Kitchen", Description: "Pots and pans"}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories (name, description, created_at, updated_at)`)).
			WithArgs("Kitchen", "Pots and pans").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

		require.NoError(t, repo.CreateCategory(t.Context(), category))
		assert.Equal(t, int64(7), category.ID)
	})

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM categories ORDER BY name`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}).
				AddRow(2, "Books", "", now, now).
				AddRow(7, "Kitchen", "Pots and pans", now, now))

		categories, err := repo.ListCategories(t.Context())

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Books", categories[0].Name)
	})

	t.Run("Update - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE categories SET name = $1, description = $2`)).
			WithArgs("Garden", "", int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.UpdateCategory(t.Context(), &models.Category{ID: 99, Name: "Garden"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Delete - Still Referenced", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).WithArgs(int64(7)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteCategory(t.Context(), 7)

		assert.ErrorIs(t, err, repository.ErrInUse)
	})

	t.Run("Delete - Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteCategory(t.Context(), 2))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
