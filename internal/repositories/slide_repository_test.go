package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slideColumns = []string{"id", "title", "subtitle", "image_url", "link_url", "position", "active", "created_at", "updated_at"}

func TestSlideRepository(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewSlideRepo(db)
	now := time.Now()
	slide := &models.Slide{ID: uuid.New(), Title: "Summer sale", ImageURL: "https://cdn.example.com/summer.jpg", Position: 1, Active: true}

	t.Run("Create", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO slides`)).
			WithArgs(slide.ID, "Summer sale", "", slide.ImageURL, "", 1, true).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreateSlide(t.Context(), slide))
	})

	t.Run("List Active", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE active OR NOT $1 ORDER BY position, created_at`)).WithArgs(true).
			WillReturnRows(sqlmock.NewRows(slideColumns).
				AddRow(slide.ID.String(), "Summer sale", "", slide.ImageURL, "", 1, true, now, now))

		slides, err := repo.ListSlides(t.Context(), true)

		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.True(t, slides[0].Active)
	})

	t.Run("Update - Not Found", func(t *testing.T) {
		missing := &models.Slide{ID: uuid.New(), Title: "Gone"}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE slides`)).WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		assert.ErrorIs(t, repo.UpdateSlide(t.Context(), missing), repository.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM slides WHERE id = $1`)).WithArgs(slide.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteSlide(t.Context(), slide.ID))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
