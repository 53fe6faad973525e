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

var addressColumns = []string{"id", "user_id", "recipient_name", "phone", "street", "city", "state", "postal_code", "country", "created_at", "updated_at"}

func TestAddressRepository(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewAddressRepo(db)
	userID := uuid.New()
	addressID := uuid.New()
	now := time.Now()

	t.Run("Create", func(t *testing.T) {
		address := &models.Address{
			ID: addressID, UserID: userID, RecipientName: "Jane", Phone: "+14155550100",
			Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US",
		}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO addresses`)).
			WithArgs(addressID, userID, "Jane", "+14155550100", "1 Main St", "Springfield", "IL", "62701", "US").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreateAddress(t.Context(), address))
		assert.Equal(t, now, address.CreatedAt)
	})

	t.Run("Get", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM addresses WHERE id = $1`)).WithArgs(addressID).
			WillReturnRows(sqlmock.NewRows(addressColumns).
				AddRow(addressID.String(), userID.String(), "Jane", "+14155550100", "1 Main St", "Springfield", "IL", "62701", "US", now, now))

		address, err := repo.GetAddressByID(t.Context(), addressID)

		require.NoError(t, err)
		assert.Equal(t, userID, address.UserID)
	})

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM addresses WHERE user_id = $1 ORDER BY created_at`)).WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(addressColumns))

		addresses, err := repo.ListAddressesByUser(t.Context(), userID)

		require.NoError(t, err)
		assert.Empty(t, addresses)
	})

	t.Run("Delete - Other Owner", func(t *testing.T) {
		other := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM addresses WHERE id = $1 AND user_id = $2`)).WithArgs(addressID, other).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteAddress(t.Context(), addressID, other)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
