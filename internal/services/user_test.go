package service_test

import (
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTKey = []byte("test-secret")

func setupUserService(t *testing.T) (service.UserService, *mocks.UserRepository, *mocks.RateLimitRepository) {
	t.Helper()

	repo := mocks.NewUserRepository(t)
	limiter := mocks.NewRateLimitRepository(t)

	return service.NewUserService(repo, limiter, testJWTKey, 2*time.Hour), repo, limiter
}

func TestUserService_Register(t *testing.T) {
	req := &models.RegisterRequest{Name: " Ada ", Email: "Ada@Example.com", Password: "secret123"}

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := setupUserService(t)

		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ada@example.com" &&
				u.Role == models.RoleCustomer &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
		})).Return(nil).Once()

		user, err := svc.Register(t.Context(), req)

		require.NoError(t, err)
		assert.Equal(t, "Ada", user.Name)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		svc, repo, _ := setupUserService(t)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := svc.Register(t.Context(), req)

		assertAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Failure - Database", func(t *testing.T) {
		svc, repo, _ := setupUserService(t)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

		_, err := svc.Register(t.Context(), req)

		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.User{ID: uuid.New(), Email: "ops@example.com", Password: string(hash), Role: models.RoleAdmin}

	t.Run("Success - Token Carries Role", func(t *testing.T) {
		svc, repo, limiter := setupUserService(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, "ops@example.com").Return(true, 4, 0, nil).Once()
		repo.On("GetUserByEmail", mock.Anything, "ops@example.com").Return(admin, nil).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "OPS@example.com", Password: "secret123"})

		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, 7200, resp.ExpiresIn)

		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) { return testJWTKey, nil })
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.UserID)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, repo, limiter := setupUserService(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, "ops@example.com").Return(true, 2, 0, nil).Once()
		repo.On("GetUserByEmail", mock.Anything, "ops@example.com").Return(admin, nil).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "ops@example.com", Password: "nope"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 2, resp.RemainingTries)
		assert.Empty(t, resp.Token)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, repo, limiter := setupUserService(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, "ghost@example.com").Return(true, 4, 0, nil).Once()
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "ghost@example.com", Password: "x"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		svc, _, limiter := setupUserService(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, "ops@example.com").Return(false, 0, 30, nil).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "ops@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 30, resp.RetryAfter)
	})

	t.Run("Rate Limiter Unavailable", func(t *testing.T) {
		svc, _, limiter := setupUserService(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, "ops@example.com").Return(false, 0, 0, errors.New("redis down")).Once()

		_, err := svc.Login(t.Context(), &models.LoginRequest{Email: "ops@example.com", Password: "secret123"})

		assertAppError(t, err, appErrors.ErrCodeThirdPartyError)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	id := uuid.New()

	t.Run("Not Found", func(t *testing.T) {
		svc, repo, _ := setupUserService(t)
		repo.On("GetUserByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.GetUserByID(t.Context(), id)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("List Customers", func(t *testing.T) {
		svc, repo, _ := setupUserService(t)
		repo.On("ListUsersByRole", mock.Anything, models.RoleCustomer, 1, 10).Return([]*models.User{{ID: id}}, 1, nil).Once()

		users, total, err := svc.ListCustomers(t.Context(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, users, 1)
	})
}
