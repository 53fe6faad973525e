package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)
		body := models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
		svc.On("Register", mock.Anything, &body).Return(&models.User{ID: uuid.New(), Email: body.Email, Role: models.RoleCustomer}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", jsonBody(t, body), nil)
		rr := httptest.NewRecorder()
		h.Register().ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret123")
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		body := models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", jsonBody(t, body), nil)
		rr := httptest.NewRecorder()
		h.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t))

		body := models.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "secret123"}
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", jsonBody(t, body), nil)
		rr := httptest.NewRecorder()
		h.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	body := models.LoginRequest{Email: "ada@example.com", Password: "secret123"}

	tests := []struct {
		name   string
		resp   *models.LoginResponse
		status int
	}{
		{"Success", &models.LoginResponse{Success: true, Token: "tok", ExpiresIn: 3600}, http.StatusOK},
		{"Bad Credentials", &models.LoginResponse{Success: false, RemainingTries: 3}, http.StatusUnauthorized},
		{"Rate Limited", &models.LoginResponse{Success: false, RetryAfter: 12}, http.StatusTooManyRequests},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewUserService(t)
			h := handlers.NewUserHandler(svc)
			svc.On("Login", mock.Anything, &body).Return(tc.resp, nil).Once()

			req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", jsonBody(t, body), nil)
			rr := httptest.NewRecorder()
			h.Login().ServeHTTP(rr, req)

			require.Equal(t, tc.status, rr.Code)

			var got models.LoginResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, *tc.resp, got)
		})
	}
}

func TestProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)
		svc.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Name: "Ada"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil)
		rr := httptest.NewRecorder()
		h.Profile().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var user models.User
		decodeResponse(t, rr, &user)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t))

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)
		rr := httptest.NewRecorder()
		h.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAddressHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Create Rejects Bad Country", func(t *testing.T) {
		h := handlers.NewAddressHandler(mocks.NewAddressService(t))
		body := models.CreateAddressRequest{
			RecipientName: "Ada", Phone: "+4930123456", Street: "Main 1", City: "Berlin",
			State: "BE", PostalCode: "10115", Country: "Germany",
		}

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/addresses", jsonBody(t, body), userID, nil)
		rr := httptest.NewRecorder()
		h.CreateAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		svc := mocks.NewAddressService(t)
		h := handlers.NewAddressHandler(svc)
		id := uuid.New()
		svc.On("DeleteAddress", mock.Anything, userID, id).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/addresses/"+id.String(), nil, userID,
			map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()
		h.DeleteAddress().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
