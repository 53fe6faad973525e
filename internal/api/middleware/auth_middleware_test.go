package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(t *testing.T, userID uuid.UUID, role models.Role, duration time.Duration, key []byte) string {
	t.Helper()

	claims := &models.Claims{
		UserID: userID,
		Email:  "test@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func newRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.ContextWithLogger(req.Context(), logger))
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.Claims{UserID: userID}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     "Bearer " + createTestToken(t, userID, models.RoleCustomer, time.Hour, testJwtKey),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authorization header is required"}}`,
		},
		{
			name:           "Fail - No Bearer Prefix",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Malformed Token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Fail - Wrong Signing Key",
			authHeader:     "Bearer " + createTestToken(t, userID, models.RoleCustomer, time.Hour, []byte("different-secret-key-0987654321")),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Fail - Unsigned Token",
			authHeader:     "Bearer " + noneToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Unknown Role",
			authHeader:     "Bearer " + createTestToken(t, userID, models.Role("superuser"), time.Hour, testJwtKey),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Fail - Expired Token",
			authHeader:     "Bearer " + createTestToken(t, userID, models.RoleCustomer, -time.Hour, testJwtKey),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(next).ServeHTTP(rr, newRequest(tc.authHeader))

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestAdmin(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Success - admin role", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()

		authMiddleware.Admin(next).ServeHTTP(rr, newRequest("Bearer "+createTestToken(t, uuid.New(), models.RoleAdmin, time.Hour, testJwtKey)))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.True(t, called)
	})

	t.Run("Failure - customer role", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()

		authMiddleware.Admin(next).ServeHTTP(rr, newRequest("Bearer "+createTestToken(t, uuid.New(), models.RoleCustomer, time.Hour, testJwtKey)))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, called)
	})

	t.Run("Failure - no claims", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()

		authMiddleware.RequireAdmin(next).ServeHTTP(rr, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})
}
