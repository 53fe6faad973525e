package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"mug","quantity":2}`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.True(t, ok)
		assert.Equal(t, "mug", dest.Name)
		assert.Equal(t, 2, dest.Quantity)
	})

	t.Run("Failure - empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "BAD_REQUEST")
	})

	t.Run("Failure - validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":0}`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, rr.Body.String(), "Field Name is required")
	})
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("id", id.String())

	parsed, err := utils.ParseID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	req.SetPathValue("id", "not-a-uuid")
	_, err = utils.ParseID(req, "id")
	assert.Error(t, err)
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&pageSize=500", nil)

	page, size := utils.ParsePagination(req)

	assert.Equal(t, 3, page)
	assert.Equal(t, 10, size)
}
