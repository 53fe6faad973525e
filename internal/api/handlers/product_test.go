package handlers_test

import (
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

func TestListProducts(t *testing.T) {
	t.Run("Storefront Sees Active Only", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc)
		filter := models.ProductFilter{CategoryID: 4, Query: "mug", MinPrice: 5, MaxPrice: 20, Status: models.ProductStatusActive}
		svc.On("ListProducts", mock.Anything, filter, 1, 10).Return([]*models.Product{{Name: "Mug"}}, 1, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?category=4&q=mug&minPrice=5&maxPrice=20", nil, nil)
		rr := httptest.NewRecorder()
		h.ListProducts().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var page models.PaginatedResponse
		decodeResponse(t, rr, &page)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("Admin Can Filter By Status", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc)
		svc.On("ListProducts", mock.Anything, models.ProductFilter{Status: models.ProductStatusDiscontinued}, 1, 10).
			Return([]*models.Product{}, 0, nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodGet, "/api/v1/admin/products?status=discontinued", nil, uuid.New(), models.RoleAdmin, nil)
		rr := httptest.NewRecorder()
		h.ListAllProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid Price", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t))

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?minPrice=cheap", nil, nil)
		rr := httptest.NewRecorder()
		h.ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Category", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t))

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?category=-1", nil, nil)
		rr := httptest.NewRecorder()
		h.ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProductCRUD(t *testing.T) {
	adminID := uuid.New()
	productID := uuid.New()

	t.Run("Get", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc)
		svc.On("GetProductByID", mock.Anything, productID).Return(&models.Product{ID: productID, Name: "Mug"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/"+productID.String(), nil,
			map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()
		h.GetProduct().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var product models.Product
		decodeResponse(t, rr, &product)
		assert.Equal(t, "Mug", product.Name)
	})

	t.Run("Create", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc)
		body := models.CreateProductRequest{CategoryID: 1, Name: "Mug", Price: 10, StockQuantity: 3, SKU: "MUG-1"}
		svc.On("CreateProduct", mock.Anything, &body).Return(&models.Product{ID: productID}, nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodPost, "/api/v1/admin/products", jsonBody(t, body), adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Create - Missing SKU", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t))
		body := models.CreateProductRequest{CategoryID: 1, Name: "Mug", Price: 10}

		req := testutils.CreateTestRequestWithRole(http.MethodPost, "/api/v1/admin/products", jsonBody(t, body), adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc)
		svc.On("DeleteProduct", mock.Anything, productID).Return(nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodDelete, "/api/v1/admin/products/"+productID.String(), nil, adminID, models.RoleAdmin,
			map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()
		h.DeleteProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Update - Not Found", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc)
		svc.On("UpdateProduct", mock.Anything, productID, mock.Anything).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		price := 9.5
		req := testutils.CreateTestRequestWithRole(http.MethodPut, "/api/v1/admin/products/"+productID.String(),
			jsonBody(t, models.UpdateProductRequest{Price: &price}), adminID, models.RoleAdmin, map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()
		h.UpdateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCategoryHandler(t *testing.T) {
	t.Run("Delete In Use", func(t *testing.T) {
		svc := mocks.NewCategoryService(t)
		h := handlers.NewCategoryHandler(svc)
		svc.On("DeleteCategory", mock.Anything, int64(7)).Return(appErrors.ConflictError("Category still has products")).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodDelete, "/api/v1/admin/categories/7", nil, uuid.New(), models.RoleAdmin,
			map[string]string{"id": "7"})
		rr := httptest.NewRecorder()
		h.DeleteCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("List", func(t *testing.T) {
		svc := mocks.NewCategoryService(t)
		h := handlers.NewCategoryHandler(svc)
		svc.On("ListCategories", mock.Anything).Return([]*models.Category{{ID: 1, Name: "Kitchen"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/categories", nil, nil)
		rr := httptest.NewRecorder()
		h.ListCategories().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestSlideHandler(t *testing.T) {
	svc := mocks.NewSlideService(t)
	h := handlers.NewSlideHandler(svc)
	svc.On("ListActiveSlides", mock.Anything).Return([]*models.Slide{{Title: "Sale", Position: 1, Active: true}}, nil).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/slides", nil, nil)
	rr := httptest.NewRecorder()
	h.ListActiveSlides().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var slides []models.Slide
	decodeResponse(t, rr, &slides)
	assert.Len(t, slides, 1)
}
