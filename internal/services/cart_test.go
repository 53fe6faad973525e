package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartService(t *testing.T) (service.CartService, *mocks.CartRepository, *mocks.ProductRepository) {
	t.Helper()

	carts := mocks.NewCartRepository(t)
	products := mocks.NewProductRepository(t)

	return service.NewCartService(carts, products), carts, products
}

func TestCartService_GetCart(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Totals Lines", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)
		cart := &models.Cart{ID: uuid.New(), UserID: userID}

		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("ListItems", mock.Anything, cart.ID).Return([]models.CartItem{
			{ID: 1, TotalPrice: 20},
			{ID: 2, TotalPrice: 4.5},
		}, nil).Once()

		got, err := svc.GetCart(t.Context(), userID)

		require.NoError(t, err)
		assert.InDelta(t, 24.5, got.Total, 0.001)
		assert.Len(t, got.Items, 2)
	})

	t.Run("Success - No Cart Yet", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)
		carts.On("GetCartByUserID", mock.Anything, userID).Return(nil, repository.ErrNotFound).Once()

		got, err := svc.GetCart(t.Context(), userID)

		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Zero(t, got.Total)
	})
}

func TestCartService_AddItem(t *testing.T) {
	userID := uuid.New()
	cart := &models.Cart{ID: uuid.New(), UserID: userID}
	product := &models.Product{ID: uuid.New(), Name: "Mug", Price: 10, StockQuantity: 5, Status: models.ProductStatusActive}

	t.Run("Success - New Line", func(t *testing.T) {
		svc, carts, products := setupCartService(t)

		products.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		carts.On("GetOrCreateCart", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, product.ID).Return(nil, repository.ErrNotFound).Once()
		carts.On("AddItem", mock.Anything, mock.MatchedBy(func(item *models.CartItem) bool {
			return item.CartID == cart.ID && item.ProductID == product.ID && item.Quantity == 2
		})).Return(nil).Once()
		carts.On("ListItems", mock.Anything, cart.ID).Return([]models.CartItem{{ID: 1, ProductID: product.ID, Quantity: 2, TotalPrice: 20}}, nil).Once()

		got, err := svc.AddItem(t.Context(), userID, &models.AddItemRequest{ProductID: product.ID, Quantity: 2})

		require.NoError(t, err)
		assert.InDelta(t, 20.0, got.Total, 0.001)
	})

	t.Run("Success - Increments Existing Line", func(t *testing.T) {
		svc, carts, products := setupCartService(t)

		products.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		carts.On("GetOrCreateCart", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, product.ID).Return(&models.CartItem{ID: 7, Quantity: 2}, nil).Once()
		carts.On("UpdateItemQuantity", mock.Anything, int64(7), 5).Return(nil).Once()
		carts.On("ListItems", mock.Anything, cart.ID).Return([]models.CartItem{}, nil).Once()

		_, err := svc.AddItem(t.Context(), userID, &models.AddItemRequest{ProductID: product.ID, Quantity: 3})

		require.NoError(t, err)
	})

	t.Run("Failure - Exceeds Stock", func(t *testing.T) {
		svc, carts, products := setupCartService(t)

		products.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		carts.On("GetOrCreateCart", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, product.ID).Return(&models.CartItem{ID: 7, Quantity: 4}, nil).Once()

		_, err := svc.AddItem(t.Context(), userID, &models.AddItemRequest{ProductID: product.ID, Quantity: 2})

		assertAppError(t, err, appErrors.ErrCodeInsufficientStock)
	})

	t.Run("Failure - Inactive Product", func(t *testing.T) {
		svc, _, products := setupCartService(t)
		inactive := &models.Product{ID: uuid.New(), Status: models.ProductStatusInactive, StockQuantity: 10}

		products.On("GetProductByID", mock.Anything, inactive.ID).Return(inactive, nil).Once()

		_, err := svc.AddItem(t.Context(), userID, &models.AddItemRequest{ProductID: inactive.ID, Quantity: 1})

		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	userID := uuid.New()
	cart := &models.Cart{ID: uuid.New(), UserID: userID}
	productID := uuid.New()

	t.Run("Zero Removes Line", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)

		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, productID).Return(&models.CartItem{ID: 3, Quantity: 2}, nil).Once()
		carts.On("DeleteItemsByProduct", mock.Anything, cart.ID, productID).Return(int64(1), nil).Once()
		carts.On("ListItems", mock.Anything, cart.ID).Return([]models.CartItem{}, nil).Once()

		got, err := svc.UpdateQuantity(t.Context(), userID, &models.UpdateQuantityRequest{ProductID: productID, Quantity: 0})

		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})

	t.Run("Success - Duplicate Lines Folded Into One", func(t *testing.T) {
		svc, carts, products := setupCartService(t)
		product := &models.Product{ID: productID, Name: "Mug", Price: 10, StockQuantity: 4, Status: models.ProductStatusActive}

		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, productID).Return(&models.CartItem{ID: 3, Quantity: 2}, nil).Once()
		products.On("GetProductByID", mock.Anything, productID).Return(product, nil).Once()
		carts.On("UpdateItemQuantity", mock.Anything, int64(3), 4).Return(nil).Once()
		carts.On("DeleteOtherItems", mock.Anything, cart.ID, productID, int64(3)).Return(nil).Once()
		carts.On("ListItems", mock.Anything, cart.ID).Return([]models.CartItem{
			{ID: 3, ProductID: productID, Quantity: 4, TotalPrice: 40},
		}, nil).Once()

		got, err := svc.UpdateQuantity(t.Context(), userID, &models.UpdateQuantityRequest{ProductID: productID, Quantity: 4})

		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.InDelta(t, 40.0, got.Total, 0.001)
	})

	t.Run("Failure - More Than Stock", func(t *testing.T) {
		svc, carts, products := setupCartService(t)
		product := &models.Product{ID: productID, Name: "Mug", Price: 10, StockQuantity: 4, Status: models.ProductStatusActive}

		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, productID).Return(&models.CartItem{ID: 3, Quantity: 2}, nil).Once()
		products.On("GetProductByID", mock.Anything, productID).Return(product, nil).Once()

		_, err := svc.UpdateQuantity(t.Context(), userID, &models.UpdateQuantityRequest{ProductID: productID, Quantity: 5})

		assertAppError(t, err, appErrors.ErrCodeInsufficientStock)
	})

	t.Run("Failure - Line Missing", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)

		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("FindItemByProduct", mock.Anything, cart.ID, productID).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.UpdateQuantity(t.Context(), userID, &models.UpdateQuantityRequest{ProductID: productID, Quantity: 2})

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCartService_RemoveAndClear(t *testing.T) {
	userID := uuid.New()
	cart := &models.Cart{ID: uuid.New(), UserID: userID}
	productID := uuid.New()

	t.Run("Remove - Not In Cart", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)

		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("DeleteItemsByProduct", mock.Anything, cart.ID, productID).Return(int64(0), nil).Once()

		_, err := svc.RemoveItem(t.Context(), userID, productID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Clear - No Cart Is A No-op", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)
		carts.On("GetCartByUserID", mock.Anything, userID).Return(nil, repository.ErrNotFound).Once()

		require.NoError(t, svc.ClearCart(t.Context(), userID))
	})

	t.Run("Clear - Database Error", func(t *testing.T) {
		svc, carts, _ := setupCartService(t)
		carts.On("GetCartByUserID", mock.Anything, userID).Return(cart, nil).Once()
		carts.On("ClearCart", mock.Anything, cart.ID).Return(errors.New("db down")).Once()

		err := svc.ClearCart(t.Context(), userID)

		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}
