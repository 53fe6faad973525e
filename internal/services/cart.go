package service

import (
	"context"
	stderrors "errors"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the cart with live product prices. A user who never added
// anything gets an empty cart.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return s.withItems(ctx, cart)
}

func (s *cartService) withItems(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	cart.Items = items
	cart.Total = 0

	for _, item := range items {
		cart.Total += item.TotalPrice
	}

	return cart, nil
}

func (s *cartService) purchasableProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found")
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !product.IsPurchasable() {
		return nil, errors.BadRequestError("Product is not available")
	}

	return product, nil
}

// AddItem creates the cart on first use and keeps one line per product by
// incrementing an existing line.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {
	product, err := s.purchasableProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	existing, err := s.cartRepo.FindItemByProduct(ctx, cart.ID, product.ID)
	if err != nil && !stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	quantity := req.Quantity
	if existing != nil {
		quantity += existing.Quantity
	}

	if quantity > product.StockQuantity {
		return nil, errors.InsufficientStockError("Insufficient stock for product: " + product.Name)
	}

	if existing != nil {
		err = s.cartRepo.UpdateItemQuantity(ctx, existing.ID, quantity)
	} else {
		err = s.cartRepo.AddItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: quantity})
	}

	if err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return s.withItems(ctx, cart)
}

func (s *cartService) cartOf(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Cart not found")
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return cart, nil
}

// UpdateQuantity sets the quantity of a product in the cart; zero removes it.
// The quantity replaces every line of the product, so duplicate lines are
// folded into the first one.
func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	cart, err := s.cartOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItemByProduct(ctx, cart.ID, req.ProductID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Item not found in cart")
		}

		return nil, errors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	if req.Quantity == 0 {
		if _, err := s.cartRepo.DeleteItemsByProduct(ctx, cart.ID, req.ProductID); err != nil {
			return nil, errors.DatabaseError("Failed to remove cart item").WithError(err)
		}

		return s.withItems(ctx, cart)
	}

	product, err := s.purchasableProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if req.Quantity > product.StockQuantity {
		return nil, errors.InsufficientStockError("Insufficient stock for product: " + product.Name)
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, req.Quantity); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	if err := s.cartRepo.DeleteOtherItems(ctx, cart.ID, req.ProductID, item.ID); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return s.withItems(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.cartRepo.DeleteItemsByProduct(ctx, cart.ID, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	if removed == 0 {
		return nil, errors.NotFoundError("Item not found in cart")
	}

	return s.withItems(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if err := s.cartRepo.ClearCart(ctx, cart.ID); err != nil {
		return errors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return nil
}
