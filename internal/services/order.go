package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"math"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/aaravmahajanofficial/storefront/internal/services")

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, userID, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	CancelOrder(ctx context.Context, userID, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	addressRepo   repository.AddressRepository
	userRepo      repository.UserRepository
	tx            repository.Transactor
	cache         cache.Cache
	notifications NotificationService
	checkout      config.Checkout
}

func NewOrderService(repos *repository.Repositories, cache cache.Cache, notifications NotificationService, checkout config.Checkout) OrderService {
	return &orderService{
		orderRepo:     repos.Order,
		productRepo:   repos.Product,
		addressRepo:   repos.Address,
		userRepo:      repos.User,
		tx:            repos.Transactor,
		cache:         cache,
		notifications: notifications,
		checkout:      checkout,
	}
}

func (s *orderService) deliveryFee(method models.DeliveryMethod) float64 {
	if method == models.DeliveryMethodExpress {
		return s.checkout.ExpressDeliveryFee
	}

	return s.checkout.StandardDeliveryFee
}

// CreateOrder places an order for userID. Product names and prices are taken
// from the catalog, the total is recomputed and checked against the total the
// client showed, and then the order, its lines, the stock decrements and the
// cart reconciliation are written in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	logger := middleware.LoggerFromContext(ctx)

	address, err := s.addressRepo.GetAddressByID(ctx, req.AddressID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Address not found")
		}

		return nil, errors.DatabaseError("Failed to fetch address").WithError(err)
	}

	if address.UserID != userID {
		return nil, errors.NotFoundError("Address not found")
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		AddressID:       address.ID,
		ShippingAddress: models.NewShippingAddress(address),
		Status:          models.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryFee:     s.deliveryFee(req.DeliveryMethod),
	}

	subtotal := 0.0

	for _, line := range req.Items {
		product, err := s.productRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if stderrors.Is(err, repository.ErrNotFound) {
				return nil, errors.NotFoundError("Product not found: " + line.ProductID.String())
			}

			return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
		}

		if !product.IsPurchasable() {
			return nil, errors.BadRequestError("Product is not available: " + product.Name)
		}

		if product.StockQuantity < line.Quantity {
			return nil, errors.InsufficientStockError("Insufficient stock for product: " + product.Name)
		}

		order.Items = append(order.Items, models.OrderItem{
			ID:          uuid.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
		})

		subtotal += product.Price * float64(line.Quantity)
	}

	order.TotalAmount = math.Round((subtotal+order.DeliveryFee)*100) / 100

	if math.Abs(order.TotalAmount-req.Total) > s.checkout.TotalTolerance {
		logger.Warn("Order total mismatch", slog.Float64("clientTotal", req.Total), slog.Float64("serverTotal", order.TotalAmount))

		return nil, errors.ValidationError("Order total does not match current prices").
			WithDetail("expected total " + formatAmount(order.TotalAmount))
	}

	var plan ReconciliationPlan

	err = s.tx.WithinTx(ctx, func(ctx context.Context, repos *repository.TxRepositories) error {
		if err := repos.Order.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := repos.Product.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		cartItems, err := repos.Cart.LockItemsByUser(ctx, userID)
		if err != nil {
			return err
		}

		plan = PlanCartReconciliation(order.Items, cartItems)

		for _, change := range plan.Changes {
			if change.Deleted() {
				err = repos.Cart.DeleteItem(ctx, change.ItemID)
			} else {
				err = repos.Cart.UpdateItemQuantity(ctx, change.ItemID, change.Quantity)
			}

			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order placement failed")

		if stderrors.Is(err, repository.ErrInsufficientStock) {
			return nil, errors.InsufficientStockError("Insufficient stock to fulfil the order").WithError(err)
		}

		logger.Error("Order placement rolled back", slog.String("orderId", order.ID.String()), slog.Any("error", err))

		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	span.SetAttributes(
		attribute.String("order.id", order.ID.String()),
		attribute.Int("order.lines", len(order.Items)),
		attribute.Int("cart.lines_changed", len(plan.Changes)),
	)

	s.afterPlacement(ctx, order, plan)

	return order, nil
}

// afterPlacement runs the side effects of a committed order. None of them
// can fail the request.
func (s *orderService) afterPlacement(ctx context.Context, order *models.Order, plan ReconciliationPlan) {
	logger := middleware.LoggerFromContext(ctx)

	metrics.OrdersPlaced.WithLabelValues(string(order.PaymentMethod)).Inc()

	for _, change := range plan.Changes {
		action := "updated"
		if change.Deleted() {
			action = "deleted"
		}

		metrics.CartLinesReconciled.WithLabelValues(action).Inc()
	}

	if plan.Shortfall > 0 {
		metrics.ReconciliationShortfall.Add(float64(plan.Shortfall))
		logger.Info("Order exceeded cart contents", slog.String("orderId", order.ID.String()), slog.Int("units", plan.Shortfall))
	}

	s.invalidateProducts(ctx, order.Items)

	user, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("Skipping order confirmation email", slog.String("orderId", order.ID.String()), slog.Any("error", err))
		return
	}

	if err := s.notifications.SendOrderConfirmation(ctx, user, order); err != nil {
		logger.Warn("Failed to send order confirmation", slog.String("orderId", order.ID.String()), slog.Any("error", err))
	}
}

func (s *orderService) getOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Order not found")
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

// GetOrderByID hides orders of other users behind a not found error.
func (s *orderService) GetOrderByID(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {
	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) CancelOrder(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	order, err := s.GetOrderByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, errors.ConflictError("Only pending orders can be cancelled")
	}

	if err := s.cancel(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// cancel marks the order cancelled and returns its units to stock in one
// transaction. Paid orders have to be refunded first.
func (s *orderService) cancel(ctx context.Context, order *models.Order) error {
	if order.PaymentStatus == models.PaymentStatusPaid {
		return errors.ConflictError("Paid orders must be refunded before they can be cancelled")
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos *repository.TxRepositories) error {
		if err := repos.Order.UpdateOrderStatus(ctx, order.ID, order.Status, models.OrderStatusCancelled); err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := repos.Product.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrStaleStatus) {
			return errors.ConflictError("Order status changed, please retry").WithError(err)
		}

		return errors.DatabaseError("Failed to cancel order").WithError(err)
	}

	order.Status = models.OrderStatusCancelled
	s.invalidateProducts(ctx, order.Items)

	return nil
}

func (s *orderService) invalidateProducts(ctx context.Context, items []models.OrderItem) {
	if len(items) == 0 {
		return
	}

	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, cache.Key(cache.ProductKeyPrefix, item.ProductID.String()))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate product cache", slog.Any("error", err))
	}
}

func (s *orderService) ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error) {
	orders, total, err := s.orderRepo.ListOrders(ctx, status, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

// UpdateOrderStatus moves an order along its lifecycle and emails the
// customer. The email is best effort.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, errors.ConflictError("Cannot change order status from " + string(order.Status) + " to " + string(status))
	}

	if status == models.OrderStatusCancelled {
		if err := s.cancel(ctx, order); err != nil {
			return nil, err
		}
	} else {
		if err := s.orderRepo.UpdateOrderStatus(ctx, id, order.Status, status); err != nil {
			if stderrors.Is(err, repository.ErrStaleStatus) {
				return nil, errors.ConflictError("Order status changed, please retry").WithError(err)
			}

			return nil, errors.DatabaseError("Failed to update order status").WithError(err)
		}

		order.Status = status
	}

	user, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("Skipping order status email", slog.String("orderId", id.String()), slog.Any("error", err))
		return order, nil
	}

	if err := s.notifications.SendOrderStatusUpdate(ctx, user, order); err != nil {
		logger.Warn("Failed to send order status email", slog.String("orderId", id.String()), slog.Any("error", err))
	}

	return order, nil
}
