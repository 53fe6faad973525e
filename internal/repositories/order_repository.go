package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error
}

type orderRepository struct {
	DB DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, user_id, address_id, shipping_address, status, payment_method, payment_status, delivery_method, delivery_fee, total_amount, COALESCE(payment_intent_id, ''), created_at, updated_at`

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var address []byte

	err := row.Scan(&order.ID, &order.UserID, &order.AddressID, &address, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
		&order.DeliveryMethod, &order.DeliveryFee, &order.TotalAmount, &order.PaymentIntentID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	return order, nil
}

// CreateOrder inserts the order header followed by its lines.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, address_id, shipping_address, status, payment_method, payment_status, delivery_method, delivery_fee, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, order.ID, order.UserID, order.AddressID, address, order.Status, order.PaymentMethod,
		order.PaymentStatus, order.DeliveryMethod, order.DeliveryFee, order.TotalAmount).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		if _, err := r.DB.ExecContext(dbCtx, itemQuery, item.ID, order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}

		item.CreatedAt = order.CreatedAt
	}

	return nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		var item models.OrderItem

		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Items, err = r.listItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, countQuery, query string, args []any, page, size int) ([]models.Order, int, error) {
	var total int

	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	args = append(args, size, pageOffset(page, size))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := []models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	rows.Close()

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}

		orders[i].Items = items
	}

	return orders, total, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1`
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.queryOrders(dbCtx, countQuery, query, []any{userID}, page, size)
}

// ListOrders lists every order, optionally narrowed to one status.
func (r *orderRepository) ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if status == "" {
		countQuery := `SELECT COUNT(*) FROM orders`
		query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`

		return r.queryOrders(dbCtx, countQuery, query, nil, page, size)
	}

	countQuery := `SELECT COUNT(*) FROM orders WHERE status = $1`
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.queryOrders(dbCtx, countQuery, query, []any{status}, page, size)
}

// UpdateOrderStatus moves the order from one status to another. The update
// only applies while the row is still in status from; otherwise
// ErrStaleStatus is returned.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	result, err := r.DB.ExecContext(dbCtx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if err := checkAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrStaleStatus
		}

		return err
	}

	return nil
}

// UpdatePaymentStatus records the payment state and, when paymentIntentID is
// not empty, the Stripe intent attached to the order.
func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET payment_status = $1, payment_intent_id = COALESCE(NULLIF($2, ''), payment_intent_id), updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, paymentIntentID, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return checkAffected(result)
}
