package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	DeleteAddress(ctx context.Context, id, userID uuid.UUID) error
}

type addressRepository struct {
	DB DBTX
}

func NewAddressRepo(db DBTX) AddressRepository {
	return &addressRepository{DB: db}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (id, user_id, recipient_name, phone, street, city, state, postal_code, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, address.ID, address.UserID, address.RecipientName, address.Phone, address.Street,
		address.City, address.State, address.PostalCode, address.Country).Scan(&address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	return nil
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, recipient_name, phone, street, city, state, postal_code, country, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	a := &models.Address{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&a.ID, &a.UserID, &a.RecipientName, &a.Phone, &a.Street, &a.City, &a.State,
		&a.PostalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying address: %w", err)
	}

	return a, nil
}

func (r *addressRepository) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, recipient_name, phone, street, city, state, postal_code, country, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	addresses := []*models.Address{}

	for rows.Next() {
		a := &models.Address{}

		if err := rows.Scan(&a.ID, &a.UserID, &a.RecipientName, &a.Phone, &a.Street, &a.City, &a.State,
			&a.PostalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}

		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating addresses: %w", err)
	}

	return addresses, nil
}

// DeleteAddress only removes the address when it belongs to userID.
func (r *addressRepository) DeleteAddress(ctx context.Context, id, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM addresses WHERE id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return checkAffected(result)
}
