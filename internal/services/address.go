package service

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	DeleteAddress(ctx context.Context, userID, id uuid.UUID) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {
	address := &models.Address{
		ID:            uuid.New(),
		UserID:        userID,
		RecipientName: strings.TrimSpace(req.RecipientName),
		Phone:         req.Phone,
		Street:        strings.TrimSpace(req.Street),
		City:          strings.TrimSpace(req.City),
		State:         strings.TrimSpace(req.State),
		PostalCode:    strings.TrimSpace(req.PostalCode),
		Country:       strings.ToUpper(req.Country),
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	addresses, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	return addresses, nil
}

// DeleteAddress only removes addresses owned by userID. Orders keep their
// own copy of the address.
func (s *addressService) DeleteAddress(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.DeleteAddress(ctx, id, userID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Address not found")
		}

		return errors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}
