package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"
)

// ErrAddressNotFound is returned when a user has no address of the requested type.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository stores the current billing and delivery address of each user.
type AddressRepository interface {
	// FindLatest returns the most recently updated address of the given type.
	FindLatest(ctx context.Context, userID string, addrType entity.AddressType) (*entity.Address, error)

	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// Update overwrites an existing address.
	Update(ctx context.Context, address *entity.Address) error
}
