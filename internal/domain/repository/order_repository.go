package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status     entity.OrderStatus // Empty means all statuses.
	UserID     string             // Empty means all buyers.
	Pagination entity.Pagination
}

// OrderRepository persists orders together with their lines.
type OrderRepository interface {
	// Create inserts the order and all of its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDFromPrimary retrieves an order with its lines from the primary, so changes
	// committed just before the call are visible.
	FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order with its lines and locks the order row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Update writes the mutable order fields. Lines are immutable and never rewritten.
	Update(ctx context.Context, order *entity.Order) error

	// List returns one page of orders, newest first, and the total count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)
}
