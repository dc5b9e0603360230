package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductNameTaken is returned when the unique product name is already used.
	ErrProductNameTaken = errors.New("product name already exists")
)

// ProductSort selects the ordering of a product listing.
type ProductSort string

const (
	ProductSortName           ProductSort = "name"
	ProductSortPriceAsc       ProductSort = "price_asc"
	ProductSortPriceDesc      ProductSort = "price_desc"
	ProductSortNewest         ProductSort = "newest"
	ProductSortStatusPriority ProductSort = "status_priority"
)

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Category        entity.ProductCategory
	Search          string
	Sort            ProductSort
	IncludeInactive bool // When false, deactivated and out-of-stock products are hidden.
	Pagination      entity.Pagination
}

// StockShortage describes why a reservation could not be applied.
type StockShortage struct {
	ProductName string
	Requested   int
	Available   int
}

// InsufficientStockError is returned by ReserveStock when the product lacks stock.
type InsufficientStockError struct {
	StockShortage
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock for " + e.ProductName
}

// ErrProductDeactivated is returned by ReserveStock for deactivated products.
var ErrProductDeactivated = errors.New("product is deactivated")

// ProductRepository defines catalog persistence, including the atomic stock operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product from the primary and locks its row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName retrieves a product by its unique name (case-insensitive).
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// List returns one page of products and the total count matching filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// Update writes the catalog fields and the deactivation flag. Stock is never written;
	// the status is re-derived from the stored stock, and product.Stock and product.Status
	// are refreshed from the row.
	Update(ctx context.Context, product *entity.Product) error

	// SetStock overwrites the stock count and re-derives the status from the stored
	// deactivation flag.
	SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReserveStock decrements stock by quantity in a single conditional statement and
	// re-derives the status. It never drives stock below zero: when stock is short the
	// row is left untouched and an *InsufficientStockError is returned.
	ReserveStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error)

	// RestoreStock increments stock by quantity and re-derives the status.
	RestoreStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error)
}
