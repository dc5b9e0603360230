package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new catalog item.
type CreateProductInput struct {
	Name        string
	Category    entity.ProductCategory
	Description string
	Price       decimal.Decimal
	Unit        string
	Stock       int
	Images      []FileUpload
}

// UpdateProductInput is a partial product update. Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Category    *entity.ProductCategory
	Description *string
	Price       *decimal.Decimal
	Unit        *string
	Stock       *int

	// KeepImageURLs is the retained subset of the current images; nil keeps all of them.
	KeepImageURLs []string
	NewImages     []FileUpload
}

// ListProductsInput filters a product listing.
type ListProductsInput struct {
	Category entity.ProductCategory
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Data    []*entity.Product
	Page    int
	MaxPage int
	Total   int64
}

// CatalogUsecase defines catalog administration and browsing.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	SetProductStock(ctx context.Context, productID uuid.UUID, stock int) (*entity.Product, error)
	SetProductActive(ctx context.Context, productID uuid.UUID, active bool) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// GetProduct hides deactivated and out-of-stock products from non-admin actors.
	GetProduct(ctx context.Context, actor Actor, productID uuid.UUID) (*entity.Product, error)

	// ListProducts hides deactivated and out-of-stock products from non-admin actors.
	ListProducts(ctx context.Context, actor Actor, input ListProductsInput) (*ProductPage, error)
}
