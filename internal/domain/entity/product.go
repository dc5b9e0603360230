package entity

import (
	"time"

	"harvest/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory groups catalog items.
type ProductCategory string

const (
	ProductCategoryFruit     ProductCategory = "FRUIT"
	ProductCategoryVegetable ProductCategory = "VEGETABLE"
	ProductCategoryOther     ProductCategory = "OTHER"
)

// IsValid checks if the ProductCategory is a valid value.
func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategoryFruit, ProductCategoryVegetable, ProductCategoryOther:
		return true
	default:
		return false
	}
}

// ProductStatus is derived from stock and the deactivation flag, never set directly.
type ProductStatus string

const (
	ProductStatusAvailable   ProductStatus = "AVAILABLE"
	ProductStatusLowStock    ProductStatus = "LOW_STOCK"
	ProductStatusOutOfStock  ProductStatus = "OUT_OF_STOCK"
	ProductStatusDeactivated ProductStatus = "DEACTIVATED"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusLowStock, ProductStatusOutOfStock, ProductStatusDeactivated:
		return true
	default:
		return false
	}
}

// DeriveProductStatus maps stock and the deactivation flag to a status.
// Deactivation overrides stock; otherwise 0 is out of stock, 1 to 10 is low stock
// and anything above is available.
func DeriveProductStatus(stock int, deactivated bool) ProductStatus {
	switch {
	case deactivated:
		return ProductStatusDeactivated
	case stock <= 0:
		return ProductStatusOutOfStock
	case stock <= constants.LowStockThreshold:
		return ProductStatusLowStock
	default:
		return ProductStatusAvailable
	}
}

// Product is a catalog item that can be ordered.
type Product struct {
	ID          uuid.UUID
	Name        string
	Category    ProductCategory
	Description string
	Price       decimal.Decimal // Unit price.
	Unit        string          // Unit-of-measure label, e.g. "kg".
	Stock       int
	Deactivated bool
	Status      ProductStatus
	ImageURLs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RefreshStatus re-derives Status from Stock and Deactivated.
func (p *Product) RefreshStatus() {
	p.Status = DeriveProductStatus(p.Stock, p.Deactivated)
}

// IsOrderable reports whether buyers can reserve the product at all.
func (p *Product) IsOrderable() bool {
	return !p.Deactivated && p.Stock > 0
}
