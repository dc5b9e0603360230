package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. The stock check constraint backs the
// conditional decrement used for reservations.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string                      `gorm:"type:varchar(150);uniqueIndex;not null"`
	Category    string                      `gorm:"type:varchar(16);not null;index"`
	Description string                      `gorm:"type:text"`
	Price       decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	Unit        string                      `gorm:"type:varchar(20);not null"`
	Stock       int                         `gorm:"not null;default:0;check:chk_products_stock_non_negative,stock >= 0"`
	Deactivated bool                        `gorm:"not null;default:false"`
	Status      string                      `gorm:"type:varchar(16);not null;index"`
	ImageURLs   datatypes.JSONSlice[string] `gorm:"column:image_urls;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
