package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             string          `gorm:"type:varchar(128);not null;index"`
	DeliveryAddressID  uuid.UUID       `gorm:"type:uuid;not null"`
	PONumber           string          `gorm:"column:po_number;type:varchar(32)"`
	OrderDate          time.Time       `gorm:"not null"`
	DeliveryDate       *time.Time      `gorm:"type:date"`
	DeliveryTime       string          `gorm:"type:varchar(5)"`
	Discount           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax                decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ShippingFee        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_orders_total_non_negative,total_price >= 0"`
	Notes              string          `gorm:"type:text"`
	AttachmentURL      string          `gorm:"type:text"`
	Status             string          `gorm:"type:varchar(32);not null;index"`
	Rating             *int            `gorm:"check:chk_orders_rating_range,rating BETWEEN 1 AND 5"`
	PaymentMethod      string          `gorm:"type:varchar(16);not null"`
	DeliveryPICName    string          `gorm:"column:delivery_pic_name;type:varchar(100)"`
	DeliveryStreet     string          `gorm:"type:text"`
	DeliveryWard       string          `gorm:"type:varchar(100)"`
	DeliveryCity       string          `gorm:"type:varchar(100)"`
	DeliveryProvince   string          `gorm:"type:varchar(100)"`
	DeliveryPostalCode string          `gorm:"type:varchar(10)"`
	BillingCompanyName string          `gorm:"type:varchar(255)"`
	BillingPhoneNumber string          `gorm:"type:varchar(32)"`
	BillingTaxID       string          `gorm:"column:billing_npwp;type:varchar(32)"`
	CancelledAt        *time.Time
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_details' table.
type OrderLineModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName  string          `gorm:"type:varchar(150);not null"`
	Quantity     int             `gorm:"not null;check:chk_order_details_quantity_positive,quantity > 0"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	// Product is only declared for the foreign key; it is never loaded or saved.
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_details"
}
