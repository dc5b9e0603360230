package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel mirrors the 'invoices' table. order_id is unique so emission upserts.
type InvoiceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Number        string          `gorm:"type:varchar(40);uniqueIndex;not null"`
	OrderID       uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	UserID        string          `gorm:"type:varchar(128);not null;index"`
	InvoiceDate   time.Time       `gorm:"not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ShippingFee   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	PaymentStatus string          `gorm:"type:varchar(16);not null"`
	DocumentURL   string          `gorm:"type:text"`
	SentAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceJobModel mirrors the 'invoice_jobs' outbox table.
type InvoiceJobModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Status        string    `gorm:"type:varchar(16);not null;index:idx_invoice_jobs_due,priority:1"`
	Attempts      int       `gorm:"not null;default:0"`
	NextAttemptAt time.Time `gorm:"not null;index:idx_invoice_jobs_due,priority:2"`
	DispatchedAt  *time.Time
	CompletedAt   *time.Time
	LastError     string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceJobModel) TableName() string {
	return "invoice_jobs"
}
