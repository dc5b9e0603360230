package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     string    `gorm:"type:varchar(128);not null;index:idx_addresses_on_user_type"`
	Type       string    `gorm:"type:varchar(16);not null;index:idx_addresses_on_user_type"`
	Street     string    `gorm:"type:text;not null"`
	Ward       string    `gorm:"type:varchar(100)"`
	City       string    `gorm:"type:varchar(100);not null"`
	Province   string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(10);not null"`
	PICName    string    `gorm:"column:pic_name;type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
