package model

import (
	"time"
)

// UserModel mirrors the 'users' table. ID is the identity provider subject.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               string `gorm:"type:varchar(128);primaryKey"`
	Email            string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username         string `gorm:"type:varchar(100)"`
	Role             string `gorm:"type:varchar(16);not null;default:CUSTOMER"`
	CompanyName      string `gorm:"type:varchar(255)"`
	TaxID            string `gorm:"column:npwp;type:varchar(32)"`
	PhoneNumber      string `gorm:"type:varchar(32)"`
	IsVerified       bool   `gorm:"not null;default:false"`
	RefreshTokenHash string `gorm:"type:varchar(255)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
