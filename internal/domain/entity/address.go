// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddressType distinguishes billing from delivery addresses.
type AddressType string

const (
	AddressTypeBilling  AddressType = "BILLING"
	AddressTypeDelivery AddressType = "DELIVERY"
)

// String returns the string representation of the AddressType.
func (t AddressType) String() string {
	return string(t)
}

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	return t == AddressTypeBilling || t == AddressTypeDelivery
}

// Address is a user's current address of one type.
type Address struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	UserID     string      // Owner of the address.
	Type       AddressType // BILLING or DELIVERY.
	Street     string      // Street line.
	Ward       string      // Ward or sub-district (kelurahan), optional.
	City       string      // City or regency.
	Province   string      // Province.
	PostalCode string      // Postal code.
	PICName    string      // Point-of-contact name for the address.
	CreatedAt  time.Time   // Timestamp of when this address was created.
	UpdatedAt  time.Time   // Timestamp of the last modification.
}

// AddressFields are the caller-supplied components of an address.
type AddressFields struct {
	Street     string
	Ward       string
	City       string
	Province   string
	PostalCode string
	PICName    string
}

// MissingRequired returns the names of required components that are blank.
func (f AddressFields) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(f.Street) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(f.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(f.Province) == "" {
		missing = append(missing, "province")
	}
	if strings.TrimSpace(f.PostalCode) == "" {
		missing = append(missing, "postal_code")
	}

	return missing
}

// Apply copies the fields onto the address.
func (a *Address) Apply(f AddressFields) {
	a.Street = strings.TrimSpace(f.Street)
	a.Ward = strings.TrimSpace(f.Ward)
	a.City = strings.TrimSpace(f.City)
	a.Province = strings.TrimSpace(f.Province)
	a.PostalCode = strings.TrimSpace(f.PostalCode)
	if name := strings.TrimSpace(f.PICName); name != "" {
		a.PICName = name
	}
}
