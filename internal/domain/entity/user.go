// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the local record of an account managed by the identity provider.
// Its ID is the provider's subject identifier.
type User struct {
	ID               string    // Identity provider subject (UID).
	Email            string    // Primary contact email, also the invoice recipient.
	Username         string    // Display name, used as fallback point-of-contact name.
	Role             Role      // CUSTOMER or ADMIN.
	CompanyName      string    // Billing company name, snapshotted onto orders.
	TaxID            string    // Tax registration number (NPWP), snapshotted onto orders.
	PhoneNumber      string    // Billing phone number, snapshotted onto orders.
	IsVerified       bool      // Whether the identity provider verified the email.
	RefreshTokenHash string    // bcrypt hash of the current refresh token digest; empty when logged out.
	CreatedAt        time.Time // Timestamp of when this user record was created.
	UpdatedAt        time.Time // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user administers the catalog and orders.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// BillingProfile is the optional company metadata a buyer can update while ordering.
type BillingProfile struct {
	CompanyName string
	TaxID       string
	PhoneNumber string
}

// IsEmpty reports whether no field was supplied.
func (p BillingProfile) IsEmpty() bool {
	return p.CompanyName == "" && p.TaxID == "" && p.PhoneNumber == ""
}

// IdentityClaims is the verified subject returned by the identity provider.
type IdentityClaims struct {
	SubjectID     string
	Email         string
	Name          string
	EmailVerified bool
}
