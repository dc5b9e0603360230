// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"
)

// ErrUserNotFound is returned when a user is not found in the repository.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned when the id or email is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserFilter narrows an admin user listing.
type UserFilter struct {
	Role       entity.Role // Empty lists every role.
	Search     string      // Matched against email and username.
	Pagination entity.Pagination
}

// UserRepository defines the interface for local user records.
type UserRepository interface {
	// FindByID retrieves a user by identity provider subject.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user record.
	Create(ctx context.Context, user *entity.User) error

	// UpdateBillingProfile overwrites the non-empty fields of profile.
	UpdateBillingProfile(ctx context.Context, id string, profile entity.BillingProfile) error

	// UpdateVerified stores whether the identity provider reports the email as verified.
	UpdateVerified(ctx context.Context, id string, verified bool) error

	// List returns one page of users, oldest first, and the total count.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// UpdateRefreshTokenHash stores the hash of the active refresh token; empty clears it.
	UpdateRefreshTokenHash(ctx context.Context, id string, hash string) error
}
