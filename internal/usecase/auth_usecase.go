package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a buyer account.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// ListUsersInput filters the admin user listing.
type ListUsersInput struct {
	Role   entity.Role
	Search string
	Page   int
	Limit  int
}

// --- Output DTOs ---

// UserPage is one page of the admin user listing.
type UserPage struct {
	Data    []*entity.User
	Page    int
	MaxPage int
	Total   int64
}

// LoginOutput returns the generated tokens after a successful login or refresh.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines account registration and session handling.
type AuthUsecase interface {
	// Register creates the identity provider account and the local CUSTOMER record.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// LoginWithIdentityToken exchanges a provider ID token for a session.
	LoginWithIdentityToken(ctx context.Context, idToken string) (*LoginOutput, error)

	// Refresh rotates the session of a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout invalidates the user's refresh token.
	Logout(ctx context.Context, userID string) error

	// GetProfile returns the local record of the user.
	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// ResendVerification mails a new verification link to an unverified user.
	ResendVerification(ctx context.Context, userID string) error

	// ListUsers returns one page of accounts for administrators.
	ListUsers(ctx context.Context, input ListUsersInput) (*UserPage, error)
}
