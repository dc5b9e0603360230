package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// IdentityProvider is the external account system. Credentials never reach this service.
type IdentityProvider interface {
	// VerifyToken checks an ID token issued by the provider.
	VerifyToken(ctx context.Context, token string) (*entity.IdentityClaims, error)

	// CreateAccount registers a new email/password account and returns its subject id.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)

	// EmailVerificationLink returns a link the user follows to verify email.
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}
