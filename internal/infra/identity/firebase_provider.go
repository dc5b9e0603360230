// Package identity adapts the Firebase Admin SDK to the domain's IdentityProvider.
package identity

import (
	"context"
	"strings"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

const defaultVerifyTimeout = 10 * time.Second

// authClient is the subset of *auth.Client the provider calls.
type authClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}

type firebaseProvider struct {
	client        authClient
	verifyTimeout time.Duration
}

// NewFirebaseProvider creates the Firebase Auth client. Credentials come from the configured
// service account file or, when empty, from Application Default Credentials.
func NewFirebaseProvider(ctx context.Context, cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return newFirebaseProvider(client, cfg.Firebase.VerifyTimeout), nil
}

func newFirebaseProvider(client authClient, verifyTimeout time.Duration) *firebaseProvider {
	if verifyTimeout <= 0 {
		verifyTimeout = defaultVerifyTimeout
	}

	return &firebaseProvider{client: client, verifyTimeout: verifyTimeout}
}

// VerifyToken checks the ID token signature, audience and expiry.
func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (*entity.IdentityClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrIdentityTokenInvalid.WithDetails("token is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, p.verifyTimeout)
	defer cancel()

	verified, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityTokenInvalid, err.Error())
	}

	claims := &entity.IdentityClaims{SubjectID: verified.UID}
	if email, ok := verified.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := verified.Claims["name"].(string); ok {
		claims.Name = name
	}
	if verifiedEmail, ok := verified.Claims["email_verified"].(bool); ok {
		claims.EmailVerified = verifiedEmail
	}

	return claims, nil
}

// CreateAccount registers an email/password account and returns its UID.
func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", domainerrors.ErrUserAlreadyExists
		}

		return "", errors.Wrap(err, "failed to create identity account")
	}

	return record.UID, nil
}

func (p *firebaseProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification link")
	}

	return link, nil
}
