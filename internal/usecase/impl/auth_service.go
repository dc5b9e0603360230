package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"go.uber.org/fx"
)

const minPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	identity     service.IdentityProvider
	tokenService service.TokenService
	hasher       service.TokenHasher
	mailer       service.Mailer
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Identity     service.IdentityProvider
	TokenService service.TokenService
	Hasher       service.TokenHasher
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		identity:     params.Identity,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		mailer:       params.Mailer,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the provider account and the local CUSTOMER record, then mails the
// verification link. A mail failure does not fail the registration.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)
	if err := validateRegistration(email, input.Password, username); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, databaseError(err, "find user by email")
	}

	uid, err := srv.identity.CreateAccount(ctx, email, input.Password, username)
	if err != nil {
		srv.log(ctx).Warn("Identity account creation failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	now := srv.now()
	user := &entity.User{
		ID:        uid,
		Email:     email,
		Username:  username,
		Role:      entity.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	if err := srv.sendVerification(ctx, user); err != nil {
		srv.log(ctx).Warn("Verification email not sent", slog.String("userID", user.ID), slog.Any("error", err))
	}
	srv.log(ctx).Info("User registered", slog.String("userID", user.ID))

	return user, nil
}

func validateRegistration(email, password, username string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return validationError("email is not a valid address")
	}
	if len(password) < minPasswordLength {
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if username == "" {
		return validationError("username is required")
	}

	return nil
}

func (srv *authService) sendVerification(ctx context.Context, user *entity.User) error {
	link, err := srv.identity.EmailVerificationLink(ctx, user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to create verification link")
	}

	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Please confirm your email address by following <a href="%s">this link</a>.</p>`,
		html.EscapeString(user.Username), html.EscapeString(link),
	)
	err = srv.mailer.Send(ctx, &entity.MailMessage{
		To:       []string{user.Email},
		Subject:  "Verify your email address",
		HTMLBody: body,
	})

	return errors.Wrap(err, "failed to send verification email")
}

// LoginWithIdentityToken exchanges a provider ID token for our own token pair. The local
// record is created on the first login of an account registered elsewhere.
func (srv *authService) LoginWithIdentityToken(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.identity.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.SubjectID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.createFromClaims(ctx, claims)
	case err == nil:
		srv.syncVerified(ctx, user, claims.EmailVerified)
	}
	if err != nil {
		return nil, mapUserError(err, "find user")
	}

	out, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return out, nil
}

func (srv *authService) createFromClaims(ctx context.Context, claims *entity.IdentityClaims) (*entity.User, error) {
	username := strings.TrimSpace(claims.Name)
	if username == "" {
		username, _, _ = strings.Cut(claims.Email, "@")
	}

	now := srv.now()
	user := &entity.User{
		ID:         claims.SubjectID,
		Email:      strings.ToLower(claims.Email),
		Username:   username,
		Role:       entity.RoleCustomer,
		IsVerified: claims.EmailVerified,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user on first login")
	}
	srv.log(ctx).Info("User created on first login", slog.String("userID", user.ID))

	return user, nil
}

// syncVerified copies the provider's verification flag onto the local record. A failed
// write is retried on the next login.
func (srv *authService) syncVerified(ctx context.Context, user *entity.User, verified bool) {
	if user.IsVerified == verified {
		return
	}

	if err := srv.userRepo.UpdateVerified(ctx, user.ID, verified); err != nil {
		srv.log(ctx).Warn("Failed to sync email verification", slog.String("userID", user.ID), slog.Any("error", err))

		return
	}
	user.IsVerified = verified
}

// Refresh rotates the token pair. Only the most recently issued refresh token is accepted.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, databaseError(err, "find user")
	}

	if !srv.hasher.Check(refreshToken, user.RefreshTokenHash) {
		srv.log(ctx).Warn("Refresh token does not match the active session", slog.String("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return srv.issueTokens(ctx, user)
}

// Logout clears the stored refresh token hash so no refresh token of the user is accepted.
func (srv *authService) Logout(ctx context.Context, userID string) error {
	if err := srv.userRepo.UpdateRefreshTokenHash(ctx, userID, ""); err != nil {
		return mapUserError(err, "clear refresh token")
	}
	srv.log(ctx).Info("User logged out", slog.String("userID", userID))

	return nil
}

// GetProfile returns the caller's local record.
func (srv *authService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, "find user")
	}

	return user, nil
}

// ResendVerification mails a fresh verification link. The flag is refreshed from the
// provider at the next login, so a user who verified since then may still get a link.
func (srv *authService) ResendVerification(ctx context.Context, userID string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return mapUserError(err, "find user")
	}
	if user.IsVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}

	if err := srv.sendVerification(ctx, user); err != nil {
		srv.log(ctx).Error("Verification email not sent", slog.String("userID", user.ID), slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Verification email resent", slog.String("userID", user.ID))

	return nil
}

// ListUsers returns one page of accounts, optionally narrowed to a role or a search term.
func (srv *authService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.UserPage, error) {
	role := entity.Role(strings.ToUpper(strings.TrimSpace(string(input.Role))))
	if role != "" && !role.IsValid() {
		return nil, validationError("unknown role " + string(input.Role))
	}

	page := entity.Pagination{Page: input.Page, Limit: input.Limit}.Normalize()
	users, total, err := srv.userRepo.List(ctx, repository.UserFilter{
		Role:       role,
		Search:     strings.TrimSpace(input.Search),
		Pagination: page,
	})
	if err != nil {
		return nil, databaseError(err, "list users")
	}

	return &usecase.UserPage{
		Data:    users,
		Page:    page.Page,
		MaxPage: page.MaxPage(total),
		Total:   total,
	}, nil
}

func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	hash, err := srv.hasher.Hash(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash refresh token")
	}
	if err := srv.userRepo.UpdateRefreshTokenHash(ctx, user.ID, hash); err != nil {
		return nil, mapUserError(err, "store refresh token")
	}
	user.RefreshTokenHash = hash

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
