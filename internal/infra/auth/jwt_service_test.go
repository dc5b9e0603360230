package auth

import (
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       "uid-buyer-1",
		Email:    "buyer@example.com",
		Username: "buyer",
		Role:     entity.RoleCustomer,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	user := newTestUser()
	accessToken, refreshToken, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, entity.RoleCustomer, accessClaims.Role)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := newTestConfig()
	other.SecretKey.Access = "a_completely_different_access_secret"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	foreign, _, err := otherService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	accessToken, _, err := jwtSvc.GenerateTokens(newTestUser())
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_Secrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}
