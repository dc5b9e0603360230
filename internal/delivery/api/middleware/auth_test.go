package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenSvc
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/users/buyer-1", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// captureActor is a terminal handler recording the actor it saw.
func captureActor(seen *usecase.Actor, called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		*seen, _ = GetActor(c)

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token stores the actor", func(t *testing.T) {
		m, tokenSvc := newTestAuthMiddleware(t)
		c, rec := newAuthContext("Bearer good-token")

		tokenSvc.EXPECT().
			ValidateAccessToken("good-token").
			Return(&service.Claims{UserID: "admin-1", Role: entity.RoleAdmin}, nil).
			Once()

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.Authenticate(captureActor(&seen, &called))(c))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, usecase.Actor{UserID: "admin-1", Role: entity.RoleAdmin}, seen)
	})

	t.Run("unknown role falls back to customer", func(t *testing.T) {
		m, tokenSvc := newTestAuthMiddleware(t)
		c, _ := newAuthContext("Bearer good-token")

		tokenSvc.EXPECT().
			ValidateAccessToken("good-token").
			Return(&service.Claims{UserID: "buyer-1", Role: entity.Role("SUPERUSER")}, nil).
			Once()

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.Authenticate(captureActor(&seen, &called))(c))
		assert.Equal(t, entity.RoleCustomer, seen.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)
		c, rec := newAuthContext("")

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.Authenticate(captureActor(&seen, &called))(c))
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)
		c, rec := newAuthContext("Basic dXNlcjpwYXNz")

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.Authenticate(captureActor(&seen, &called))(c))
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		m, tokenSvc := newTestAuthMiddleware(t)
		c, rec := newAuthContext("Bearer expired")

		tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired")).Once()

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.Authenticate(captureActor(&seen, &called))(c))
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous request passes", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)
		c, rec := newAuthContext("")

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.OptionalAuthenticate(captureActor(&seen, &called))(c))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, usecase.Actor{}, seen)
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		m, tokenSvc := newTestAuthMiddleware(t)
		c, rec := newAuthContext("Bearer forged")

		tokenSvc.EXPECT().ValidateAccessToken("forged").Return(nil, errors.New("signature is invalid")).Once()

		var seen usecase.Actor
		var called bool
		require.NoError(t, m.OptionalAuthenticate(captureActor(&seen, &called))(c))
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		actor      *usecase.Actor
		wantStatus int
	}{
		{name: "admin allowed", actor: &usecase.Actor{UserID: "admin-1", Role: entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "customer forbidden", actor: &usecase.Actor{UserID: "buyer-1", Role: entity.RoleCustomer}, wantStatus: http.StatusForbidden},
		{name: "no actor", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAuthMiddleware(t)
			c, rec := newAuthContext("")
			if tt.actor != nil {
				SetActor(c, *tt.actor)
			}

			var seen usecase.Actor
			var called bool
			require.NoError(t, m.RequireRole(entity.RoleAdmin)(captureActor(&seen, &called))(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}

func TestAuthMiddleware_RequireSelf(t *testing.T) {
	tests := []struct {
		name       string
		actor      usecase.Actor
		wantStatus int
	}{
		{name: "owner allowed", actor: usecase.Actor{UserID: "buyer-1", Role: entity.RoleCustomer}, wantStatus: http.StatusOK},
		{name: "admin allowed", actor: usecase.Actor{UserID: "admin-1", Role: entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "other buyer forbidden", actor: usecase.Actor{UserID: "buyer-2", Role: entity.RoleCustomer}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAuthMiddleware(t)
			c, rec := newAuthContext("")
			c.SetParamNames("userId")
			c.SetParamValues("buyer-1")
			SetActor(c, tt.actor)

			var seen usecase.Actor
			var called bool
			require.NoError(t, m.RequireSelf("userId")(captureActor(&seen, &called))(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
