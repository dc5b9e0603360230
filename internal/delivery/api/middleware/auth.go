package middleware

import (
	"log/slog"
	"strings"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const actorKey = "actor"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate requires a valid Bearer access token and stores the caller as the actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header must carry a Bearer token")
		}

		if !m.authenticate(c, token) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuthenticate stores the actor when a valid token is sent and lets anonymous
// requests through. An invalid token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		if !m.authenticate(c, token) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string) bool {
	claims, err := m.tokenSvc.ValidateAccessToken(token)
	if err != nil || claims.UserID == "" {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected access token", slog.Any("error", err))

		return false
	}

	c.Set(actorKey, usecase.Actor{UserID: claims.UserID, Role: entity.RoleOrCustomer(claims.Role)})
	deliverycontext.EnrichLogger(c, slog.String("user_id", claims.UserID))

	return true
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)

	return token, found && token != ""
}

// RequireRole is a middleware factory that checks the actor's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// RequireSelf lets the request through when the path parameter param names the actor,
// or the actor is an admin.
func (m *AuthMiddleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if !actor.CanAccess(c.Param(param)) {
				return response.Forbidden(c, "FORBIDDEN", "You do not have permission to perform this action")
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated caller.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(usecase.Actor)

	return actor, ok
}

// ActorOrAnonymous returns the authenticated caller or the zero Actor, which is treated as
// a buyer without an id.
func ActorOrAnonymous(c echo.Context) usecase.Actor {
	actor, _ := GetActor(c)

	return actor
}

// SetActor stores actor on c. Handler tests use it in place of a token.
func SetActor(c echo.Context, actor usecase.Actor) {
	c.Set(actorKey, actor)
}
