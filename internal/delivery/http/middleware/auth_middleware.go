package middleware

import (
	"strings"

	"mentalk/config"
	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate resolves the request's identity from the access token cookie,
// falling back to a Bearer Authorization header. A missing, malformed or
// expired token never fails the request here: the request simply continues
// anonymously, and RequireAuth/RequireRole decide whether that is acceptable.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ParseClaims(tokenString)
		if err != nil {
			// Invalid token degrades to anonymous instead of rejecting,
			// so public routes keep working with stale cookies.
			return next(c)
		}

		deliverycontext.SetIdentity(c, claims.MemberID, claims.Role)

		return next(c)
	}
}

// RequireAuth rejects anonymous requests. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetMemberID(c); !ok {
			return domainerrors.ErrUnauthorized.WrapMessage("authentication required")
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the member has a specific
// role. An anonymous request gets 401; an authenticated member with a
// different role gets 403. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetRole(c)
			if !ok {
				return domainerrors.ErrUnauthorized.WrapMessage("authentication required")
			}

			if role != requiredRole {
				return domainerrors.ErrForbidden.WrapMessage("require '" + requiredRole.String() + "' role")
			}

			return next(c)
		}
	}
}

// extractToken prefers the access token cookie and falls back to the
// Authorization header for non-browser clients.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cfg.Cookie.Name); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}
