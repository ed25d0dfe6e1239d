package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/errs"

	"github.com/labstack/echo/v4"
)

const sessionKey = "esep.session"

// Authenticator resolves a bearer token into an admin session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*admin.Session, error)
}

// RequireSession rejects requests without a valid bearer token and stores
// the resolved session on the echo context.
func RequireSession(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			s, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				if errors.Is(err, errs.ErrUnauthorized) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// RequirePermission allows the request when the session holds any of required.
func RequirePermission(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c)
			if s == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			}
			if !s.HasAny(required...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": admin.ErrMissingCapability.Error()})
			}
			return next(c)
		}
	}
}

// SessionFrom returns the session set by RequireSession, or nil.
func SessionFrom(c echo.Context) *admin.Session {
	s, _ := c.Get(sessionKey).(*admin.Session)
	return s
}

// WithSession stores s on c. Handler tests use it in place of RequireSession.
func WithSession(c echo.Context, s *admin.Session) { c.Set(sessionKey, s) }
