// Package middleware resolves the calling user for every API request.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/entities"
)

const (
	// UserHeader and UserCookie carry the caller's username.
	UserHeader = "X-Agri-User"
	UserCookie = "AGRI_USER"

	userIDKey   = "uid"
	usernameKey = "username"
)

// UserResolver finds or creates the account for a username.
type UserResolver interface {
	Resolve(ctx context.Context, username string) (*entities.User, error)
}

type IdentityConfig struct {
	// Strict rejects requests that carry no username with 401 instead of
	// falling back to DemoUsername.
	Strict       bool
	DemoUsername string
}

// Identity stores the resolved user's id and username in the echo context.
func Identity(users UserResolver, cfg IdentityConfig, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := RequestUsername(c)
			if name == "" {
				if cfg.Strict {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
				}
				name = cfg.DemoUsername
			}
			u, err := users.Resolve(c.Request().Context(), name)
			if err != nil {
				log.Error("resolve user", zap.String("username", name), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to resolve user"})
			}
			c.Set(userIDKey, u.ID)
			c.Set(usernameKey, u.Username)
			return next(c)
		}
	}
}

// RequestUsername returns the username from the header, else the cookie.
func RequestUsername(c echo.Context) string {
	if v := strings.TrimSpace(c.Request().Header.Get(UserHeader)); v != "" {
		return v
	}
	if ck, err := c.Cookie(UserCookie); err == nil {
		return strings.TrimSpace(ck.Value)
	}
	return ""
}

// UserID returns the id stored by Identity, or "" outside it.
func UserID(c echo.Context) string {
	uid, _ := c.Get(userIDKey).(string)
	return uid
}

// Username returns the username stored by Identity.
func Username(c echo.Context) string {
	name, _ := c.Get(usernameKey).(string)
	return name
}
