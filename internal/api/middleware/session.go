package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/metrics"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// Context keys set by the middleware in this package.
const (
	CtxAuthorization = "authorization"
	CtxToken         = "token"
	CtxCartSession   = "cart_session"
)

// CartCookieName is the cookie carrying the anonymous cart session id.
const CartCookieName = "cart_session"

// Session resolves the bearer credential on every request and injects the
// resulting Authorization into context. It never rejects: an absent or
// malformed credential simply resolves to an unauthenticated (or
// non-admin) state, and handlers that need stronger guarantees layer
// Authenticated or AdminOnly on top.
func Session(resolver ports.AuthzService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			authz := resolver.Resolve(token)

			c.Set(CtxToken, token)
			c.Set(CtxAuthorization, authz)
			metrics.SessionResolutionsTotal.WithLabelValues(resolutionResult(authz)).Inc()

			return next(c)
		}
	}
}

// CartSession guarantees every request carries a cart session id, minting a
// fresh uuid cookie for first-time visitors.
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(CartCookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CartCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(30 * 24 * time.Hour),
				})
			}

			c.Set(CtxCartSession, sessionID)
			return next(c)
		}
	}
}

// Authenticated rejects requests whose credential did not resolve to an
// authenticated session.
func Authenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz, _ := c.Get(CtxAuthorization).(domain.Authorization)
			if !authz.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// AdminOnly gates admin routes: 401 without a credential, 403 for a
// credential whose role claims do not grant admin.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz, _ := c.Get(CtxAuthorization).(domain.Authorization)
			if !authz.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !authz.Admin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
// Anything else, including a bare or differently-schemed header, reads as no
// credential.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func resolutionResult(a domain.Authorization) string {
	switch {
	case a.Err != nil:
		return "malformed"
	case a.Admin:
		return "admin"
	case a.Authenticated:
		return "user"
	default:
		return "anonymous"
	}
}
