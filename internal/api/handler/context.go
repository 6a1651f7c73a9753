package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/middleware"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// ctxAuthorization extracts the authorization state injected by the Session
// middleware. Absence of the key reads as an anonymous session.
func ctxAuthorization(c echo.Context) domain.Authorization {
	authz, _ := c.Get(middleware.CtxAuthorization).(domain.Authorization)
	return authz
}

// ctxToken returns the raw bearer credential for forwarding to the backend.
// Routes that proxy authenticated backend operations must have a token even
// when the Session middleware let the request through, so absence is a 401.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.CtxToken).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return token, nil
}

// ctxSessionID extracts the cart session id minted by the CartSession
// middleware. The middleware guarantees presence on cart routes; an empty id
// means the route is miswired, which surfaces as a 500.
func ctxSessionID(c echo.Context) (string, error) {
	sessionID, _ := c.Get(middleware.CtxCartSession).(string)
	if sessionID == "" {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "missing cart session")
	}
	return sessionID, nil
}
