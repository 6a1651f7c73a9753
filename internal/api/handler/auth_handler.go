package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/middleware"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// AuthHandler proxies login and registration to the commerce backend and
// reports the gateway's view of the current session.
type AuthHandler struct {
	gateway  ports.CommerceGateway
	resolver ports.AuthzService
}

func NewAuthHandler(gateway ports.CommerceGateway, resolver ports.AuthzService) *AuthHandler {
	return &AuthHandler{gateway: gateway, resolver: resolver}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
	Admin         bool `json:"admin"`
	Malformed     bool `json:"malformed,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login forwards credentials to the backend and returns the issued token
// together with the authorization state the gateway derives from it.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.gateway.Login(c.Request().Context(), ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Session: toSessionResponse(h.resolver.Resolve(token)),
	})
}

// Register forwards a new account to the backend.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.gateway.Register(c.Request().Context(), ports.Registration{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "account created"})
}

// Logout expires the cart session cookie. The bearer credential lives with
// the caller, so dropping it client-side is what ends the authenticated
// session; the gateway only has the cart cookie to clean up.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CartCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Session reports the authorization state derived from the request's bearer
// credential. The storefront uses it to gate admin affordances.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(ctxAuthorization(c)))
}

func toSessionResponse(a domain.Authorization) sessionResponse {
	return sessionResponse{
		Authenticated: a.Authenticated,
		Admin:         a.Admin,
		Malformed:     a.Err != nil,
	}
}
