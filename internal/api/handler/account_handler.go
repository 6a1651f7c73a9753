package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/metrics"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// AccountHandler covers checkout and the customer account proxies. Every
// route runs behind the Authenticated middleware and forwards the caller's
// bearer token to the backend.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Checkout turns the session cart into a backend order.
//
// @Summary      Checkout
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/checkout [post]
func (h *AccountHandler) Checkout(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	order, err := h.accounts.Checkout(c.Request().Context(), token, sessionID)
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// Orders lists the caller's orders.
//
// @Summary      My orders
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /api/account/orders [get]
func (h *AccountHandler) Orders(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	orders, err := h.accounts.Orders(c.Request().Context(), token)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// Order returns one of the caller's orders by id.
//
// @Summary      Order detail
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/account/orders/{id} [get]
func (h *AccountHandler) Order(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.accounts.Order(c.Request().Context(), token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Profile returns the caller's customer profile.
//
// @Summary      My profile
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Router       /api/account/profile [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	profile, err := h.accounts.Profile(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the caller's customer profile.
//
// @Summary      Update my profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Profile  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/account/profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var profile domain.Profile
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.accounts.UpdateProfile(c.Request().Context(), token, profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// AddAddress adds a shipping address to the caller's account.
//
// @Summary      Add an address
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Address  true  "Address fields"
// @Success      201   {object}  domain.Address
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/account/addresses [post]
func (h *AccountHandler) AddAddress(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var address domain.Address
	if err := c.Bind(&address); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.accounts.AddAddress(c.Request().Context(), token, address)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
