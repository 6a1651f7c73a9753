package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/metrics"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// CartHandler exposes the session cart. Every route relies on the CartSession
// middleware for the session id.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addCartItemRequest struct {
	ProductID   int64   `json:"productId"   validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Brand       string  `json:"brand"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"       validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
	Quantity    int     `json:"quantity"    validate:"required,gt=0"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartTotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type cartResponse struct {
	Items     []domain.CartItem  `json:"items"`
	ItemCount int                `json:"itemCount"`
	Totals    cartTotalsResponse `json:"totals"`
}

// Get returns the current cart with computed totals.
//
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.Get(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// AddItem adds a product line, merging quantity when the product is already
// in the cart.
//
// @Summary      Add a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product line"
// @Success      201   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := h.carts.AddItem(c.Request().Context(), sessionID, ports.AddItemInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Color:       req.Color,
		Size:        req.Size,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, toCartResponse(cart))
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
//
// @Summary      Set line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Product id"
// @Param        body  body      updateQuantityRequest  true  "New quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cart, err := h.carts.UpdateQuantity(c.Request().Context(), sessionID, productID, req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// RemoveItem drops a line from the cart.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  cartResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := h.carts.RemoveItem(c.Request().Context(), sessionID, productID)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Clear empties the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	if err := h.carts.Clear(c.Request().Context(), sessionID); err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toCartResponse(cart *domain.Cart) cartResponse {
	totals := cart.Totals()
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Totals: cartTotalsResponse{
			Subtotal: totals.Subtotal,
			Shipping: totals.Shipping,
			Tax:      totals.Tax,
			Total:    totals.Total,
		},
	}
}
