package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// AdminHandler proxies product writes to the backend with the caller's
// credential. The AdminOnly middleware gates every route; backend failures
// surface to the caller, unlike catalog reads.
type AdminHandler struct {
	gateway ports.CommerceGateway
}

func NewAdminHandler(gateway ports.CommerceGateway) *AdminHandler {
	return &AdminHandler{gateway: gateway}
}

type productRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	Brand       string  `json:"brand"       validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	IsActive    bool    `json:"isActive"`
}

// CreateProduct handles POST /api/admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.gateway.CreateProduct(c.Request().Context(), token, toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/:id.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.gateway.UpdateProduct(c.Request().Context(), token, id, toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/admin/products/:id.
//
// @Summary      Delete a product
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.gateway.DeleteProduct(c.Request().Context(), token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProductInput(r productRequest) ports.ProductInput {
	return ports.ProductInput{
		ProductName: r.ProductName,
		Brand:       r.Brand,
		Price:       r.Price,
		Color:       r.Color,
		Size:        r.Size,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}
