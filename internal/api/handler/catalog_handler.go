package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/metrics"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

const homeFeaturedCount = 8

// CatalogHandler serves the storefront read surface. Catalog reads never
// fail: backend trouble degrades to the sample dataset and the response says
// so via the fallback flag.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Home returns the landing-page selection.
//
// @Summary      Landing page products
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       /api/storefront/home [get]
func (h *CatalogHandler) Home(c echo.Context) error {
	featured, fallback := h.catalog.Featured(c.Request().Context(), homeFeaturedCount)
	if fallback {
		metrics.CatalogFallbackTotal.WithLabelValues("home").Inc()
	}
	return c.JSON(http.StatusOK, homeResponse{Featured: featured, Fallback: fallback})
}

// Products returns the filtered, sorted catalog.
//
// @Summary      Browse products
// @Tags         storefront
// @Produce      json
// @Param        search        query     string  false  "Search over name, description, brand"
// @Param        category      query     int     false  "Category id"
// @Param        categoryName  query     string  false  "Category name, used for sample-data scoping"
// @Param        brand         query     string  false  "Exact brand match"
// @Param        color         query     string  false  "Exact color match"
// @Param        size          query     string  false  "Exact size match"
// @Param        minPrice      query     number  false  "Minimum price, inclusive"
// @Param        maxPrice      query     number  false  "Maximum price, inclusive"
// @Param        sort          query     string  false  "price-low, price-high, or latest"
// @Success      200           {object}  catalogResponse
// @Router       /api/storefront/products [get]
func (h *CatalogHandler) Products(c echo.Context) error {
	catalog := h.catalog.Load(c.Request().Context(), parseCatalogQuery(c))
	if catalog.Fallback {
		metrics.CatalogFallbackTotal.WithLabelValues("products").Inc()
	}

	return c.JSON(http.StatusOK, catalogResponse{
		Products:   h.catalog.ApplyFilters(catalog.Products, parseFilterState(c)),
		Categories: catalog.Categories,
		Fallback:   catalog.Fallback,
	})
}

// Product returns one product by id, from live data or the sample dataset.
//
// @Summary      Product detail
// @Tags         storefront
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/storefront/products/{id} [get]
func (h *CatalogHandler) Product(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalog.ProductByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Categories returns the category list for navigation.
//
// @Summary      Category list
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/storefront/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	catalog := h.catalog.Load(c.Request().Context(), domain.CatalogQuery{})
	return c.JSON(http.StatusOK, categoriesResponse{Categories: catalog.Categories})
}
