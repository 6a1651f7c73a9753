package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

type catalogResponse struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
	Fallback   bool              `json:"fallback"`
}

type homeResponse struct {
	Featured []domain.Product `json:"featured"`
	Fallback bool             `json:"fallback"`
}

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// parseCatalogQuery reads the backend-facing selection: what to fetch.
func parseCatalogQuery(c echo.Context) domain.CatalogQuery {
	q := domain.CatalogQuery{
		Search:       c.QueryParam("search"),
		CategoryName: c.QueryParam("categoryName"),
	}
	if raw := c.QueryParam("category"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.CategoryID = id
		}
	}
	return q
}

// parseFilterState reads the in-memory refinement applied after loading.
// Malformed numeric bounds read as unset rather than failing the request.
func parseFilterState(c echo.Context) domain.FilterState {
	f := domain.FilterState{
		Brand:        c.QueryParam("brand"),
		Color:        c.QueryParam("color"),
		Size:         c.QueryParam("size"),
		CategoryName: c.QueryParam("categoryName"),
		Sort:         domain.SortOption(c.QueryParam("sort")),
	}
	if raw := c.QueryParam("category"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.CategoryID = id
		}
	}
	f.MinPrice = parsePriceBound(c.QueryParam("minPrice"))
	f.MaxPrice = parsePriceBound(c.QueryParam("maxPrice"))
	return f
}

func parsePriceBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
