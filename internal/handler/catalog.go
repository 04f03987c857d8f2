package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlinedrinkshop/backend/internal/shop"
)

// CatalogHandler exposes the read-only browse endpoints. The catalog is
// public: guests can browse drinks before registering, the same way the
// original home and search screens worked.
type CatalogHandler struct {
	Shop *shop.Shop
}

func NewCatalogHandler(s *shop.Shop) *CatalogHandler {
	return &CatalogHandler{Shop: s}
}

// GetCategories handles GET /v1/categories.
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Shop.Catalog().Categories())
}

// GetDrinksByCategory handles GET /v1/categories/:id/drinks. An unknown
// category yields an empty list, not a 404; absent catalog results are
// never failures.
func (h *CatalogHandler) GetDrinksByCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}
	return c.JSON(http.StatusOK, h.Shop.DrinksByCategory(id))
}

// GetDrink handles GET /v1/drinks/:id.
func (h *CatalogHandler) GetDrink(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid drink id"})
	}
	d, found := h.Shop.Catalog().FindDrinkByID(id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "drink not found"})
	}
	return c.JSON(http.StatusOK, d)
}

// GetPopularDrinks handles GET /v1/drinks/popular.
func (h *CatalogHandler) GetPopularDrinks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Shop.Catalog().Popular())
}

// GetToppings handles GET /v1/toppings.
func (h *CatalogHandler) GetToppings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Shop.Catalog().Toppings())
}

// SearchDrinks handles GET /v1/search/drinks?q=. An empty query matches
// every drink.
func (h *CatalogHandler) SearchDrinks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Shop.SearchDrinks(c.QueryParam("q")))
}
