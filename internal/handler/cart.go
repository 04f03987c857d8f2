package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlinedrinkshop/backend/internal/model"
	"github.com/onlinedrinkshop/backend/internal/shop"
)

// CartHandler exposes the session cart. All routes assume the JWT and
// active-session middleware already ran.
type CartHandler struct {
	Shop *shop.Shop
}

func NewCartHandler(s *shop.Shop) *CartHandler {
	return &CartHandler{Shop: s}
}

type addItemReq struct {
	DrinkID    uint64   `json:"drink_id"`
	Sweetness  string   `json:"sweetness"`
	Ice        string   `json:"ice"`
	ToppingIDs []uint64 `json:"topping_ids"`
	Quantity   int      `json:"quantity"`
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

type cartResp struct {
	Items []model.CartItem `json:"items"`
	Total int              `json:"total"`
}

func (h *CartHandler) currentCart() cartResp {
	return cartResp{Items: h.Shop.CartItems(), Total: h.Shop.CartTotal()}
}

// Get handles GET /v1/cart.
func (h *CartHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.currentCart())
}

// AddItem handles POST /v1/cart/items. The drink and toppings are resolved
// against the catalog; the line stores them by value so later catalog
// changes cannot touch it. A missing quantity defaults to one, and an
// identical line is appended rather than merged.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	drink, found := h.Shop.Catalog().FindDrinkByID(req.DrinkID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "drink not found"})
	}
	sweetness, ok := model.ParseSweetness(req.Sweetness)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown sweetness level"})
	}
	ice, ok := model.ParseIce(req.Ice)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown ice level"})
	}
	// Resolve and deduplicate toppings; a customization holds each topping
	// at most once.
	seen := map[uint64]struct{}{}
	toppings := []model.Topping{}
	for _, id := range req.ToppingIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		t, found := h.Shop.Catalog().FindToppingByID(id)
		if !found {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown topping id"})
		}
		toppings = append(toppings, t)
	}

	item := h.Shop.AddToCart(drink, model.Customization{
		Sweetness: sweetness,
		Ice:       ice,
		Toppings:  toppings,
	}, req.Quantity)
	return c.JSON(http.StatusCreated, item)
}

// SetQuantity handles PUT /v1/cart/items/:id. A quantity of zero or less
// removes the line; unknown line ids are a no-op, matching the store.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var req setQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	h.Shop.SetCartQuantity(id, req.Quantity)
	return c.JSON(http.StatusOK, h.currentCart())
}

// RemoveItem handles DELETE /v1/cart/items/:id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	h.Shop.RemoveFromCart(id)
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /v1/cart.
func (h *CartHandler) Clear(c echo.Context) error {
	h.Shop.ClearCart()
	return c.NoContent(http.StatusNoContent)
}
