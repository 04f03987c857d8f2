package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"

	"github.com/onlinedrinkshop/backend/internal/shop"
	"github.com/onlinedrinkshop/backend/internal/store"
)

// OrderHandler exposes checkout and order history. All routes assume the
// JWT and active-session middleware already ran.
type OrderHandler struct {
	Shop *shop.Shop
}

func NewOrderHandler(s *shop.Shop) *OrderHandler {
	return &OrderHandler{Shop: s}
}

// Place handles POST /v1/orders. Checkout either records the order,
// debits the balance and clears the cart together, or fails leaving all
// three untouched:
//
//	401 – no active session
//	409 – empty cart
//	402 – balance below the cart total
func (h *OrderHandler) Place(c echo.Context) error {
	order, err := h.Shop.PlaceOrder()
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoActiveSession):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no user logged in"})
		case errors.Is(err, store.ErrEmptyCart):
			return c.JSON(http.StatusConflict, echo.Map{"error": "cart is empty"})
		case errors.Is(err, store.ErrInsufficientFunds):
			return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "insufficient tokens"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "place order failed"})
	}
	return c.JSON(http.StatusCreated, order)
}

// List handles GET /v1/orders, newest-first.
func (h *OrderHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Shop.Orders())
}

// Reorder handles POST /v1/orders/:id/reorder. The past order's snapshot
// replaces the cart as-is; nothing is re-validated until the next
// checkout.
func (h *OrderHandler) Reorder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	if err := h.Shop.Reorder(id); err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		case errors.Is(err, store.ErrNoActiveSession):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no user logged in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reorder failed"})
	}
	return c.JSON(http.StatusOK, cartResp{Items: h.Shop.CartItems(), Total: h.Shop.CartTotal()})
}

// PickupQR handles GET /v1/orders/:id/qr. It renders a PNG QR code that
// the pickup counter scans: order id plus the promised pickup time.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	order, err := h.Shop.OrderByID(id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no user logged in"})
	}
	payload := fmt.Sprintf("drinkshop://orders/%d?pickup=%s", order.ID, order.PickupAt.Format(timeLayout))
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode qr failed"})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
