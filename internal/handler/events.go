package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlinedrinkshop/backend/internal/shop"
)

// EventsHandler streams the facade's state-change events over SSE so a
// client can re-render reactively instead of polling. One stream carries
// everything: user, cart, order and status updates.
type EventsHandler struct {
	Shop *shop.Shop
}

func NewEventsHandler(s *shop.Shop) *EventsHandler {
	return &EventsHandler{Shop: s}
}

// Stream handles GET /v1/events. It subscribes to the facade's event hub
// and forwards each event as an SSE message until the client disconnects.
func (h *EventsHandler) Stream(c echo.Context) error {
	events, cancel := h.Shop.Subscribe(16)
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			data, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
