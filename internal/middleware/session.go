package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context

	"github.com/onlinedrinkshop/backend/internal/shop"
)

// RequireActiveSession returns a middleware that enforces the shop's
// single-session invariant over HTTP: the token's subject must be the user
// who currently holds the session. A token issued to an earlier login
// stops working the moment another register or login replaces the
// session, and every protected route fails once the session user logged
// out. It assumes JWTAuth already ran and stored the subject in the
// context.
func RequireActiveSession(s *shop.Shop) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := UserID(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			current, ok := s.CurrentUser()
			if !ok || current.ID != uid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
			}
			return next(c)
		}
	}
}
