package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/onlinedrinkshop/backend/internal/handler"    // handlers implementing the endpoints
	"github.com/onlinedrinkshop/backend/internal/middleware" // JWT and session middleware
	"github.com/onlinedrinkshop/backend/internal/shop"       // session facade, needed by the session guard
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the unauthenticated browse endpoints. Guests
// can browse categories, drinks and toppings and search the catalog
// before registering, so no middleware applies here.
func RegisterCatalog(e *echo.Echo, p *handler.CatalogHandler) {
	e.GET("/v1/categories", p.GetCategories)
	e.GET("/v1/categories/:id/drinks", p.GetDrinksByCategory)
	// /popular must be registered alongside /:id; echo routes static
	// segments before parameters.
	e.GET("/v1/drinks/popular", p.GetPopularDrinks)
	e.GET("/v1/drinks/:id", p.GetDrink)
	e.GET("/v1/toppings", p.GetToppings)
	e.GET("/v1/search/drinks", p.SearchDrinks)
}

// RegisterSession registers the account, cart and order routes.
// Unauthenticated operations live under /v1/auth; everything else runs
// behind two middlewares: JWTAuth validates the bearer token, and
// RequireActiveSession enforces that the token's subject still holds the
// single session (a later login or a logout invalidates older tokens).
func RegisterSession(e *echo.Echo, s *shop.Shop, jwtSecret string,
	a *handler.AuthHandler, cart *handler.CartHandler, orders *handler.OrderHandler, events *handler.EventsHandler) {

	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireActiveSession(s))

	auth.POST("/logout", a.Logout)
	auth.GET("/me", a.Me)
	auth.PUT("/me/password", a.ChangePassword)
	auth.POST("/me/topup", a.TopUp)

	auth.GET("/cart", cart.Get)
	auth.POST("/cart/items", cart.AddItem)
	auth.PUT("/cart/items/:id", cart.SetQuantity)
	auth.DELETE("/cart/items/:id", cart.RemoveItem)
	auth.DELETE("/cart", cart.Clear)

	auth.POST("/orders", orders.Place)
	auth.GET("/orders", orders.List)
	auth.POST("/orders/:id/reorder", orders.Reorder)
	auth.GET("/orders/:id/qr", orders.PickupQR)

	auth.GET("/events", events.Stream)
}
