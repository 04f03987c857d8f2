package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/onlinedrinkshop/backend/internal/config"
	"github.com/onlinedrinkshop/backend/internal/handler"
	"github.com/onlinedrinkshop/backend/internal/middleware"
	"github.com/onlinedrinkshop/backend/internal/router"
	"github.com/onlinedrinkshop/backend/internal/shop"
	"github.com/onlinedrinkshop/backend/internal/store"
)

func main() {
	// Load .env if present; real environments set the variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// All state is in-memory and process-lifetime only: the catalog is
	// seeded here and the account/cart/order stores start empty.
	catalog := store.NewCatalogStore()
	accounts := store.NewAccountStore(cfg.BcryptCost)
	cart := store.NewCartStore()
	orders := store.NewOrderStore()
	s := shop.New(catalog, accounts, cart, orders, cfg.StatusWindow)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig()))

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(s))
	router.RegisterSession(e, s, cfg.JWTSecret,
		handler.NewAuthHandler(cfg, s),
		handler.NewCartHandler(s),
		handler.NewOrderHandler(s),
		handler.NewEventsHandler(s),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
